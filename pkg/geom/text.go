package geom

import (
	"strings"

	"gatewheel/pkg/errors"
)

// TextRatios are the fixed proportions that tie text sizing to a band's
// radial thickness. Every ring uses the same ratios; per-ring tuning would
// reintroduce the per-gate exceptions this library exists to prevent.
type TextRatios struct {
	FontPerBand   float64 // font size as fraction of band width
	LinePerFont   float64 // line height as multiple of font size
	CharPerFont   float64 // mean glyph advance as fraction of font size
	WidthPerBand  float64 // usable line width as multiple of band width
	LongWordLen   int     // character count at which a word is compressed
	LongWordScale float64 // compressive multiplier for long words
	MaxLines      int     // line-break limit before escalating
	MinScale      float64 // maximum compression before giving up
}

// DefaultTextRatios were calibrated against the reference diagram's name
// ring and are shared by every text-bearing ring.
var DefaultTextRatios = TextRatios{
	FontPerBand:   0.42,
	LinePerFont:   1.15,
	CharPerFont:   0.58,
	WidthPerBand:  3.2,
	LongWordLen:   10,
	LongWordScale: 0.82,
	MaxLines:      3,
	MinScale:      0.55,
}

// TextFit is the resolved sizing for one piece of ring text.
type TextFit struct {
	FontSize   float64
	LineHeight float64
	Lines      []string
}

// FitText sizes content for a band of the given radial width. Font size and
// line height scale linearly with the band width through the fixed ratios;
// words at or beyond the long-word threshold receive the compressive
// multiplier. If the content still cannot fit at maximum compression the
// function fails with OVERFLOW_UNRESOLVED rather than clipping.
func FitText(content string, bandWidth float64, r TextRatios) (TextFit, error) {
	words := strings.Fields(content)
	if len(words) == 0 {
		return TextFit{}, errors.New(errors.ErrCodeOverflowUnresolved, "empty content")
	}

	scale := 1.0
	for _, w := range words {
		if len(w) >= r.LongWordLen {
			scale = min(scale, r.LongWordScale)
		}
		if len(w) >= 2*r.LongWordLen {
			scale = min(scale, r.LongWordScale*r.LongWordScale)
		}
	}

	avail := bandWidth * r.WidthPerBand
	for ; scale >= r.MinScale; scale *= 0.92 {
		font := bandWidth * r.FontPerBand * scale
		maxChars := int(avail / (font * r.CharPerFont))
		lines, ok := wrapWords(words, maxChars)
		if ok && len(lines) <= r.MaxLines {
			return TextFit{
				FontSize:   font,
				LineHeight: font * r.LinePerFont,
				Lines:      lines,
			}, nil
		}
	}

	return TextFit{}, errors.New(errors.ErrCodeOverflowUnresolved,
		"%q cannot fit a %.1f-unit band at maximum compression", content, bandWidth)
}

// wrapWords greedily packs words into lines of at most maxChars characters.
// It reports failure when a single word exceeds the line width, since
// breaking inside a word is clipping by another name.
func wrapWords(words []string, maxChars int) ([]string, bool) {
	if maxChars < 1 {
		return nil, false
	}

	var lines []string
	var cur strings.Builder
	for _, w := range words {
		if len(w) > maxChars {
			return nil, false
		}
		switch {
		case cur.Len() == 0:
			cur.WriteString(w)
		case cur.Len()+1+len(w) <= maxChars:
			cur.WriteByte(' ')
			cur.WriteString(w)
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(w)
		}
	}
	lines = append(lines, cur.String())
	return lines, true
}
