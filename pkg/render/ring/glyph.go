package ring

import (
	"fmt"
	"strings"

	"gatewheel/pkg/hexagram"
	"gatewheel/pkg/wheel"
)

// Glyph proportions relative to the band width. The glyph is authored in
// local coordinates with its volatile line at local "up"; the shared
// outward rotation then points that edge away from center everywhere.
const (
	glyphWidthPerBand  = 0.72
	glyphHeightPerBand = 0.78
	glyphBarFill       = 0.62 // bar thickness as fraction of one line slot
	glyphGapPerWidth   = 0.24 // center gap of a void line
)

// GlyphRing renders the six-line pattern of every gate.
type GlyphRing struct{}

// Name implements Generator.
func (GlyphRing) Name() string { return "glyph" }

// Generate implements Generator.
func (GlyphRing) Generate(ctx Context) ([]Element, error) {
	g, err := ctx.Calibration.Ring("glyph")
	if err != nil {
		return nil, err
	}

	els := make([]Element, 0, hexagram.GateCount)
	for _, gate := range hexagram.Gates() {
		c, err := wheel.Classify(gate)
		if err != nil {
			return nil, err
		}
		at, rot, err := place(ctx, gate, g.MidRadius(), g.Center)
		if err != nil {
			return nil, err
		}
		els = append(els, Element{
			Ring:            "glyph",
			Gate:            gate,
			Field:           "pattern",
			Kind:            KindPath,
			At:              at,
			RotationDegrees: rot,
			Path:            glyphPath(c.Pattern, g.BandWidth()),
		})
	}
	sortElements(els)
	return els, nil
}

// glyphPath builds the local path for one pattern. Line 0 (foundational)
// sits at local bottom (positive y, since SVG y grows downward), line 5
// (volatile) at local top. Charged lines are one full bar, void lines two
// half bars with a center gap.
func glyphPath(p hexagram.Pattern, bandWidth float64) string {
	w := bandWidth * glyphWidthPerBand
	h := bandWidth * glyphHeightPerBand
	slot := h / float64(hexagram.PatternLen)
	t := slot * glyphBarFill
	gap := w * glyphGapPerWidth

	var b strings.Builder
	for i, line := range p {
		yTop := h/2 - (float64(i)+0.5)*slot - t/2
		if line == hexagram.LineCharge {
			bar(&b, -w/2, yTop, w, t)
		} else {
			half := (w - gap) / 2
			bar(&b, -w/2, yTop, half, t)
			bar(&b, gap/2, yTop, half, t)
		}
	}
	return strings.TrimSpace(b.String())
}

func bar(b *strings.Builder, x, y, w, h float64) {
	fmt.Fprintf(b, "M %.2f %.2f h %.2f v %.2f h %.2f Z ", x, y, w, h, -w)
}
