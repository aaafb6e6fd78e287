package ring

import (
	"fmt"
	"strconv"

	"gatewheel/pkg/geom"
	"gatewheel/pkg/hexagram"
	"gatewheel/pkg/wheel"
)

// NumberRing renders the numeric gate labels.
type NumberRing struct{}

// Name implements Generator.
func (NumberRing) Name() string { return "number" }

// Generate implements Generator.
func (NumberRing) Generate(ctx Context) ([]Element, error) {
	return textRing(ctx, "number", func(g hexagram.Gate) (string, string, error) {
		return strconv.Itoa(int(g)), "number", nil
	})
}

// NameRing renders the traditional gate names from the knowledge payload.
type NameRing struct{}

// Name implements Generator.
func (NameRing) Name() string { return "name" }

// Generate implements Generator.
func (NameRing) Generate(ctx Context) ([]Element, error) {
	return textRing(ctx, "name", func(g hexagram.Gate) (string, string, error) {
		info, err := ctx.Payload.Gate(g)
		if err != nil {
			return "", "", err
		}
		return info.Name, "name", nil
	})
}

// TrigramRing renders the triad label (lower trigram) of every gate.
type TrigramRing struct{}

// Name implements Generator.
func (TrigramRing) Name() string { return "trigram" }

// Generate implements Generator.
func (TrigramRing) Generate(ctx Context) ([]Element, error) {
	return textRing(ctx, "trigram", func(g hexagram.Gate) (string, string, error) {
		c, err := wheel.Classify(g)
		if err != nil {
			return "", "", err
		}
		return c.Trigrams.Lower.String(), "trigram.lower", nil
	})
}

// textRing is the shared body of every single-band text ring: one fitted
// text element per gate on the band centerline, outward-rotated. content
// resolves the text and its source field for one gate.
func textRing(ctx Context, name string, content func(hexagram.Gate) (string, string, error)) ([]Element, error) {
	g, err := ctx.Calibration.Ring(name)
	if err != nil {
		return nil, err
	}

	els := make([]Element, 0, hexagram.GateCount)
	for _, gate := range hexagram.Gates() {
		text, field, err := content(gate)
		if err != nil {
			return nil, err
		}
		fit, err := geom.FitText(text, g.BandWidth(), ctx.Ratios)
		if err != nil {
			return nil, fmt.Errorf("ring %s, gate %d: %w", name, gate, err)
		}
		at, rot, err := place(ctx, gate, g.MidRadius(), g.Center)
		if err != nil {
			return nil, err
		}
		els = append(els, Element{
			Ring:            name,
			Gate:            gate,
			Field:           field,
			Kind:            KindText,
			At:              at,
			RotationDegrees: rot,
			FontSize:        fit.FontSize,
			LineHeight:      fit.LineHeight,
			Lines:           fit.Lines,
		})
	}
	sortElements(els)
	return els, nil
}
