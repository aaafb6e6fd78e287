package ring

import (
	"fmt"

	"gatewheel/pkg/geom"
	"gatewheel/pkg/hexagram"
)

// LineBand renders the finest detail band: six sub-elements per gate, one
// per line. All six share the gate's angular sector and differ only by
// radius, ordered from the sector's volatile boundary (line 6, outermost
// sub-band) to its stable boundary (line 1, innermost).
type LineBand struct{}

// Name implements Generator.
func (LineBand) Name() string { return "lines" }

// Generate implements Generator.
func (LineBand) Generate(ctx Context) ([]Element, error) {
	g, err := ctx.Calibration.Ring("lines")
	if err != nil {
		return nil, err
	}

	els := make([]Element, 0, hexagram.GateCount*hexagram.PatternLen)
	for _, gate := range hexagram.Gates() {
		for n := 1; n <= hexagram.PatternLen; n++ {
			// Line 6 is the most volatile and takes sub-band 0 at the
			// outer boundary.
			sub := g.SubBand(hexagram.PatternLen-n, hexagram.PatternLen)

			text := ctx.Payload.Line(gate, n)
			fit, err := geom.FitText(text, sub.BandWidth(), ctx.Ratios)
			if err != nil {
				return nil, fmt.Errorf("line band, gate %d line %d: %w", gate, n, err)
			}
			at, rot, err := place(ctx, gate, sub.MidRadius(), g.Center)
			if err != nil {
				return nil, err
			}
			els = append(els, Element{
				Ring:            "lines",
				Gate:            gate,
				SubIndex:        n,
				Field:           fmt.Sprintf("line.%d", n),
				Kind:            KindText,
				At:              at,
				RotationDegrees: rot,
				FontSize:        fit.FontSize,
				LineHeight:      fit.LineHeight,
				Lines:           fit.Lines,
			})
		}
	}
	sortElements(els)
	return els, nil
}
