package ring

import (
	"fmt"

	"gatewheel/pkg/hexagram"
	"gatewheel/pkg/wheel"
)

// ChannelRing renders the 36 relational gate pairs. Each member is drawn
// at its own angle, never at the pair's midpoint, as a radial stub
// spanning the band. The sub-index carries the channel's table position so
// a gate serving several channels keeps distinct, stably-ordered elements.
type ChannelRing struct{}

// Name implements Generator.
func (ChannelRing) Name() string { return "channel" }

// Generate implements Generator.
func (ChannelRing) Generate(ctx Context) ([]Element, error) {
	g, err := ctx.Calibration.Ring("channel")
	if err != nil {
		return nil, err
	}

	// Stub authored locally as a vertical segment; the outward rotation
	// turns it radial at every position.
	half := g.BandWidth() / 2
	stub := fmt.Sprintf("M 0 %.2f L 0 %.2f", half, -half)

	channels := wheel.Channels()
	els := make([]Element, 0, 2*len(channels))
	for i, ch := range channels {
		for _, gate := range []hexagram.Gate{ch.A, ch.B} {
			at, rot, err := place(ctx, gate, g.MidRadius(), g.Center)
			if err != nil {
				return nil, err
			}
			els = append(els, Element{
				Ring:            "channel",
				Gate:            gate,
				SubIndex:        i,
				Field:           "channel." + ch.Name,
				Kind:            KindPath,
				At:              at,
				RotationDegrees: rot,
				Path:            stub,
			})
		}
	}
	sortElements(els)
	return els, nil
}
