package ring

import (
	"sort"

	"gatewheel/pkg/geom"
	"gatewheel/pkg/hexagram"
	"gatewheel/pkg/payload"
	"gatewheel/pkg/wheel"
)

// Kind distinguishes the two primitive families a sink has to draw.
type Kind string

const (
	// KindPath is a locally-authored path placed by translate+rotate.
	KindPath Kind = "path"
	// KindText is fitted text placed by translate+rotate.
	KindText Kind = "text"
)

// Element is one positioned output primitive for one gate (or gate+line,
// or channel member) within one ring. Elements are created fresh per run
// and carry no cross-run identity.
type Element struct {
	Ring     string        `json:"ring"`
	Gate     hexagram.Gate `json:"gate"`
	SubIndex int           `json:"sub_index,omitempty"`
	Field    string        `json:"field"` // originating knowledge field
	Kind     Kind          `json:"kind"`

	At              geom.Point `json:"at"`
	RotationDegrees float64    `json:"rotation_degrees"`

	// Path holds local path data for KindPath elements.
	Path string `json:"path,omitempty"`

	// Text sizing for KindText elements.
	FontSize   float64  `json:"font_size,omitempty"`
	LineHeight float64  `json:"line_height,omitempty"`
	Lines      []string `json:"lines,omitempty"`
}

// Context carries the per-run immutable inputs every generator consumes.
// Nothing in it is mutated after construction, so generators can run
// concurrently against the same Context.
type Context struct {
	Sequence    *wheel.Sequence
	Calibration geom.Calibration
	Payload     *payload.Set
	Ratios      geom.TextRatios
}

// Generator is one information band. Name doubles as the calibration ring
// key and the layer name in merged output.
type Generator interface {
	Name() string
	Generate(Context) ([]Element, error)
}

// place computes the canvas point and outward rotation for a gate at the
// given radius. It is the single route from wheel angle to canvas
// coordinates; generators have no other way to position anything.
func place(ctx Context, g hexagram.Gate, radius float64, center geom.Point) (geom.Point, float64, error) {
	pos, err := wheel.Position(g, ctx.Sequence)
	if err != nil {
		return geom.Point{}, 0, err
	}
	canvas := geom.CanvasAngle(pos.AngleDegrees, ctx.Calibration.PositionOffset)
	return geom.Cartesian(canvas, radius, center), geom.OutwardRotation(canvas), nil
}

// sortElements orders a ring's output by (gate, sub-index).
func sortElements(els []Element) {
	sort.Slice(els, func(i, j int) bool {
		if els[i].Gate != els[j].Gate {
			return els[i].Gate < els[j].Gate
		}
		return els[i].SubIndex < els[j].SubIndex
	})
}
