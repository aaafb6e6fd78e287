package extract

import (
	"fmt"
	"math"
	"strconv"

	"gatewheel/pkg/errors"
	"gatewheel/pkg/geom"
	"gatewheel/pkg/hexagram"
	"gatewheel/pkg/wheel"
)

// offsetTolerance is the maximum spread, in degrees, allowed between the
// position offsets implied by individual gate markers. A wider spread
// means the markers do not sit on a single rotated wheel.
const offsetTolerance = 0.5

// ringNames maps band order (hub outward) to the ring keys generators
// look up. Band i spans boundaryShapes[i] to boundaryShapes[i+1].
var ringNames = []string{"channel", "trigram", "name", "number", "glyph", "lines"}

// Calibrate audits a parsed reference diagram and derives the calibration
// constants generators consume: one ring geometry per band, delimited by
// the named boundary circles, plus the position offset implied by the
// gate markers under the given sequence. A failed audit derives nothing.
func Calibrate(doc *Document, seq *wheel.Sequence) (geom.Calibration, *Report, error) {
	rep, err := Audit(doc)
	if err != nil {
		return geom.Calibration{}, rep, err
	}

	center, radii, err := boundaries(doc)
	if err != nil {
		return geom.Calibration{}, rep, err
	}

	cal := geom.Calibration{Rings: make(map[string]geom.RingGeometry, len(ringNames))}
	for i, name := range ringNames {
		cal.Rings[name] = geom.RingGeometry{
			Center:      center,
			InnerRadius: radii[i],
			OuterRadius: radii[i+1],
		}
	}
	if err := cal.Validate(); err != nil {
		return geom.Calibration{}, rep, err
	}

	offset, err := positionOffset(doc, seq, center)
	if err != nil {
		return geom.Calibration{}, rep, err
	}
	cal.PositionOffset = offset
	return cal, rep, nil
}

// boundaries reads the nine boundary circles and returns the shared
// center plus ascending radii. The circles must be concentric and
// strictly ordered hub outward.
func boundaries(doc *Document) (geom.Point, []float64, error) {
	byID := make(map[string]RawElement)
	for _, el := range Locate(doc, ClassShape) {
		byID[el.ID] = el
	}

	var center geom.Point
	radii := make([]float64, len(boundaryShapes))
	for i, id := range boundaryShapes {
		el := byID[id]
		cx, err1 := attrFloat(el, "cx")
		cy, err2 := attrFloat(el, "cy")
		r, err3 := attrFloat(el, "r")
		if err1 != nil || err2 != nil || err3 != nil {
			return geom.Point{}, nil, errors.New(errors.ErrCodeInvalidGeometry,
				"shape %s is not a parseable circle", id)
		}
		p := geom.Point{X: cx, Y: cy}
		if i == 0 {
			center = p
		} else if p != center {
			return geom.Point{}, nil, errors.New(errors.ErrCodeInvalidGeometry,
				"shape %s center %v differs from hub center %v", id, p, center)
		}
		if i > 0 && r <= radii[i-1] {
			return geom.Point{}, nil, errors.New(errors.ErrCodeInvalidGeometry,
				"shape %s radius %.2f does not grow outward", id, r)
		}
		radii[i] = r
	}
	return center, radii, nil
}

// positionOffset inverts the canvas-angle formula for every gate marker
// and checks that all markers agree on a single rotation.
func positionOffset(doc *Document, seq *wheel.Sequence, center geom.Point) (float64, error) {
	byID := make(map[string]RawElement)
	for _, el := range Locate(doc, ClassGate) {
		byID[el.ID] = el
	}

	var first float64
	for i, g := range hexagram.Gates() {
		el := byID[fmt.Sprintf("gate-%d", g)]
		cx, err1 := attrFloat(el, "cx")
		cy, err2 := attrFloat(el, "cy")
		if err1 != nil || err2 != nil {
			return 0, errors.New(errors.ErrCodeInvalidGeometry,
				"marker %s is not a parseable point", el.ID)
		}

		pos, err := wheel.Position(g, seq)
		if err != nil {
			return 0, err
		}
		canvas := math.Atan2(cy-center.Y, cx-center.X) * 180 / math.Pi
		// CanvasAngle is -wheel - 90 + offset, solved for offset.
		offset := geom.NormalizeDegrees(canvas + 90 + pos.AngleDegrees)

		if i == 0 {
			first = offset
			continue
		}
		if spread := angularDistance(offset, first); spread > offsetTolerance {
			return 0, errors.New(errors.ErrCodeInvalidGeometry,
				"marker gate-%d implies offset %.3f, %.3f elsewhere; markers are not on one wheel",
				g, offset, first)
		}
	}
	return first, nil
}

// angularDistance returns the shortest distance between two angles in
// degrees, in [0,180].
func angularDistance(a, b float64) float64 {
	d := math.Abs(geom.NormalizeDegrees(a) - geom.NormalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func attrFloat(el RawElement, name string) (float64, error) {
	v, ok := el.Attrs[name]
	if !ok {
		return 0, fmt.Errorf("attribute %s missing", name)
	}
	return strconv.ParseFloat(v, 64)
}
