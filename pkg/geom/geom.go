package geom

import "math"

// Point is a Cartesian coordinate in canvas units.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// NormalizeDegrees maps any angle onto [0,360).
func NormalizeDegrees(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// CanvasAngle converts a wheel angle to a canvas angle.
//
// The canvas measures angles counter-clockwise from the positive x axis
// while the wheel grows clockwise from its top, so the sign flips and the
// zero direction shifts by 90°. positionOffset is the single calibration
// constant aligning the result to the reference diagram.
func CanvasAngle(wheelDeg, positionOffset float64) float64 {
	return -wheelDeg - 90 + positionOffset
}

// Cartesian converts a canvas angle and radius to a point around center.
func Cartesian(canvasDeg, radius float64, center Point) Point {
	rad := canvasDeg * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// OutwardRotation converts a canvas angle to the rotation applied to a
// locally-authored glyph. Glyphs are authored with their volatile edge at
// local "up"; adding 90° makes that edge point away from the wheel center
// at every position.
func OutwardRotation(canvasDeg float64) float64 {
	return canvasDeg + 90
}
