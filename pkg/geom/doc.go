// Package geom is the shared geometry and formula library for every ring.
//
// It is the structural enforcement point for the "one formula, no per-gate
// exception" rule: ring generators never special-case a gate or quadrant,
// they call the conversions here. [CanvasAngle] bridges the wheel's own
// angular convention and the SVG canvas convention (zero direction,
// mirrored handedness, plus one calibration constant), [Cartesian] is the
// standard polar conversion, and [OutwardRotation] orients locally-authored
// glyphs so their volatile edge points away from center, uniformly for all
// 64 positions.
//
// [FitText] sizes ring text proportionally to the band width through fixed
// ratios and escalates to an OVERFLOW_UNRESOLVED error instead of silently
// clipping.
package geom
