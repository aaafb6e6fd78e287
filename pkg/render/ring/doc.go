// Package ring turns positioned gates into output primitives, one
// generator per concentric information band.
//
// Every generator follows the same contract: given a validated sequence,
// the run's calibration constants and a knowledge payload, it produces
// [Element] values through the shared formulas in pkg/geom. Generators
// never branch on a specific gate or quadrant; a visual fix that seems to
// need one belongs in pkg/geom, where it applies to all 64 positions
// alike. Variants differ only in content kind (glyph vs text), sub-band
// count, and iteration unit (single gate, gate pair, or gate+line).
//
// Elements within a ring are always emitted in increasing (gate,
// sub-index) order regardless of internal iteration, so output is
// reproducible byte-for-byte.
package ring
