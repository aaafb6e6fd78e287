// Package wheel places the 64 gates on the mandala ring.
//
// A [Config] names an ordering of all 64 gates plus the two pieces of
// metadata the wheel cannot exist without: the rotation direction and the
// rotation offset aligning sequence index 0 with the reference diagram.
// Source materials disagree on the canonical direction, so it is an
// explicit, mandatory field; the package never assumes a default.
//
// [NewSequence] validates a Config into an indexed [Sequence], and
// [Position] derives the angular coordinate of any gate from it. Ordering
// (narrative sequence) and rotation offset (visual alignment) are fully
// decoupled: changing one never changes the meaning of the other.
//
// Named presets ship with the package; see [Preset].
package wheel
