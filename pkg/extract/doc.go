// Package extract derives calibration constants from a reference diagram.
//
// The reference diagram is an SVG whose calibration elements follow a
// documented id naming convention:
//
//   - gate markers: 64 elements with ids gate-1 .. gate-64, one per gate,
//     centered on the gate's anchor point.
//   - pair markers: 72 elements with ids pair-<a>-<b>-a and pair-<a>-<b>-b,
//     two per relational channel, one at each member gate.
//   - named shapes: 9 concentric circles delimiting the band structure,
//     hub outward: shape-hub, shape-channel-outer, shape-trigram-outer,
//     shape-name-outer, shape-number-outer, shape-glyph-outer,
//     shape-lines-outer, shape-rim, shape-frame.
//
// Extraction never reinterprets geometry: Locate returns the matched
// elements' attributes verbatim, and the audit checks counts before any
// constant is derived. A diagram failing the audit emits nothing.
//
// Pipeline: parse, locate, audit, derive, emit. Each report carries a
// unique run id so emitted constants can be traced to the extraction
// that produced them.
package extract
