// Package sink writes generated wheel documents to output formats.
//
// The SVG sink is the primary output: every element becomes one SVG node
// positioned with a translate+rotate transform and tagged with data
// attributes (ring, gate, field) so downstream tools and the calibration
// extractor can locate elements without parsing geometry. PNG and PDF are
// derived from the SVG via librsvg. The JSON sink exports the document
// structure itself for external consumers.
//
// Output is deterministic: rings appear in generator order and elements
// within a ring in (gate, sub-index) order, so identical inputs produce
// byte-identical files.
package sink
