// Package hexagram implements the binary model behind the 64 wheel gates.
//
// Every gate corresponds to exactly one line pattern: an ordered sequence of
// six charge/void lines, index 0 being the foundational (innermost) position
// and index 5 the most volatile (outermost). The package decomposes a pattern
// into coarser classifications:
//
//   - Bigram: adjacent line pairs (positions 0-1, 2-3, 4-5), 4 classes
//   - Trigram: lower (0-2) and upper (3-5) triples, 8 named classes
//   - Quarter: 1 of 4 domains, a pure function of the bottom bigram
//   - Face: 1 of 16 archetypal groups from the bottom two bigrams
//
// All classification tables are direct bit-pattern lookups. Trigram naming in
// particular depends on the position of the charged line, not on how many
// lines are charged, so the tables are indexed by the raw 3-bit value. This
// structurally rules out the bottom/top orientation mistakes that creep in
// with bit-counting heuristics.
//
// Everything in this package is a pure function of immutable data. The gate
// table is fixed at compile time and bijective: each of the 64 gates owns one
// of the 64 possible patterns.
package hexagram
