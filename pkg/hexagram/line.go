package hexagram

import (
	"strings"

	"gatewheel/pkg/errors"
)

// Line is a single charge/void value within a pattern.
type Line uint8

const (
	// LineVoid is an open, receptive line.
	LineVoid Line = 0
	// LineCharge is a solid, charged line.
	LineCharge Line = 1
)

// PatternLen is the number of lines in every pattern.
const PatternLen = 6

// Pattern is the ordered line sequence defining one gate.
// Index 0 is the foundational (innermost) position, index 5 the most
// volatile (outermost). Patterns are value types and never mutated.
type Pattern [PatternLen]Line

// ParsePattern converts a slice of raw 0/1 values into a Pattern.
// It returns an INVALID_LINE_PATTERN error if the slice does not contain
// exactly six binary values.
func ParsePattern(values []int) (Pattern, error) {
	var p Pattern
	if len(values) != PatternLen {
		return p, errors.New(errors.ErrCodeInvalidLinePattern,
			"pattern has %d lines, want %d", len(values), PatternLen)
	}
	for i, v := range values {
		switch v {
		case 0:
			p[i] = LineVoid
		case 1:
			p[i] = LineCharge
		default:
			return Pattern{}, errors.New(errors.ErrCodeInvalidLinePattern,
				"line %d has non-binary value %d", i+1, v)
		}
	}
	return p, nil
}

// String renders the pattern foundational-first, e.g. "100010" for gate 3.
func (p Pattern) String() string {
	var b strings.Builder
	for _, l := range p {
		if l == LineCharge {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Bits packs the pattern into the low six bits of a byte, line 0 at bit 0.
func (p Pattern) Bits() uint8 {
	var v uint8
	for i, l := range p {
		v |= uint8(l) << i
	}
	return v
}

// Inverted returns the full inversion of the pattern (every line flipped).
func (p Pattern) Inverted() Pattern {
	var out Pattern
	for i, l := range p {
		out[i] = l ^ LineCharge
	}
	return out
}

// mustPattern parses a foundational-first "101010" string for the gate table.
// It panics on malformed input; the table is compile-time data.
func mustPattern(s string) Pattern {
	if len(s) != PatternLen {
		panic("hexagram: bad table entry " + s)
	}
	var p Pattern
	for i := range p {
		switch s[i] {
		case '0':
			p[i] = LineVoid
		case '1':
			p[i] = LineCharge
		default:
			panic("hexagram: bad table entry " + s)
		}
	}
	return p
}
