package hexagram

import "gatewheel/pkg/errors"

// Gate identifies one of the 64 wheel gates. Valid values are 1..64.
type Gate int

// GateCount is the number of gates on the wheel.
const GateCount = 64

// gatePatterns maps gate number (index+1) to its canonical line pattern,
// written foundational-first. The table follows the traditional King Wen
// assignment and is bijective onto all 64 possible patterns.
var gatePatterns = [GateCount]Pattern{
	mustPattern("111111"), // 1
	mustPattern("000000"), // 2
	mustPattern("100010"), // 3
	mustPattern("010001"), // 4
	mustPattern("111010"), // 5
	mustPattern("010111"), // 6
	mustPattern("010000"), // 7
	mustPattern("000010"), // 8
	mustPattern("111011"), // 9
	mustPattern("110111"), // 10
	mustPattern("111000"), // 11
	mustPattern("000111"), // 12
	mustPattern("101111"), // 13
	mustPattern("111101"), // 14
	mustPattern("001000"), // 15
	mustPattern("000100"), // 16
	mustPattern("100110"), // 17
	mustPattern("011001"), // 18
	mustPattern("110000"), // 19
	mustPattern("000011"), // 20
	mustPattern("100101"), // 21
	mustPattern("101001"), // 22
	mustPattern("000001"), // 23
	mustPattern("100000"), // 24
	mustPattern("100111"), // 25
	mustPattern("111001"), // 26
	mustPattern("100001"), // 27
	mustPattern("011110"), // 28
	mustPattern("010010"), // 29
	mustPattern("101101"), // 30
	mustPattern("001110"), // 31
	mustPattern("011100"), // 32
	mustPattern("001111"), // 33
	mustPattern("111100"), // 34
	mustPattern("000101"), // 35
	mustPattern("101000"), // 36
	mustPattern("101011"), // 37
	mustPattern("110101"), // 38
	mustPattern("001010"), // 39
	mustPattern("010100"), // 40
	mustPattern("110001"), // 41
	mustPattern("100011"), // 42
	mustPattern("111110"), // 43
	mustPattern("011111"), // 44
	mustPattern("000110"), // 45
	mustPattern("011000"), // 46
	mustPattern("010110"), // 47
	mustPattern("011010"), // 48
	mustPattern("101110"), // 49
	mustPattern("011101"), // 50
	mustPattern("100100"), // 51
	mustPattern("001001"), // 52
	mustPattern("001011"), // 53
	mustPattern("110100"), // 54
	mustPattern("101100"), // 55
	mustPattern("001101"), // 56
	mustPattern("011011"), // 57
	mustPattern("110110"), // 58
	mustPattern("010011"), // 59
	mustPattern("110010"), // 60
	mustPattern("110011"), // 61
	mustPattern("001100"), // 62
	mustPattern("101010"), // 63
	mustPattern("010101"), // 64
}

// gateByBits is the reverse lookup, pattern bits to gate number.
var gateByBits = func() [GateCount]Gate {
	var m [GateCount]Gate
	for i, p := range gatePatterns {
		m[p.Bits()] = Gate(i + 1)
	}
	return m
}()

// Valid reports whether g is within 1..64.
func (g Gate) Valid() bool {
	return g >= 1 && g <= GateCount
}

// PatternOf returns the canonical line pattern for a gate.
func PatternOf(g Gate) (Pattern, error) {
	if !g.Valid() {
		return Pattern{}, errors.New(errors.ErrCodeInvalidGate, "gate %d out of range 1..64", g)
	}
	return gatePatterns[g-1], nil
}

// GateOf returns the gate owning the given pattern. Because the table is a
// bijection over all 64 patterns, every pattern resolves to a gate.
func GateOf(p Pattern) Gate {
	return gateByBits[p.Bits()]
}

// Gates returns all 64 gates in ascending numeric order.
func Gates() []Gate {
	out := make([]Gate, GateCount)
	for i := range out {
		out[i] = Gate(i + 1)
	}
	return out
}
