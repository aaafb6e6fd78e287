package hexagram

// Face is one of the 16 archetypal groups determined by the bottom four
// lines of a pattern (the two lowest bigrams). Bit i of the value holds
// line i. Exactly four gates share each face, since the two volatile lines
// are free. Inverting the four lines yields the opposite face.
type Face uint8

var faceNames = [16]string{
	0b0000: "Keeper of the Wheel",
	0b0001: "Kali",
	0b0010: "Michael",
	0b0011: "Maia",
	0b0100: "Parvati",
	0b0101: "Thoth",
	0b0110: "Christ",
	0b0111: "Hades",
	0b1000: "Prometheus",
	0b1001: "Minerva",
	0b1010: "Harmonia",
	0b1011: "Maat",
	0b1100: "Lakshmi",
	0b1101: "Janus",
	0b1110: "Mitra",
	0b1111: "Vishnu",
}

// String returns the face name.
func (f Face) String() string { return faceNames[f&0b1111] }

// Codon returns the two-letter codon code of the face, bottom bigram first,
// e.g. "AA" for Keeper of the Wheel and "TT" for Vishnu.
func (f Face) Codon() string {
	lo := Bigram(f & 0b11)
	hi := Bigram(f >> 2 & 0b11)
	return string([]byte{lo.Letter(), hi.Letter()})
}

// Opposite returns the face reached by inverting all four foundational
// lines. Every face has exactly one opposite and opposition is symmetric.
func (f Face) Opposite() Face { return ^f & 0b1111 }

// FaceOf classifies a pattern by its bottom four lines.
func FaceOf(p Pattern) Face {
	return Face(uint8(p[0]) | uint8(p[1])<<1 | uint8(p[2])<<2 | uint8(p[3])<<3)
}

// FaceGates returns the four gates belonging to a face, in ascending order.
func FaceGates(f Face) []Gate {
	var out []Gate
	for i, p := range gatePatterns {
		if FaceOf(p) == f {
			out = append(out, Gate(i+1))
		}
	}
	return out
}
