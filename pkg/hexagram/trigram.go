package hexagram

// Trigram is an adjacent line triple, one of eight named classes. Bit i
// holds line i of the triple, lowest line at bit 0. The name is a direct
// function of the 3-bit value: a single charge at the bottom (Thunder) is a
// different class than a single charge at the top (Mountain).
type Trigram uint8

const (
	TrigramEarth    Trigram = 0b000
	TrigramThunder  Trigram = 0b001
	TrigramWater    Trigram = 0b010
	TrigramLake     Trigram = 0b011
	TrigramMountain Trigram = 0b100
	TrigramFire     Trigram = 0b101
	TrigramWind     Trigram = 0b110
	TrigramHeaven   Trigram = 0b111
)

var trigramNames = [8]string{
	TrigramEarth:    "Earth",
	TrigramThunder:  "Thunder",
	TrigramWater:    "Water",
	TrigramLake:     "Lake",
	TrigramMountain: "Mountain",
	TrigramFire:     "Fire",
	TrigramWind:     "Wind",
	TrigramHeaven:   "Heaven",
}

// String returns the traditional trigram name.
func (t Trigram) String() string { return trigramNames[t&0b111] }

// Opposite returns the full inversion of the trigram: Heaven↔Earth,
// Thunder↔Wind, Water↔Fire, Lake↔Mountain.
func (t Trigram) Opposite() Trigram { return ^t & 0b111 }

// TrigramPair holds the two trigrams of one pattern.
type TrigramPair struct {
	Lower Trigram // positions 0-2
	Upper Trigram // positions 3-5
}

// Trigrams decomposes a pattern into its lower and upper trigrams.
func Trigrams(p Pattern) TrigramPair {
	return TrigramPair{
		Lower: trigramAt(p, 0),
		Upper: trigramAt(p, 3),
	}
}

func trigramAt(p Pattern, i int) Trigram {
	return Trigram(uint8(p[i]) | uint8(p[i+1])<<1 | uint8(p[i+2])<<2)
}
