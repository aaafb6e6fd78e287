package hexagram

// Bigram is an adjacent line pair, one of four classes. Bit 0 holds the
// lower line, bit 1 the upper line, so the class encodes position, not count.
type Bigram uint8

const (
	BigramVoidVoid     Bigram = 0b00 // both lines void
	BigramChargeVoid   Bigram = 0b01 // lower charged, upper void
	BigramVoidCharge   Bigram = 0b10 // lower void, upper charged
	BigramChargeCharge Bigram = 0b11 // both lines charged
)

var bigramNames = [4]string{
	BigramVoidVoid:     "void-void",
	BigramChargeVoid:   "charge-void",
	BigramVoidCharge:   "void-charge",
	BigramChargeCharge: "charge-charge",
}

// bigramLetters assigns the codon letter for each bigram class. Inversion
// maps to the complementary letter (A↔T, G↔C), which is what makes face
// opposites line up with pattern inversion.
var bigramLetters = [4]byte{
	BigramVoidVoid:     'A',
	BigramChargeVoid:   'G',
	BigramVoidCharge:   'C',
	BigramChargeCharge: 'T',
}

// String returns the class name, e.g. "charge-void".
func (b Bigram) String() string { return bigramNames[b&0b11] }

// Letter returns the codon letter for this bigram class.
func (b Bigram) Letter() byte { return bigramLetters[b&0b11] }

// Opposite returns the full inversion of the bigram.
func (b Bigram) Opposite() Bigram { return ^b & 0b11 }

// bigramAt builds the bigram starting at line index i.
func bigramAt(p Pattern, i int) Bigram {
	return Bigram(uint8(p[i]) | uint8(p[i+1])<<1)
}

// Bigrams decomposes a pattern into its [bottom, middle, top] bigrams,
// covering positions 0-1, 2-3 and 4-5.
func Bigrams(p Pattern) [3]Bigram {
	return [3]Bigram{bigramAt(p, 0), bigramAt(p, 2), bigramAt(p, 4)}
}
