package hexagram

// Quarter is one of the four wheel domains. It is a pure function of the
// bottom bigram, so all 16 gates sharing a bottom bigram share a quarter.
type Quarter uint8

const (
	QuarterMutation     Quarter = iota // bottom bigram void-void
	QuarterDuality                     // bottom bigram charge-void
	QuarterCivilisation                // bottom bigram void-charge
	QuarterInitiation                  // bottom bigram charge-charge
)

var quarterNames = [4]string{
	QuarterMutation:     "Mutation",
	QuarterDuality:      "Duality",
	QuarterCivilisation: "Civilisation",
	QuarterInitiation:   "Initiation",
}

// quarterByBigram maps the bottom bigram class directly to its quarter.
// Opposite bigrams land in opposite quarters.
var quarterByBigram = [4]Quarter{
	BigramVoidVoid:     QuarterMutation,
	BigramChargeVoid:   QuarterDuality,
	BigramVoidCharge:   QuarterCivilisation,
	BigramChargeCharge: QuarterInitiation,
}

// String returns the quarter name.
func (q Quarter) String() string { return quarterNames[q&0b11] }

// Opposite returns the quarter diametrically opposed on the wheel:
// Mutation↔Initiation, Duality↔Civilisation.
func (q Quarter) Opposite() Quarter {
	switch q {
	case QuarterMutation:
		return QuarterInitiation
	case QuarterInitiation:
		return QuarterMutation
	case QuarterDuality:
		return QuarterCivilisation
	default:
		return QuarterDuality
	}
}

// QuarterOf classifies a pattern by its bottom bigram.
func QuarterOf(p Pattern) Quarter {
	return quarterByBigram[bigramAt(p, 0)]
}
