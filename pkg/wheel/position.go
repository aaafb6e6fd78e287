package wheel

import (
	"gatewheel/pkg/geom"
	"gatewheel/pkg/hexagram"
)

// StepDegrees is the angular width of one gate sector: 360/64.
const StepDegrees = 360.0 / float64(hexagram.GateCount)

// WheelPosition is the derived angular coordinate of one gate under one
// sequence. It is recomputed on demand, never stored mutable.
type WheelPosition struct {
	Index        int     // position within the ordering
	AngleDegrees float64 // wheel angle in [0,360)
}

// Classification bundles every derived property of a gate's line pattern.
type Classification struct {
	Gate     hexagram.Gate
	Pattern  hexagram.Pattern
	Bigrams  [3]hexagram.Bigram
	Trigrams hexagram.TrigramPair
	Quarter  hexagram.Quarter
	Face     hexagram.Face
}

// Position computes the wheel angle for a gate under the given sequence:
// the sequence index scales by the 5.625° step, the direction signs it, and
// the rotation offset shifts it. For a fixed sequence the mapping from gate
// to angle is a bijection.
func Position(g hexagram.Gate, s *Sequence) (WheelPosition, error) {
	if _, err := hexagram.PatternOf(g); err != nil {
		return WheelPosition{}, err
	}

	idx := s.IndexOf(g)
	base := float64(idx) * StepDegrees
	if s.Direction() == CounterClockwise {
		base = -base
	}
	return WheelPosition{
		Index:        idx,
		AngleDegrees: geom.NormalizeDegrees(base + s.RotationOffset()),
	}, nil
}

// Classify derives the full classification bundle for a gate from its
// fixed line pattern.
func Classify(g hexagram.Gate) (Classification, error) {
	p, err := hexagram.PatternOf(g)
	if err != nil {
		return Classification{}, err
	}
	return Classification{
		Gate:     g,
		Pattern:  p,
		Bigrams:  hexagram.Bigrams(p),
		Trigrams: hexagram.Trigrams(p),
		Quarter:  hexagram.QuarterOf(p),
		Face:     hexagram.FaceOf(p),
	}, nil
}
