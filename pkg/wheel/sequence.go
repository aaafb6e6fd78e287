package wheel

import (
	"gatewheel/pkg/hexagram"
)

// Sequence is a validated, indexed sequence configuration. It is immutable
// after construction and safe for concurrent readers.
type Sequence struct {
	name      string
	ordering  []hexagram.Gate
	direction Direction
	offset    float64
	index     map[hexagram.Gate]int
}

// NewSequence validates a Config and builds the gate index.
func NewSequence(c Config) (*Sequence, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s := &Sequence{
		name:      c.Name,
		ordering:  make([]hexagram.Gate, len(c.Ordering)),
		direction: Direction(c.Direction),
		offset:    *c.RotationOffsetDegrees,
		index:     make(map[hexagram.Gate]int, len(c.Ordering)),
	}
	for i, raw := range c.Ordering {
		g := hexagram.Gate(raw)
		s.ordering[i] = g
		s.index[g] = i
	}
	return s, nil
}

// Name returns the configuration name, if any.
func (s *Sequence) Name() string { return s.name }

// Direction returns the rotation sense of the wheel.
func (s *Sequence) Direction() Direction { return s.direction }

// RotationOffset returns the rotation offset in degrees, within [0,360).
func (s *Sequence) RotationOffset() float64 { return s.offset }

// IndexOf returns the position of a gate within the ordering. The ordering
// is a validated bijection, so every valid gate has exactly one index.
func (s *Sequence) IndexOf(g hexagram.Gate) int { return s.index[g] }

// GateAt returns the gate at the given sequence index.
func (s *Sequence) GateAt(i int) hexagram.Gate { return s.ordering[i] }

// Ordering returns a copy of the gate ordering.
func (s *Sequence) Ordering() []hexagram.Gate {
	out := make([]hexagram.Gate, len(s.ordering))
	copy(out, s.ordering)
	return out
}
