package wheel

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"gatewheel/pkg/errors"
	"gatewheel/pkg/hexagram"
)

// Direction is the rotation sense of the wheel.
type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counterclockwise"
)

// ParseDirection validates a direction string. The empty string is not a
// valid direction: callers must state one explicitly.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Clockwise, CounterClockwise:
		return Direction(s), nil
	case "":
		return "", errors.New(errors.ErrCodeMissingMandatoryField, "direction is required")
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"direction %q (must be %q or %q)", s, Clockwise, CounterClockwise)
	}
}

// Config is the raw, file-loadable form of a sequence configuration.
//
// RotationOffsetDegrees is a pointer so that an absent field is
// distinguishable from an explicit 0.0: the wheel is undefined without a
// stated offset, and the loader refuses to invent one.
type Config struct {
	Name                  string   `toml:"name"`
	Ordering              []int    `toml:"ordering"`
	Direction             string   `toml:"direction"`
	RotationOffsetDegrees *float64 `toml:"rotation_offset_degrees"`
}

// Validate checks the config without building an index.
// It returns INCOMPLETE_SEQUENCE if the ordering is not an exact permutation
// of gates 1..64, and MISSING_MANDATORY_FIELD if direction or rotation
// offset is absent.
func (c Config) Validate() error {
	if _, err := ParseDirection(c.Direction); err != nil {
		return err
	}
	if c.RotationOffsetDegrees == nil {
		return errors.New(errors.ErrCodeMissingMandatoryField, "rotation_offset_degrees is required")
	}
	if off := *c.RotationOffsetDegrees; off < 0 || off >= 360 {
		return errors.New(errors.ErrCodeInvalidFormat,
			"rotation_offset_degrees %.4f outside [0,360)", off)
	}

	if len(c.Ordering) != hexagram.GateCount {
		return errors.New(errors.ErrCodeIncompleteSequence,
			"ordering has %d entries, want %d", len(c.Ordering), hexagram.GateCount)
	}
	seen := make(map[hexagram.Gate]int, hexagram.GateCount)
	for i, raw := range c.Ordering {
		g := hexagram.Gate(raw)
		if !g.Valid() {
			return errors.New(errors.ErrCodeIncompleteSequence,
				"ordering[%d] = %d is not a gate", i, raw)
		}
		if prev, dup := seen[g]; dup {
			return errors.New(errors.ErrCodeIncompleteSequence,
				"gate %d appears at both index %d and %d", g, prev, i)
		}
		seen[g] = i
	}
	return nil
}

// LoadConfig reads a sequence configuration from a TOML file.
// The file must state ordering, direction and rotation offset; Validate is
// the caller's responsibility (usually via [NewSequence]).
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "sequence config %s", path)
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}
