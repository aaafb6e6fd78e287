package payload

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gatewheel/pkg/errors"
	"gatewheel/pkg/hexagram"
)

//go:embed data/gates.yaml
var defaultData []byte

// GateInfo is the knowledge content attached to one gate.
type GateInfo struct {
	Name    string         `yaml:"name"`
	Keynote string         `yaml:"keynote,omitempty"`
	Lines   map[int]string `yaml:"lines,omitempty"` // keyed 1..6
}

// Set is a complete payload covering all 64 gates.
type Set struct {
	Gates map[int]GateInfo `yaml:"gates"`
}

// Default returns the embedded payload set. The embedded data is validated
// by tests, so a parse failure here is a build defect.
func Default() *Set {
	s, err := parse(defaultData)
	if err != nil {
		panic("payload: embedded data invalid: " + err.Error())
	}
	return s
}

// Load reads a payload set from a YAML file and validates coverage.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "payload %s", path)
	}
	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

func parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every gate has a named entry. A gate without
// content would leave a silent hole in the name ring, so the gap is fatal.
func (s *Set) Validate() error {
	for _, g := range hexagram.Gates() {
		info, ok := s.Gates[int(g)]
		if !ok {
			return errors.New(errors.ErrCodePayloadGap, "gate %d has no payload entry", g)
		}
		if info.Name == "" {
			return errors.New(errors.ErrCodePayloadGap, "gate %d entry has no name", g)
		}
		for n := range info.Lines {
			if n < 1 || n > hexagram.PatternLen {
				return errors.New(errors.ErrCodePayloadGap,
					"gate %d has line text for invalid line %d", g, n)
			}
		}
	}
	return nil
}

// Gate returns the content for one gate.
func (s *Set) Gate(g hexagram.Gate) (GateInfo, error) {
	info, ok := s.Gates[int(g)]
	if !ok {
		return GateInfo{}, errors.New(errors.ErrCodePayloadGap, "gate %d has no payload entry", g)
	}
	return info, nil
}

// Line returns the text for one line of a gate, falling back to an ordinal
// label when the payload carries no per-line text.
func (s *Set) Line(g hexagram.Gate, n int) string {
	if info, ok := s.Gates[int(g)]; ok {
		if text, ok := info.Lines[n]; ok && text != "" {
			return text
		}
	}
	return fmt.Sprintf("Line %d", n)
}
