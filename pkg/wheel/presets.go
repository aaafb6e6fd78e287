package wheel

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"gatewheel/pkg/errors"
)

//go:embed presets/*.toml
var presetFS embed.FS

// Preset loads a named built-in sequence configuration and validates it.
// Preset files carry explicit direction and rotation fields; a preset that
// omitted them would fail validation like any other config.
func Preset(name string) (*Sequence, error) {
	data, err := presetFS.ReadFile("presets/" + name + ".toml")
	if err != nil {
		return nil, errors.New(errors.ErrCodeFileNotFound,
			"unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return NewSequence(c)
}

// PresetNames returns the names of all built-in presets, sorted.
func PresetNames() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}
