package wheel

import (
	"math"
	"testing"

	"gatewheel/pkg/errors"
	"gatewheel/pkg/hexagram"
)

func kingWenConfig() Config {
	ordering := make([]int, hexagram.GateCount)
	for i := range ordering {
		ordering[i] = i + 1
	}
	offset := 0.0
	return Config{
		Name:                  "test",
		Ordering:              ordering,
		Direction:             string(Clockwise),
		RotationOffsetDegrees: &offset,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantCode errors.Code
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:     "missing direction",
			mutate:   func(c *Config) { c.Direction = "" },
			wantCode: errors.ErrCodeMissingMandatoryField,
		},
		{
			name:     "bogus direction",
			mutate:   func(c *Config) { c.Direction = "widdershins" },
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "missing rotation offset",
			mutate:   func(c *Config) { c.RotationOffsetDegrees = nil },
			wantCode: errors.ErrCodeMissingMandatoryField,
		},
		{
			name: "offset out of range",
			mutate: func(c *Config) {
				off := 360.0
				c.RotationOffsetDegrees = &off
			},
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "short ordering",
			mutate:   func(c *Config) { c.Ordering = c.Ordering[:63] },
			wantCode: errors.ErrCodeIncompleteSequence,
		},
		{
			name:     "duplicate gate",
			mutate:   func(c *Config) { c.Ordering[5] = c.Ordering[6] },
			wantCode: errors.ErrCodeIncompleteSequence,
		},
		{
			name:     "gate out of range",
			mutate:   func(c *Config) { c.Ordering[0] = 65 },
			wantCode: errors.ErrCodeIncompleteSequence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := kingWenConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() code = %s, want %s", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestSequenceIndexOf(t *testing.T) {
	s, err := NewSequence(kingWenConfig())
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	for i := 0; i < hexagram.GateCount; i++ {
		g := hexagram.Gate(i + 1)
		if got := s.IndexOf(g); got != i {
			t.Errorf("IndexOf(%d) = %d, want %d", g, got, i)
		}
		if got := s.GateAt(i); got != g {
			t.Errorf("GateAt(%d) = %d, want %d", i, got, g)
		}
	}
}

// TestPositionBijection verifies the core guarantee: under any valid
// config, the 64 gates map onto 64 distinct angles, each an exact multiple
// of 5.625° plus the rotation offset.
func TestPositionBijection(t *testing.T) {
	offsets := []float64{0, 33.75, 123.4}
	directions := []Direction{Clockwise, CounterClockwise}

	for _, dir := range directions {
		for _, off := range offsets {
			c := kingWenConfig()
			c.Direction = string(dir)
			offCopy := off
			c.RotationOffsetDegrees = &offCopy
			s, err := NewSequence(c)
			if err != nil {
				t.Fatalf("NewSequence: %v", err)
			}

			angles := make(map[float64]hexagram.Gate)
			for _, g := range hexagram.Gates() {
				pos, err := Position(g, s)
				if err != nil {
					t.Fatalf("Position(%d): %v", g, err)
				}
				if prev, dup := angles[pos.AngleDegrees]; dup {
					t.Errorf("%s/%.2f: gates %d and %d share angle %.4f",
						dir, off, prev, g, pos.AngleDegrees)
				}
				angles[pos.AngleDegrees] = g

				// Angle minus offset must be a multiple of the step.
				rel := math.Mod(pos.AngleDegrees-off+720, 360)
				steps := rel / StepDegrees
				if math.Abs(steps-math.Round(steps)) > 1e-9 {
					t.Errorf("%s/%.2f: gate %d at %.6f is off-grid", dir, off, g, pos.AngleDegrees)
				}
			}
			if len(angles) != hexagram.GateCount {
				t.Errorf("%s/%.2f: %d distinct angles, want 64", dir, off, len(angles))
			}
		}
	}
}

func TestPositionZeroOffsetClockwise(t *testing.T) {
	s, err := NewSequence(kingWenConfig())
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	pos, err := Position(s.GateAt(0), s)
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if pos.AngleDegrees != 0 {
		t.Errorf("gate at ordering[0] sits at %.6f, want exactly 0", pos.AngleDegrees)
	}

	second, _ := Position(s.GateAt(1), s)
	if second.AngleDegrees != StepDegrees {
		t.Errorf("second gate at %.6f, want %.6f", second.AngleDegrees, StepDegrees)
	}
}

func TestPositionDirectionSign(t *testing.T) {
	c := kingWenConfig()
	c.Direction = string(CounterClockwise)
	s, err := NewSequence(c)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	pos, _ := Position(s.GateAt(1), s)
	want := 360 - StepDegrees
	if math.Abs(pos.AngleDegrees-want) > 1e-9 {
		t.Errorf("counter-clockwise second gate at %.6f, want %.6f", pos.AngleDegrees, want)
	}
}

// TestMandalaPresetAlignment covers the reference scenario: the mandala
// ordering opens with gate 41 at the 33.75° offset, and the gate at
// sequence index 58 lands on the 0° reference alignment.
func TestMandalaPresetAlignment(t *testing.T) {
	s, err := Preset("mandala")
	if err != nil {
		t.Fatalf("Preset(mandala): %v", err)
	}
	if s.Direction() != Clockwise {
		t.Fatalf("direction = %s, want clockwise", s.Direction())
	}

	first, err := Position(41, s)
	if err != nil {
		t.Fatalf("Position(41): %v", err)
	}
	if first.Index != 0 || first.AngleDegrees != 33.75 {
		t.Errorf("gate 41 at index %d angle %.4f, want 0 / 33.75", first.Index, first.AngleDegrees)
	}

	ref := s.GateAt(58)
	pos, err := Position(ref, s)
	if err != nil {
		t.Fatalf("Position(%d): %v", ref, err)
	}
	if math.Abs(pos.AngleDegrees) > 1e-9 {
		t.Errorf("gate %d at index 58 sits at %.6f, want 0", ref, pos.AngleDegrees)
	}
}

// TestOrderingRotationDecoupled: changing the rotation offset shifts every
// angle by the same delta without touching sequence indices.
func TestOrderingRotationDecoupled(t *testing.T) {
	base := kingWenConfig()
	s0, err := NewSequence(base)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	shifted := kingWenConfig()
	off := 90.0
	shifted.RotationOffsetDegrees = &off
	s90, err := NewSequence(shifted)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	for _, g := range hexagram.Gates() {
		p0, _ := Position(g, s0)
		p90, _ := Position(g, s90)
		if p0.Index != p90.Index {
			t.Fatalf("gate %d index changed with rotation: %d vs %d", g, p0.Index, p90.Index)
		}
		delta := math.Mod(p90.AngleDegrees-p0.AngleDegrees+720, 360)
		if math.Abs(delta-90) > 1e-9 {
			t.Errorf("gate %d shifted by %.6f, want 90", g, delta)
		}
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	want := map[string]bool{"mandala": false, "kingwen": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Errorf("preset %q missing from %v", n, names)
		}
	}

	if _, err := Preset("zodiac"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Error("unknown preset should fail with FILE_NOT_FOUND")
	}
}

func TestChannels(t *testing.T) {
	all := Channels()
	if len(all) != ChannelCount {
		t.Fatalf("Channels() = %d pairs, want %d", len(all), ChannelCount)
	}

	seen := make(map[[2]hexagram.Gate]bool)
	for _, c := range all {
		if !c.A.Valid() || !c.B.Valid() {
			t.Errorf("channel %d-%d references an invalid gate", c.A, c.B)
		}
		if c.A >= c.B {
			t.Errorf("channel %d-%d not in ascending order", c.A, c.B)
		}
		key := [2]hexagram.Gate{c.A, c.B}
		if seen[key] {
			t.Errorf("channel %d-%d duplicated", c.A, c.B)
		}
		seen[key] = true
	}
}

func TestChannelsOf(t *testing.T) {
	got := ChannelsOf(10)
	if len(got) != 3 {
		t.Fatalf("ChannelsOf(10) = %d channels, want 3", len(got))
	}
	partners := map[hexagram.Gate]bool{}
	for _, c := range got {
		if c.A == 10 {
			partners[c.B] = true
		} else {
			partners[c.A] = true
		}
	}
	for _, want := range []hexagram.Gate{20, 34, 57} {
		if !partners[want] {
			t.Errorf("gate 10 missing partner %d", want)
		}
	}
}

func TestClassify(t *testing.T) {
	c, err := Classify(41)
	if err != nil {
		t.Fatalf("Classify(41): %v", err)
	}
	if c.Pattern.String() != "110001" {
		t.Errorf("pattern = %s, want 110001", c.Pattern)
	}
	if c.Trigrams.Lower != hexagram.TrigramLake || c.Trigrams.Upper != hexagram.TrigramMountain {
		t.Errorf("trigrams = %s/%s, want Lake/Mountain", c.Trigrams.Lower, c.Trigrams.Upper)
	}
	if c.Quarter != hexagram.QuarterInitiation {
		t.Errorf("quarter = %s, want Initiation", c.Quarter)
	}

	if _, err := Classify(0); !errors.Is(err, errors.ErrCodeInvalidGate) {
		t.Error("Classify(0) should fail with INVALID_GATE")
	}
}
