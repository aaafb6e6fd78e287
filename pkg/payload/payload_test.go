package payload

import (
	"os"
	"path/filepath"
	"testing"

	"gatewheel/pkg/errors"
	"gatewheel/pkg/hexagram"
)

func TestDefaultCoversAllGates(t *testing.T) {
	s := Default()
	for _, g := range hexagram.Gates() {
		info, err := s.Gate(g)
		if err != nil {
			t.Fatalf("Gate(%d): %v", g, err)
		}
		if info.Name == "" {
			t.Errorf("gate %d has empty name", g)
		}
	}
}

func TestDefaultKnownNames(t *testing.T) {
	s := Default()
	tests := []struct {
		gate hexagram.Gate
		name string
	}{
		{1, "The Creative"},
		{2, "The Receptive"},
		{41, "Decrease"},
		{64, "Before Completion"},
	}
	for _, tt := range tests {
		info, err := s.Gate(tt.gate)
		if err != nil {
			t.Fatalf("Gate(%d): %v", tt.gate, err)
		}
		if info.Name != tt.name {
			t.Errorf("gate %d name = %q, want %q", tt.gate, info.Name, tt.name)
		}
	}
}

func TestLineFallback(t *testing.T) {
	s := Default()
	if got := s.Line(11, 3); got != "Line 3" {
		t.Errorf("Line(11, 3) = %q, want ordinal fallback", got)
	}

	s.Gates[11] = GateInfo{
		Name:  "Peace",
		Lines: map[int]string{3: "Standstill averted"},
	}
	if got := s.Line(11, 3); got != "Standstill averted" {
		t.Errorf("Line(11, 3) = %q, want payload text", got)
	}
	if got := s.Line(11, 4); got != "Line 4" {
		t.Errorf("Line(11, 4) = %q, want ordinal fallback", got)
	}
}

func TestValidateRejectsGaps(t *testing.T) {
	s := Default()
	delete(s.Gates, 37)
	if err := s.Validate(); !errors.Is(err, errors.ErrCodePayloadGap) {
		t.Errorf("Validate() code = %s, want PAYLOAD_GAP", errors.GetCode(err))
	}
}

func TestValidateRejectsBadLineKeys(t *testing.T) {
	s := Default()
	s.Gates[5] = GateInfo{Name: "Waiting", Lines: map[int]string{7: "nope"}}
	if err := s.Validate(); !errors.Is(err, errors.ErrCodePayloadGap) {
		t.Errorf("Validate() code = %s, want PAYLOAD_GAP", errors.GetCode(err))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gates.yaml")
	if err := os.WriteFile(path, defaultData, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Gates) != hexagram.GateCount {
		t.Errorf("loaded %d gates, want %d", len(s.Gates), hexagram.GateCount)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Error("missing file should yield FILE_NOT_FOUND")
	}
}
