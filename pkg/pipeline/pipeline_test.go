package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"gatewheel/pkg/errors"
	"gatewheel/pkg/geom"
	"gatewheel/pkg/hexagram"
	"gatewheel/pkg/observability"
	"gatewheel/pkg/wheel"
)

func testRunner() *Runner {
	return NewRunner(log.New(io.Discard))
}

func TestExecuteDefaults(t *testing.T) {
	result, err := testRunner().Execute(context.Background(), Options{
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(result.Document.Order) != 6 {
		t.Errorf("document has %d rings, want 6", len(result.Document.Order))
	}
	wantElements := 2*wheel.ChannelCount + 4*hexagram.GateCount + hexagram.GateCount*hexagram.PatternLen
	if result.Stats.ElementCount != wantElements {
		t.Errorf("ElementCount = %d, want %d", result.Stats.ElementCount, wantElements)
	}

	svg := string(result.Artifacts[FormatSVG])
	if !strings.HasPrefix(svg, "<svg") {
		t.Error("svg artifact missing or malformed")
	}
	if !strings.Contains(svg, `data-gate="41"`) {
		t.Error("svg artifact missing gate annotations")
	}
	if len(result.Artifacts[FormatJSON]) == 0 {
		t.Error("json artifact missing")
	}
}

func TestExecuteInvalidFormat(t *testing.T) {
	_, err := testRunner().Execute(context.Background(), Options{
		Formats: []string{"docx"},
	})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %s, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestExecuteConfigWithoutDirection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.toml")
	var b strings.Builder
	b.WriteString(`name = "broken"` + "\n")
	b.WriteString("rotation_offset_degrees = 0.0\n")
	b.WriteString("ordering = [")
	for g := 1; g <= hexagram.GateCount; g++ {
		if g > 1 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(g))
	}
	b.WriteString("]\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := testRunner().Execute(context.Background(), Options{ConfigPath: path})
	if err == nil {
		t.Fatal("expected error for config without direction")
	}
	if !errors.Is(err, errors.ErrCodeMissingMandatoryField) {
		t.Errorf("error code = %s, want MISSING_MANDATORY_FIELD", errors.GetCode(err))
	}
}

func TestExecuteCalibrationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.toml")
	cal := DefaultCalibration()
	cal.PositionOffset = 33.75
	if err := geom.SaveCalibration(cal, path); err != nil {
		t.Fatalf("SaveCalibration error: %v", err)
	}

	result, err := testRunner().Execute(context.Background(), Options{
		CalibrationPath: path,
		Formats:         []string{FormatSVG},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(result.Artifacts[FormatSVG]) == 0 {
		t.Error("svg artifact missing")
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu       sync.Mutex
	events   []string
	elements int
}

func (h *recordingHooks) OnGenerateStart(_ context.Context, sequence string, rings int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "generate-start")
}

func (h *recordingHooks) OnGenerateComplete(_ context.Context, sequence string, elements int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "generate-complete")
	h.elements = elements
}

func (h *recordingHooks) OnRenderStart(_ context.Context, formats []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "render-start")
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "render-complete")
}

func TestExecuteEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	result, err := testRunner().Execute(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	want := []string{"generate-start", "generate-complete", "render-start", "render-complete"}
	if len(hooks.events) != len(want) {
		t.Fatalf("events = %v, want %v", hooks.events, want)
	}
	for i, e := range want {
		if hooks.events[i] != e {
			t.Errorf("events[%d] = %s, want %s", i, hooks.events[i], e)
		}
	}
	if hooks.elements != result.Stats.ElementCount {
		t.Errorf("hook saw %d elements, result has %d", hooks.elements, result.Stats.ElementCount)
	}
}
