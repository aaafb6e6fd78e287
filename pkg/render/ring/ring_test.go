package ring

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"gatewheel/pkg/errors"
	"gatewheel/pkg/geom"
	"gatewheel/pkg/hexagram"
	"gatewheel/pkg/payload"
	"gatewheel/pkg/wheel"
)

func testContext(t *testing.T) Context {
	t.Helper()
	seq, err := wheel.Preset("mandala")
	if err != nil {
		t.Fatalf("Preset(mandala) error: %v", err)
	}
	center := geom.Point{X: 500, Y: 500}
	return Context{
		Sequence: seq,
		Calibration: geom.Calibration{
			PositionOffset: 0,
			Rings: map[string]geom.RingGeometry{
				"channel": {Center: center, InnerRadius: 100, OuterRadius: 140},
				"trigram": {Center: center, InnerRadius: 140, OuterRadius: 180},
				"name":    {Center: center, InnerRadius: 180, OuterRadius: 240},
				"number":  {Center: center, InnerRadius: 240, OuterRadius: 280},
				"glyph":   {Center: center, InnerRadius: 280, OuterRadius: 330},
				"lines":   {Center: center, InnerRadius: 330, OuterRadius: 420},
			},
		},
		Payload: payload.Default(),
		Ratios:  geom.DefaultTextRatios,
	}
}

func TestGenerateAllCounts(t *testing.T) {
	doc, err := GenerateAll(testContext(t), DefaultGenerators())
	if err != nil {
		t.Fatalf("GenerateAll error: %v", err)
	}

	want := map[string]int{
		"channel": 2 * wheel.ChannelCount,
		"trigram": hexagram.GateCount,
		"name":    hexagram.GateCount,
		"number":  hexagram.GateCount,
		"glyph":   hexagram.GateCount,
		"lines":   hexagram.GateCount * hexagram.PatternLen,
	}
	if len(doc.Order) != len(want) {
		t.Fatalf("Order has %d rings, want %d", len(doc.Order), len(want))
	}
	for name, n := range want {
		if got := len(doc.Rings[name]); got != n {
			t.Errorf("ring %s has %d elements, want %d", name, got, n)
		}
	}
	if got := len(doc.Elements()); got != 2*wheel.ChannelCount+4*hexagram.GateCount+hexagram.GateCount*hexagram.PatternLen {
		t.Errorf("Elements() length = %d", got)
	}
}

func TestRingOutputSorted(t *testing.T) {
	doc, err := GenerateAll(testContext(t), DefaultGenerators())
	if err != nil {
		t.Fatalf("GenerateAll error: %v", err)
	}
	for name, els := range doc.Rings {
		for i := 1; i < len(els); i++ {
			a, b := els[i-1], els[i]
			if a.Gate > b.Gate || (a.Gate == b.Gate && a.SubIndex > b.SubIndex) {
				t.Errorf("ring %s not sorted at %d: (%d,%d) before (%d,%d)",
					name, i, a.Gate, a.SubIndex, b.Gate, b.SubIndex)
			}
		}
	}
}

func TestGenerateAllDeterministic(t *testing.T) {
	ctx := testContext(t)
	first, err := GenerateAll(ctx, DefaultGenerators())
	if err != nil {
		t.Fatalf("GenerateAll error: %v", err)
	}
	second, err := GenerateAll(ctx, DefaultGenerators())
	if err != nil {
		t.Fatalf("GenerateAll error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same context produced different documents")
	}
}

func TestGenerateAllMissingRing(t *testing.T) {
	ctx := testContext(t)
	delete(ctx.Calibration.Rings, "glyph")

	_, err := GenerateAll(ctx, DefaultGenerators())
	if err == nil {
		t.Fatal("expected error for missing ring geometry")
	}
	if !errors.Is(err, errors.ErrCodeInvalidRing) {
		t.Errorf("error code = %s, want INVALID_RING", errors.GetCode(err))
	}
}

func TestGenerateAllNoGenerators(t *testing.T) {
	if _, err := GenerateAll(testContext(t), nil); err == nil {
		t.Fatal("expected error for empty generator list")
	}
}

func TestChannelMembersPlacedIndividually(t *testing.T) {
	ctx := testContext(t)
	els, err := ChannelRing{}.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	byChannel := make(map[int][]Element)
	for _, el := range els {
		byChannel[el.SubIndex] = append(byChannel[el.SubIndex], el)
	}
	if len(byChannel) != wheel.ChannelCount {
		t.Fatalf("got %d channels, want %d", len(byChannel), wheel.ChannelCount)
	}

	g := ctx.Calibration.Rings["channel"]
	for i, pair := range byChannel {
		if len(pair) != 2 {
			t.Fatalf("channel %d has %d members, want 2", i, len(pair))
		}
		if pair[0].At == pair[1].At {
			t.Errorf("channel %d members share a position; each gate must sit at its own angle", i)
		}
		for _, el := range pair {
			// Every member obeys the same positioning route as any
			// other ring element for its gate.
			at, rot, err := place(ctx, el.Gate, g.MidRadius(), g.Center)
			if err != nil {
				t.Fatalf("place error: %v", err)
			}
			if el.At != at || el.RotationDegrees != rot {
				t.Errorf("channel %d gate %d placed at %v/%v, want %v/%v",
					i, el.Gate, el.At, el.RotationDegrees, at, rot)
			}
		}
	}
}

func TestGlyphPathBarCount(t *testing.T) {
	tests := []struct {
		gate     hexagram.Gate
		wantBars int
	}{
		{1, 6},  // all charged, one bar per line
		{2, 12}, // all void, two half bars per line
		{63, 9}, // alternating from a charged foundation
	}
	for _, tt := range tests {
		p, err := hexagram.PatternOf(tt.gate)
		if err != nil {
			t.Fatalf("PatternOf(%d) error: %v", tt.gate, err)
		}
		path := glyphPath(p, 40)
		if got := strings.Count(path, "M "); got != tt.wantBars {
			t.Errorf("gate %d glyph has %d bars, want %d", tt.gate, got, tt.wantBars)
		}
	}
}

func TestLineBandRadialOrder(t *testing.T) {
	ctx := testContext(t)
	els, err := LineBand{}.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	center := ctx.Calibration.Rings["lines"].Center
	dist := func(p geom.Point) float64 {
		return math.Hypot(p.X-center.X, p.Y-center.Y)
	}

	byLine := make(map[int]Element)
	for _, el := range els {
		if el.Gate == 41 {
			byLine[el.SubIndex] = el
		}
	}
	if len(byLine) != hexagram.PatternLen {
		t.Fatalf("gate 41 has %d line elements, want %d", len(byLine), hexagram.PatternLen)
	}
	for n := 1; n < hexagram.PatternLen; n++ {
		if dist(byLine[n].At) >= dist(byLine[n+1].At) {
			t.Errorf("line %d at radius %.2f not inside line %d at radius %.2f",
				n, dist(byLine[n].At), n+1, dist(byLine[n+1].At))
		}
	}
}

func TestTextRingsUseOutwardRotation(t *testing.T) {
	ctx := testContext(t)
	els, err := NumberRing{}.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	for _, el := range els {
		pos, err := wheel.Position(el.Gate, ctx.Sequence)
		if err != nil {
			t.Fatalf("Position error: %v", err)
		}
		canvas := geom.CanvasAngle(pos.AngleDegrees, ctx.Calibration.PositionOffset)
		if want := geom.OutwardRotation(canvas); el.RotationDegrees != want {
			t.Errorf("gate %d rotation = %v, want %v", el.Gate, el.RotationDegrees, want)
		}
	}
}
