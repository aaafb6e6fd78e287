package observability

import (
	"context"
	"testing"
	"time"
)

type testPipelineHooks struct {
	NoopPipelineHooks
	generateStarts int
}

func (h *testPipelineHooks) OnGenerateStart(context.Context, string, int) {
	h.generateStarts++
}

type testExtractionHooks struct {
	NoopExtractionHooks
	audits int
}

func (h *testExtractionHooks) OnAudit(context.Context, string, int) {
	h.audits++
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnGenerateStart(ctx, "mandala", 6)
	p.OnGenerateComplete(ctx, "mandala", 712, time.Second, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	e := NoopExtractionHooks{}
	e.OnExtractStart(ctx, "reference.svg")
	e.OnAudit(ctx, "run-1", 0)
	e.OnExtractComplete(ctx, "reference.svg", time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Extraction().(NoopExtractionHooks); !ok {
		t.Error("Extraction() should return NoopExtractionHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}
	Pipeline().OnGenerateStart(context.Background(), "mandala", 6)
	if customPipeline.generateStarts != 1 {
		t.Error("custom hooks should receive events")
	}

	customExtraction := &testExtractionHooks{}
	SetExtractionHooks(customExtraction)
	if Extraction() != customExtraction {
		t.Error("SetExtractionHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("nil hooks should not replace registered hooks")
	}
}
