// Package observability provides hooks for metrics, tracing, and logging.
//
// The package uses a simple hooks pattern: hook interfaces per event
// category, no-op defaults, and registration at startup. This keeps the
// core library free of observability backends while letting main wire in
// whatever it wants (OpenTelemetry, Prometheus, plain logs).
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnGenerateStart(ctx, sequence, ringCount)
//	// ... generate rings ...
//	observability.Pipeline().OnGenerateComplete(ctx, sequence, elementCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the wheel generation pipeline.
type PipelineHooks interface {
	// Generation events, one pair per run across all rings.
	OnGenerateStart(ctx context.Context, sequence string, ringCount int)
	OnGenerateComplete(ctx context.Context, sequence string, elementCount int, duration time.Duration, err error)

	// Render events, one pair per run across all output formats.
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// ExtractionHooks receives events from reference-diagram calibration.
type ExtractionHooks interface {
	OnExtractStart(ctx context.Context, source string)

	// OnAudit records the audit outcome; discrepancies is zero for a
	// complete diagram.
	OnAudit(ctx context.Context, runID string, discrepancies int)

	OnExtractComplete(ctx context.Context, source string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnGenerateStart(context.Context, string, int) {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopExtractionHooks is a no-op implementation of ExtractionHooks.
type NoopExtractionHooks struct{}

func (NoopExtractionHooks) OnExtractStart(context.Context, string)                          {}
func (NoopExtractionHooks) OnAudit(context.Context, string, int)                            {}
func (NoopExtractionHooks) OnExtractComplete(context.Context, string, time.Duration, error) {}

var (
	pipelineHooks   PipelineHooks   = NoopPipelineHooks{}
	extractionHooks ExtractionHooks = NoopExtractionHooks{}
	hooksMu         sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetExtractionHooks registers custom extraction hooks.
// This should be called once at application startup before any calibration runs.
func SetExtractionHooks(h ExtractionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		extractionHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Extraction returns the registered extraction hooks.
func Extraction() ExtractionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return extractionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	extractionHooks = NoopExtractionHooks{}
}
