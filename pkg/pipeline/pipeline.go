// Package pipeline provides the core generation pipeline for gatewheel.
//
// This package implements the complete load → generate → render pipeline
// shared by every entry point. Centralizing it keeps CLI commands thin and
// guarantees identical behavior regardless of how a run is started.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Resolve the gate sequence, calibration constants, and
//     knowledge payload into immutable per-run inputs.
//  2. Generate: Run every ring generator against the shared inputs,
//     one goroutine per ring, and merge deterministically.
//  3. Render: Produce the requested output formats from the merged
//     document.
//
// A failure in any stage aborts the run; nothing is emitted after an
// error.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Sequence: "mandala",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"gatewheel/pkg/errors"
	"gatewheel/pkg/geom"
	"gatewheel/pkg/render/ring"
)

const (
	// DefaultSequence is the sequence preset used when none is named.
	DefaultSequence = "mandala"

	// DefaultCanvas is the square canvas edge length in canvas units.
	DefaultCanvas = 1000.0

	// DefaultScale is the raster scale factor for PNG output.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options configures a pipeline run.
type Options struct {
	// Sequence names a built-in preset. Ignored when ConfigPath is set.
	Sequence string

	// ConfigPath loads a sequence configuration from a TOML file instead
	// of a preset.
	ConfigPath string

	// CalibrationPath loads ring geometry from a TOML file, typically
	// produced by the calibrate command. Empty uses the built-in default
	// geometry.
	CalibrationPath string

	// PayloadPath loads a knowledge payload from a YAML file. Empty uses
	// the embedded default set.
	PayloadPath string

	// Formats lists the output formats to render.
	Formats []string

	// Scale is the raster scale factor for PNG output.
	Scale float64

	// Background is an optional SVG background fill color.
	Background string
}

// ValidateAndSetDefaults checks options and fills defaults in place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Sequence == "" && o.ConfigPath == "" {
		o.Sequence = DefaultSequence
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
		}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	return nil
}

// Stats captures timing and size information for a pipeline run.
type Stats struct {
	LoadTime     time.Duration
	GenerateTime time.Duration
	RenderTime   time.Duration
	ElementCount int
}

// Result holds the outputs of a pipeline run.
type Result struct {
	// Document is the merged ring document.
	Document *ring.Document

	// Artifacts maps each requested format to its rendered bytes.
	Artifacts map[string][]byte

	// Stats contains run timing and counts.
	Stats Stats
}

// DefaultCalibration returns the built-in ring geometry for the default
// canvas: bands proportioned like the reference diagram, centered on a
// square canvas.
func DefaultCalibration() geom.Calibration {
	center := geom.Point{X: DefaultCanvas / 2, Y: DefaultCanvas / 2}
	return geom.Calibration{
		PositionOffset: 0,
		Rings: map[string]geom.RingGeometry{
			"channel": {Center: center, InnerRadius: 100, OuterRadius: 140},
			"trigram": {Center: center, InnerRadius: 140, OuterRadius: 180},
			"name":    {Center: center, InnerRadius: 180, OuterRadius: 240},
			"number":  {Center: center, InnerRadius: 240, OuterRadius: 280},
			"glyph":   {Center: center, InnerRadius: 280, OuterRadius: 330},
			"lines":   {Center: center, InnerRadius: 330, OuterRadius: 420},
		},
	}
}
