package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"gatewheel/pkg/geom"
	"gatewheel/pkg/observability"
	"gatewheel/pkg/payload"
	"gatewheel/pkg/render"
	"gatewheel/pkg/render/ring"
	"gatewheel/pkg/render/ring/sink"
	"gatewheel/pkg/wheel"
)

// Runner executes the pipeline. It is stateless apart from its logger, so
// multiple goroutines can safely share one Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to the default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → generate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Load
	loadStart := time.Now()
	genCtx, err := r.load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Info("loaded inputs",
		"sequence", genCtx.Sequence.Name(),
		"rings", len(genCtx.Calibration.Rings),
		"duration", result.Stats.LoadTime)

	// Stage 2: Generate
	gens := ring.DefaultGenerators()
	generateStart := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, genCtx.Sequence.Name(), len(gens))

	doc, err := ring.GenerateAll(genCtx, gens)
	elements := 0
	if doc != nil {
		elements = len(doc.Elements())
	}
	result.Stats.GenerateTime = time.Since(generateStart)
	observability.Pipeline().OnGenerateComplete(ctx,
		genCtx.Sequence.Name(), elements, result.Stats.GenerateTime, err)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Document = doc
	result.Stats.ElementCount = elements

	r.Logger.Info("generated rings",
		"rings", len(doc.Order),
		"elements", elements,
		"duration", result.Stats.GenerateTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	err = r.render(doc, opts, result)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// load resolves every run input once. The returned context is immutable
// for the rest of the run.
func (r *Runner) load(opts Options) (ring.Context, error) {
	var seq *wheel.Sequence
	var err error
	if opts.ConfigPath != "" {
		var cfg wheel.Config
		cfg, err = wheel.LoadConfig(opts.ConfigPath)
		if err == nil {
			seq, err = wheel.NewSequence(cfg)
		}
	} else {
		seq, err = wheel.Preset(opts.Sequence)
	}
	if err != nil {
		return ring.Context{}, err
	}

	cal := DefaultCalibration()
	if opts.CalibrationPath != "" {
		cal, err = geom.LoadCalibration(opts.CalibrationPath)
		if err != nil {
			return ring.Context{}, err
		}
	}

	set := payload.Default()
	if opts.PayloadPath != "" {
		set, err = payload.Load(opts.PayloadPath)
		if err != nil {
			return ring.Context{}, err
		}
	}

	return ring.Context{
		Sequence:    seq,
		Calibration: cal,
		Payload:     set,
		Ratios:      geom.DefaultTextRatios,
	}, nil
}

// render fills result.Artifacts for every requested format. The SVG is
// assembled at most once and reused for raster conversion.
func (r *Runner) render(doc *ring.Document, opts Options, result *Result) error {
	svgOpts := []sink.SVGOption{sink.WithCanvas(DefaultCanvas, DefaultCanvas)}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}

	var svg []byte
	needSVG := func() []byte {
		if svg == nil {
			svg = sink.RenderSVG(doc, svgOpts...)
		}
		return svg
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			result.Artifacts[FormatSVG] = needSVG()
		case FormatJSON:
			var buf bytes.Buffer
			if err := sink.WriteJSON(doc, &buf); err != nil {
				return err
			}
			result.Artifacts[FormatJSON] = buf.Bytes()
		case FormatPNG:
			png, err := render.ToPNG(needSVG(), opts.Scale)
			if err != nil {
				return err
			}
			result.Artifacts[FormatPNG] = png
		case FormatPDF:
			pdf, err := render.ToPDF(needSVG())
			if err != nil {
				return err
			}
			result.Artifacts[FormatPDF] = pdf
		}
	}
	return nil
}
