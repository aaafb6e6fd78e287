package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gatewheel/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string  // output file path (single format) or base path (multiple)
	sequence    string  // built-in sequence preset name
	config      string  // sequence configuration file, overrides --sequence
	calibration string  // ring geometry constants file
	payload     string  // knowledge payload file
	formats     string  // comma-separated output formats
	background  string  // SVG background fill
	scale       float64 // raster scale factor for PNG
}

// newRenderCmd creates the render command for generating wheel output.
// It renders every information band into one merged document and writes
// the requested formats.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		sequence: pipeline.DefaultSequence,
		scale:    pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the wheel to SVG, PNG, PDF, or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "wheel", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.sequence, "sequence", "s", opts.sequence, "built-in sequence preset")
	cmd.Flags().StringVar(&opts.config, "config", "", "sequence configuration file (overrides --sequence)")
	cmd.Flags().StringVar(&opts.calibration, "calibration", "", "ring geometry constants file (from calibrate)")
	cmd.Flags().StringVar(&opts.payload, "payload", "", "knowledge payload file")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().StringVar(&opts.background, "background", "", "SVG background fill color")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG")

	return cmd
}

func runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	formats := parseFormats(opts.formats)

	spinner := newSpinnerWithContext(ctx, "Rendering wheel...")
	spinner.Start()

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Sequence:        opts.sequence,
		ConfigPath:      opts.config,
		CalibrationPath: opts.calibration,
		PayloadPath:     opts.payload,
		Formats:         formats,
		Scale:           opts.scale,
		Background:      opts.background,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	// All artifacts rendered; write them in one pass at the end.
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(opts.output, format, len(formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	prog.done(fmt.Sprintf("Rendered %d elements across %d rings",
		result.Stats.ElementCount, len(result.Document.Order)))
	printSuccess("Wheel rendered")
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// outputPath derives the file path for one format. With multiple formats
// the output flag is a base path and each format appends its extension;
// with a single format an existing extension is respected.
func outputPath(output, format string, multi bool) string {
	if !multi && filepath.Ext(output) != "" {
		return output
	}
	return strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
}
