package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gatewheel/pkg/errors"
	"gatewheel/pkg/pipeline"
	"gatewheel/pkg/render/nodelink"
	"gatewheel/pkg/wheel"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string  // output file path
	format   string  // output format: dot, svg, png, pdf
	detailed bool    // include gate names and quarters in node labels
	scale    float64 // raster scale factor for PNG
}

// newGraphCmd creates the graph command. It renders the 36-channel gate
// network as a node-link diagram instead of the positional wheel.
func newGraphCmd() *cobra.Command {
	opts := graphOpts{
		output: "channels.svg",
		format: "svg",
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the channel network as a node-link diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, png, pdf")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include gate names and quarters in node labels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG")

	return cmd
}

func runGraph(ctx context.Context, opts *graphOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	dot, err := nodelink.ToDOT(nodelink.Options{Detailed: opts.detailed})
	if err != nil {
		return err
	}

	var out []byte
	switch opts.format {
	case "dot":
		out = []byte(dot)
	case "svg":
		out, err = nodelink.RenderSVG(dot)
	case "png":
		out, err = nodelink.RenderPNG(dot, opts.scale)
	case "pdf":
		out, err = nodelink.RenderPDF(dot)
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unsupported format %q (must be dot, svg, png, or pdf)", opts.format)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	prog.done(fmt.Sprintf("Rendered %d channels", wheel.ChannelCount))
	printSuccess("Channel network rendered")
	printFile(opts.output)
	return nil
}
