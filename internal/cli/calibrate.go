package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"gatewheel/pkg/extract"
	"gatewheel/pkg/geom"
	"gatewheel/pkg/observability"
	"gatewheel/pkg/wheel"
)

// calibrateOpts holds the command-line flags for the calibrate command.
type calibrateOpts struct {
	sequence string // preset the gate markers are aligned to
	out      string // calibration constants output path
	report   string // completeness report output path
}

// newCalibrateCmd creates the calibrate command. It parses a reference
// diagram, audits its calibration elements for completeness, and derives
// the geometry constants the render command consumes. A failed audit
// writes the report but no constants.
func newCalibrateCmd() *cobra.Command {
	opts := calibrateOpts{
		sequence: "mandala",
		out:      "calibration.toml",
		report:   "calibration-report.toml",
	}

	cmd := &cobra.Command{
		Use:   "calibrate [reference.svg]",
		Short: "Derive ring geometry constants from a reference diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalibrate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sequence, "sequence", "s", opts.sequence, "preset the gate markers follow")
	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "calibration constants output file")
	cmd.Flags().StringVar(&opts.report, "report", opts.report, "completeness report output file")

	return cmd
}

func runCalibrate(ctx context.Context, source string, opts *calibrateOpts) error {
	logger := loggerFromContext(ctx)
	start := time.Now()
	observability.Extraction().OnExtractStart(ctx, source)

	seq, err := wheel.Preset(opts.sequence)
	if err != nil {
		return err
	}

	doc, err := extract.ParseFile(source)
	if err != nil {
		observability.Extraction().OnExtractComplete(ctx, source, time.Since(start), err)
		return err
	}
	logger.Debug("parsed reference diagram", "elements", len(doc.Elements))

	cal, rep, err := extract.Calibrate(doc, seq)
	if rep != nil {
		observability.Extraction().OnAudit(ctx, rep.RunID, len(rep.Discrepancies))
		if werr := extract.SaveReport(rep, opts.report); werr != nil {
			logger.Warn("could not write report", "path", opts.report, "err", werr)
		}
	}
	observability.Extraction().OnExtractComplete(ctx, source, time.Since(start), err)
	if err != nil {
		printError("Audit failed, no constants emitted")
		if rep != nil {
			for _, d := range rep.Discrepancies {
				printDetail("%s", d)
			}
			printFile(opts.report)
		}
		return err
	}

	if err := geom.SaveCalibration(cal, opts.out); err != nil {
		return err
	}

	logger.Info("audit complete", "run", rep.RunID, "counts", rep.Summary())
	printSuccess("Calibrated %d rings, offset %.2f°", len(cal.Rings), cal.PositionOffset)
	printFile(opts.out)
	printFile(opts.report)
	return nil
}
