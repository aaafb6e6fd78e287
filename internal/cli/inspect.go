package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gatewheel/pkg/errors"
	"gatewheel/pkg/hexagram"
	"gatewheel/pkg/payload"
	"gatewheel/pkg/wheel"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	sequence    string // preset used for the angle column
	interactive bool   // launch the gate browser TUI
}

// newInspectCmd creates the inspect command. It prints the classification
// bundle of one or more gates, or launches an interactive browser over
// all 64.
func newInspectCmd() *cobra.Command {
	opts := inspectOpts{sequence: "mandala"}

	cmd := &cobra.Command{
		Use:   "inspect [gate...]",
		Short: "Show gate classifications (pattern, trigrams, quarter, face, angle)",
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := wheel.Preset(opts.sequence)
			if err != nil {
				return err
			}
			if opts.interactive {
				return runGateBrowser(seq)
			}
			if len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidFormat,
					"name at least one gate, or use --interactive")
			}
			set := payload.Default()
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return errors.New(errors.ErrCodeInvalidGate, "gate %q is not a number", arg)
				}
				if i > 0 {
					printNewline()
				}
				if err := printGate(hexagram.Gate(n), seq, set); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.sequence, "sequence", "s", opts.sequence, "built-in sequence preset")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse gates interactively")

	return cmd
}

// printGate renders one gate's classification bundle.
func printGate(g hexagram.Gate, seq *wheel.Sequence, set *payload.Set) error {
	c, err := wheel.Classify(g)
	if err != nil {
		return err
	}
	pos, err := wheel.Position(g, seq)
	if err != nil {
		return err
	}
	info, err := set.Gate(g)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Gate %d · %s", g, info.Name)))
	if info.Keynote != "" {
		printDetail("%s", info.Keynote)
	}
	printKeyValue("pattern", patternString(c.Pattern))
	printKeyValue("trigrams", fmt.Sprintf("%s over %s", c.Trigrams.Upper, c.Trigrams.Lower))
	printKeyValue("quarter", c.Quarter.String())
	printKeyValue("face", c.Face.String())
	printKeyValue("angle", fmt.Sprintf("%.3f° (index %d, %s)", pos.AngleDegrees, pos.Index, seq.Name()))
	if chs := wheel.ChannelsOf(g); len(chs) > 0 {
		names := make([]string, len(chs))
		for i, ch := range chs {
			partner := ch.A
			if partner == g {
				partner = ch.B
			}
			names[i] = fmt.Sprintf("%s (%d)", ch.Name, partner)
		}
		printKeyValue("channels", strings.Join(names, ", "))
	}
	return nil
}

// patternString renders a pattern volatile line first, the way the glyphs
// read from the wheel's outer edge.
func patternString(p hexagram.Pattern) string {
	var b strings.Builder
	for i := hexagram.PatternLen - 1; i >= 0; i-- {
		if p[i] == hexagram.LineCharge {
			b.WriteString("━━━")
		} else {
			b.WriteString("━ ━")
		}
		if i > 0 {
			b.WriteString("  ")
		}
	}
	return b.String()
}

// runGateBrowser launches the interactive gate list.
func runGateBrowser(seq *wheel.Sequence) error {
	model := newGateListModel(seq)
	_, err := tea.NewProgram(model).Run()
	return err
}
