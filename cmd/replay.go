package cmd

import (
	"fmt"

	"github.com/bnema/waytap/internal/config"
	"github.com/bnema/waytap/internal/logger"
	"github.com/bnema/waytap/internal/sink"
	"github.com/bnema/waytap/internal/tap"
	"github.com/bnema/waytap/internal/trace"
	"github.com/bnema/waytap/internal/ui"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <trace>",
	Short: "Replay a recorded input trace through the engine",
	Long: `Replay loads an input trace (TOML, YAML or JSON), builds an in-process
host with the capabilities it declares and dispatches every step to a gesture
engine. Gestures are logged, and with --uinput also forwarded to a virtual
mouse device.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().Bool("uinput", false, "Forward gestures to a uinput virtual mouse")
	replayCmd.Flags().BoolP("verbose", "v", false, "Print every step")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	tr, err := trace.Load(args[0])
	if err != nil {
		return err
	}

	cfg := config.Get()
	families, err := cfg.Engine.ParseFamilies()
	if err != nil {
		return err
	}

	log := logger.New("replay")
	h := trace.NewHost(tr, logger.New("host"))
	surface := h.Window()

	t := tap.New(h, surface,
		tap.WithFamilies(families...),
		tap.WithLogger(logger.New("tap")),
	)
	defer t.Destroy()

	gestures := sink.NewLogSink(logger.New("gesture"))
	sink.Attach(t, gestures, log)

	if useUInput, _ := cmd.Flags().GetBool("uinput"); useUInput {
		mouse, err := sink.NewUInputSink(cfg.Sink.UInputPath, cfg.Sink.UInputName)
		if err != nil {
			return err
		}
		defer func() {
			if err := mouse.Close(); err != nil {
				log.Warn("failed to close virtual mouse", "err", err)
			}
		}()
		sink.Attach(t, mouse, log)
	}

	out := cmd.OutOrStdout()
	verbose, _ := cmd.Flags().GetBool("verbose")

	summary, err := trace.Replay(tr, t, h, surface, func(r trace.Result) {
		if r.Err != nil {
			log.Warn("step rejected", "index", r.Index, "step", r.Step, "err", r.Err)
		}
		if verbose {
			fmt.Fprintf(out, "%3d  %-24s delivered=%d\n", r.Index, r.Step, r.Delivered)
		}
	})
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	fmt.Fprintln(out, ui.FormatHeader("Replay Summary"))
	fmt.Fprintf(out, "Trace:     %s\n", args[0])
	fmt.Fprintf(out, "Steps:     %d\n", summary.Steps)
	fmt.Fprintf(out, "Delivered: %d\n", summary.Delivered)
	fmt.Fprintf(out, "Dropped:   %d\n", summary.Dropped)
	fmt.Fprintf(out, "Rejected:  %d\n", summary.Rejected)
	fmt.Fprintf(out, "Gestures:  down=%d move=%d up=%d\n",
		gestures.Count(tap.PhaseDown), gestures.Count(tap.PhaseMove), gestures.Count(tap.PhaseUp))
	fmt.Fprintf(out, "Position:  %s (last %s)\n", t.CurrentPosition(), t.LastPosition())

	var active []string
	for _, f := range t.ActiveFamilies() {
		active = append(active, f.String())
	}
	fmt.Fprintf(out, "Active:    %v\n", active)
	fmt.Fprintln(out, ui.FormatResult(true, "replay complete"))

	return nil
}
