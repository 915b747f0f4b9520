package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bnema/waytap/internal/config"
	"github.com/bnema/waytap/internal/logger"
	"github.com/bnema/waytap/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch gestures produced by the terminal mouse",
	Long: `Monitor opens a full-screen view that uses the terminal as a mouse-only
input surface. Clicks and drags are turned into gestures and listed as they
arrive.

Controls:
  p  pause or resume delivery
  c  clear the log
  q  quit`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	families, err := cfg.Engine.ParseFamilies()
	if err != nil {
		return err
	}

	// The TUI owns the terminal while it runs
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	model := ui.NewMonitorModel(families, cfg.Monitor.MaxLog)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("monitor failed: %w", err)
	}
	return nil
}
