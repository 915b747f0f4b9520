package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bnema/waytap/internal/config"
	"github.com/bnema/waytap/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Waytap configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, ui.FormatHeader("Current Configuration"))
		fmt.Fprintf(out, "Config file: %s\n\n", config.GetConfigPath())

		fmt.Fprintln(out, "[Engine]")
		fmt.Fprintf(out, "  Families: %s\n", strings.Join(cfg.Engine.Families, ", "))

		fmt.Fprintln(out, "\n[Monitor]")
		fmt.Fprintf(out, "  Max Log: %d\n", cfg.Monitor.MaxLog)

		fmt.Fprintln(out, "\n[Sink]")
		fmt.Fprintf(out, "  UInput Path: %s\n", cfg.Sink.UInputPath)
		fmt.Fprintf(out, "  UInput Name: %s\n", cfg.Sink.UInputName)

		fmt.Fprintln(out, "\n[Logging]")
		level := cfg.Logging.LogLevel
		if level == "" {
			level = "(LOG_LEVEL)"
		}
		fmt.Fprintf(out, "  Log Level: %s\n", level)

		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigPath())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path := config.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if force, _ := cmd.Flags().GetBool("force"); !force {
				fmt.Fprintf(out, "Configuration file already exists at: %s\n", path)
				fmt.Fprintln(out, "Use --force to overwrite")
				return nil
			}
		}

		if err := config.Save(); err != nil {
			return err
		}
		fmt.Fprintln(out, ui.FormatResult(true, "Configuration initialized at "+path))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().Bool("force", false, "Force overwrite existing configuration")

	rootCmd.AddCommand(configCmd)
}
