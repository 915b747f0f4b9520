package cmd

import (
	"github.com/bnema/waytap/internal/config"
	"github.com/bnema/waytap/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "waytap",
		Short: "Waytap - unified pointer, touch and mouse gestures",
		Long: `Waytap merges the pointer, touch and mouse event families of a surface
into a single stream of down, move and up gestures. Duplicate families are
retired as soon as a more specific one is seen, and pointer capture requests
are deferred to the next down gesture.

Recorded input traces can be replayed through the engine, and the terminal
itself can be used as a mouse-only input surface.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/.config/waytap/waytap.toml)")
}

func initConfig(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		config.SetConfigPath(configPath)
	}
	if err := config.Init(); err != nil {
		return err
	}

	if level := config.Get().Logging.LogLevel; level != "" {
		logger.SetLevel(level)
	}
	return nil
}
