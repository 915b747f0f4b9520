package cmd

import (
	"fmt"

	"github.com/bnema/waytap/internal/config"
	"github.com/bnema/waytap/internal/ui"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively choose engine families and log level",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.FormatHeader("Waytap Setup"))

		saved, err := ui.RunSetup()
		if err != nil {
			return err
		}
		if !saved {
			fmt.Fprintln(out, ui.SubtleStyle.Render("Nothing saved"))
			return nil
		}

		fmt.Fprintln(out, ui.FormatResult(true, "Configuration saved to "+config.GetConfigPath()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
