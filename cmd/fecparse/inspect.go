package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/fecparse/internal/core"
	"github.com/JonMunkholm/fecparse/internal/filing"
)

var inspectMode string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show how a filing would be routed and rendered without writing anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := core.OptionsFromConfig(cfg).Mode
		if inspectMode != "" {
			var err error
			if mode, err = filing.ParseMode(inspectMode); err != nil {
				return err
			}
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open filing: %w", err)
		}
		defer f.Close()

		report, err := core.Inspect(cmd.Context(), f, args[0], mode, cfg.Parser.Encoding)
		if err != nil {
			return err
		}
		return core.WriteJSON(os.Stdout, report)
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectMode, "mode", "", "Render mode: flat or db (default: from config)")
}
