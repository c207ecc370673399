// Command fecparse moves FEC electronic filings from an import directory into
// flat layout files or Postgres tables.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/fecparse/internal/config"
	"github.com/JonMunkholm/fecparse/internal/core"
	"github.com/JonMunkholm/fecparse/internal/logging"
)

var (
	configPath string
	logLevel   string
	useDB      bool
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "fecparse",
	Short:         "Parse FEC electronic filings into layout files or Postgres",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file if it exists; real environment variables win
		if err := godotenv.Load(); err == nil {
			slog.Debug("loaded .env file")
		}

		var err error
		cfg, err = config.LoadFile(configFile())
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("db") {
			cfg.Database.Enabled = useDB
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
		slog.Debug("configuration loaded", "config", cfg.String())
		return nil
	},
}

func configFile() string {
	if configPath != "" {
		return configPath
	}
	return os.Getenv(config.FileEnv)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (or set "+config.FileEnv+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&useDB, "db", false, "Write to Postgres instead of flat files")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(schemaCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if core.IsUserFacing(err) {
			slog.Debug("command failed", "error", err)
			fmt.Fprintln(os.Stderr, "error:", core.FormatUserError(err))
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
