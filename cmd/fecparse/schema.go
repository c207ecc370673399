package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/fecparse/internal/database"
)

var schemaApply bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the Postgres DDL, or apply it with --apply",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !schemaApply {
			_, err := io.WriteString(os.Stdout, database.DDL())
			return err
		}

		if cfg.Database.URL == "" {
			return errors.New("--apply requires DATABASE_URL")
		}
		pool, err := openPool(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.Apply(cmd.Context(), pool); err != nil {
			return err
		}
		slog.Info("schema applied")
		return nil
	},
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaApply, "apply", false, "Execute the DDL against DATABASE_URL")
}
