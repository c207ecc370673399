package main

import (
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/fecparse/internal/core"
)

var runJSON bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process every filing in the import directory once",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, closePool, err := newService(cmd)
		if err != nil {
			return err
		}
		defer closePool()

		res, err := service.Run(cmd.Context())
		if res != nil {
			var werr error
			if runJSON {
				werr = core.WriteJSON(os.Stdout, res)
			} else {
				werr = core.WriteSummary(os.Stdout, res)
			}
			if err == nil {
				err = werr
			}
		}
		return err
	},
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Print the run report as JSON")
}

// newService builds the service from the loaded config, opening a pool in
// database mode. The returned func closes the pool.
func newService(cmd *cobra.Command) (*core.Service, func(), error) {
	opts := core.OptionsFromConfig(cfg)

	var pool *pgxpool.Pool
	closePool := func() {}
	if cfg.Database.Enabled {
		var err error
		pool, err = openPool(cmd.Context(), cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		closePool = pool.Close
	}

	var p core.Pool
	if pool != nil {
		p = pool
	}
	service, err := core.NewService(opts, p)
	if err != nil {
		closePool()
		return nil, nil, err
	}
	return service, closePool, nil
}
