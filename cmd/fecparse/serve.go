package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/fecparse/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the optional import directory scanner",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, closePool, err := newService(cmd)
		if err != nil {
			return err
		}
		defer closePool()

		server := web.NewServer(service, cfg)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return server.Start()
		})
		g.Go(func() error {
			service.StartScanScheduler(gctx, cfg.Runs.ScanInterval)
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			slog.Info("shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
			defer cancel()

			// Interrupt the active run; its file stays in the import dir
			if service.Limiter().Active() {
				slog.Info("waiting for active run to stop")
			}
			if err := service.Shutdown(shutdownCtx); err != nil {
				slog.Warn("run did not stop in time", "error", err)
			}
			if err := service.Limiter().WaitForDrain(shutdownCtx); err != nil {
				slog.Warn("run limiter did not drain", "error", err)
			}

			return server.Shutdown(shutdownCtx)
		})

		slog.Info("server starting",
			"addr", cfg.Server.Addr(),
			"mode", service.Options().Mode.String(),
			"scan_interval", cfg.Runs.ScanInterval,
		)
		return g.Wait()
	},
}
