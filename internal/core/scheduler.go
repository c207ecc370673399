package core

// scheduler.go triggers batch runs periodically in serve mode.
//
// A tick that finds a run already active is skipped rather than queued, so a
// slow batch never causes a backlog of runs.

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// StartScanScheduler runs a batch immediately and then every interval until
// ctx is cancelled. It blocks; start it in its own goroutine.
func (s *Service) StartScanScheduler(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	slog.Info("scan scheduler started", "interval", interval, "import_dir", s.opts.ImportDir)

	s.scan()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("scan scheduler stopped")
			return
		case <-ticker.C:
			s.scan()
		}
	}
}

// scan starts a run unless the import dir is empty or a run is active.
func (s *Service) scan() {
	files, err := s.ListFilings()
	if err != nil {
		slog.Error("scan import dir", "error", err)
		return
	}
	if len(files) == 0 {
		slog.Debug("scan found no filings")
		return
	}

	runID, err := s.StartRun()
	if errors.Is(err, ErrRunInProgress) {
		slog.Debug("scan skipped, run in progress")
		return
	}
	if err != nil {
		slog.Error("start scheduled run", "error", err)
		return
	}
	slog.Info("scheduled run started", "run_id", runID, "files", len(files))
}
