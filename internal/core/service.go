package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/fecparse/internal/config"
	db "github.com/JonMunkholm/fecparse/internal/database"
	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/logging"
	"github.com/JonMunkholm/fecparse/internal/schema"
	"github.com/JonMunkholm/fecparse/internal/sink"
)

// ErrFileTooLarge is returned for filings above the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

// Pool is the database handle of a run. Satisfied by *pgxpool.Pool.
type Pool interface {
	sink.Beginner
	db.DBTX
}

// Options configures batch runs.
type Options struct {
	Mode         filing.Mode
	ImportDir    string
	ProcessedDir string
	OutputDir    string
	ReviewDir    string
	Encoding     string
	Extension    string
	MaxFileSize  int64
	RunTimeout   time.Duration
	HistorySize  int
}

// OptionsFromConfig derives run options from the application config.
func OptionsFromConfig(cfg *config.Config) Options {
	mode := filing.ModeFlat
	if cfg.Database.Enabled {
		mode = filing.ModeDatabase
	}
	return Options{
		Mode:         mode,
		ImportDir:    cfg.Dirs.ImportDir(),
		ProcessedDir: cfg.Dirs.ProcessedDir(),
		OutputDir:    cfg.Dirs.OutputDir(),
		ReviewDir:    cfg.Dirs.ReviewDir(),
		Encoding:     cfg.Parser.Encoding,
		Extension:    cfg.Parser.Extension,
		MaxFileSize:  cfg.Parser.MaxFileSize,
		RunTimeout:   cfg.Runs.Timeout,
		HistorySize:  cfg.Runs.HistorySize,
	}
}

// Service runs batches of filings from the import directory.
type Service struct {
	opts      Options
	pool      Pool
	engine    *filing.Engine
	lifecycle Lifecycle
	limiter   *RunLimiter
	history   *RunHistory
	now       func() time.Time

	// Background runs started through StartRun.
	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewService creates a Service. pool may be nil in flat mode.
func NewService(opts Options, pool Pool) (*Service, error) {
	if opts.Mode == filing.ModeDatabase && pool == nil {
		return nil, errors.New("database mode requires a connection pool")
	}
	if _, err := Decoder(opts.Encoding); err != nil {
		return nil, err
	}
	if opts.Extension == "" {
		opts.Extension = filing.Extension
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	return &Service{
		opts:   opts,
		pool:   pool,
		engine: filing.NewEngine(opts.Mode),
		lifecycle: Lifecycle{
			ProcessedDir: opts.ProcessedDir,
			ReviewDir:    opts.ReviewDir,
		},
		limiter: NewRunLimiter(),
		history: NewRunHistory(opts.HistorySize),
		now:     time.Now,
		baseCtx: baseCtx,
		cancel:  cancel,
	}, nil
}

// Options returns the service's run options.
func (s *Service) Options() Options {
	return s.opts
}

// Limiter returns the run limiter.
func (s *Service) Limiter() *RunLimiter {
	return s.limiter
}

// History returns the in-memory run history.
func (s *Service) History() *RunHistory {
	return s.history
}

// Run processes every filing in the import directory, waiting for any
// active run to finish first.
func (s *Service) Run(ctx context.Context) (*RunResult, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	return s.run(ctx, uuid.NewString())
}

// StartRun starts a run in the background and returns its ID immediately.
// Returns ErrRunInProgress when a run is already active.
func (s *Service) StartRun() (string, error) {
	if err := s.limiter.TryAcquire(); err != nil {
		return "", err
	}

	runID := uuid.NewString()
	s.history.Put(&RunResult{
		RunID:     runID,
		Mode:      s.opts.Mode.String(),
		Status:    RunRunning,
		StartedAt: s.now(),
	})

	ctx := s.baseCtx
	var cancel context.CancelFunc = func() {}
	if s.opts.RunTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.opts.RunTimeout)
	}

	// Process in background with panic recovery to ensure limiter release
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.limiter.Release()
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic in batch run", "run_id", runID, "panic", r)
				failed := &RunResult{RunID: runID, Mode: s.opts.Mode.String(), StartedAt: s.now()}
				failed.finish(RunFailed, s.now(), fmt.Errorf("internal error: %v", r))
				s.history.Put(failed)
			}
		}()
		if _, err := s.run(ctx, runID); err != nil {
			slog.Error("batch run failed", "run_id", runID, "error", err)
		}
	}()

	return runID, nil
}

// Shutdown cancels background runs and waits for them to stop.
func (s *Service) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListFilings returns the filings waiting in the import directory, sorted by
// name.
func (s *Service) ListFilings() ([]string, error) {
	entries, err := os.ReadDir(s.opts.ImportDir)
	if err != nil {
		return nil, fmt.Errorf("read import dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), s.opts.Extension) {
			continue
		}
		paths = append(paths, filepath.Join(s.opts.ImportDir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// run executes one batch. The caller holds the limiter slot.
//
// Per-file failures never fail the run; they become rejected file results.
// The returned error covers run-level failures (unreadable import dir, sinks
// that cannot be opened, cancellation).
func (s *Service) run(ctx context.Context, runID string) (res *RunResult, err error) {
	ctx = logging.ContextWithRunID(ctx, runID)
	logger := logging.FromContext(ctx)
	start := s.now()

	res = &RunResult{
		RunID:     runID,
		Mode:      s.opts.Mode.String(),
		Status:    RunRunning,
		StartedAt: start,
	}
	s.history.Put(res)

	defer func() {
		status := RunCompleted
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			status = RunCancelled
		case err != nil:
			status = RunFailed
		}
		res.finish(status, s.now(), err)
		s.history.Put(res)
		s.recordRunFinish(context.WithoutCancel(ctx), res)

		logger.Info("batch run finished",
			"status", res.Status,
			"files", len(res.Files),
			"accepted", res.Accepted,
			"rejected", res.Rejected,
			"records", res.Records(),
			"review", res.Review(),
			"duration_ms", res.FinishedAt.Sub(start).Milliseconds(),
		)
	}()

	files, err := s.ListFilings()
	if err != nil {
		return res, err
	}
	logger.Info("batch run started", "mode", res.Mode, "files", len(files))

	for _, dir := range []string{s.opts.ProcessedDir, s.opts.OutputDir, s.opts.ReviewDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return res, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	var beginner sink.Beginner
	if s.pool != nil {
		beginner = s.pool
	}
	reg, err := sink.Open(sink.Options{
		Mode:      s.opts.Mode,
		OutputDir: s.opts.OutputDir,
		ReviewDir: s.opts.ReviewDir,
		Timestamp: start,
		Pool:      beginner,
	})
	if err != nil {
		return res, err
	}
	defer func() {
		res.Counts = reg.Counts()
		res.Diverted = reg.Diverted()
		if s.opts.Mode == filing.ModeFlat {
			res.Outputs = reg.Paths()
		} else {
			res.Outputs = []string{reg.ReviewPath()}
		}
		if cerr := reg.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close sinks: %w", cerr))
		}
	}()

	s.recordRunStart(ctx, res)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		fr := s.processFile(ctx, reg, path)
		res.Files = append(res.Files, fr)
		if fr.Outcome().Accepted() {
			res.Accepted++
		} else if !fr.Interrupted {
			res.Rejected++
		}
		s.recordFile(ctx, runID, fr)
		s.history.Put(res)

		if fr.Interrupted {
			return res, ctx.Err()
		}
	}

	return res, nil
}

// processFile runs one filing through the engine and moves it.
func (s *Service) processFile(ctx context.Context, reg *sink.Registry, path string) FileResult {
	start := s.now()
	name := filepath.Base(path)
	fr := FileResult{
		FileName: name,
		ImageID:  strings.TrimSuffix(name, filepath.Ext(name)),
	}
	logger := logging.WithFields(ctx, "file", name, "image_id", fr.ImageID)

	result, err := s.processFiling(ctx, reg, path, fr.ImageID, &fr.Bytes)
	fr.FormType = result.Header.FormType
	fr.Version = result.Header.Version
	fr.Stats = result.Stats

	counts := reg.FileCounts()
	outcome := result.Outcome
	cause := err
	switch {
	case err != nil && ctx.Err() != nil:
		// Cancelled mid-file: the filing stays in the import dir for the next run.
		if aerr := reg.AbortFile(context.WithoutCancel(ctx)); aerr != nil {
			logger.Warn("abort filing", "error", aerr)
		}
		fr.Interrupted = true
		fr.Error = err.Error()
		fr.setOutcome(filing.Reject(filing.ReasonUnexpected, "interrupted"))
		fr.Status = "interrupted"
		logger.Warn("filing interrupted", "error", err)
		fr.DurationMs = s.now().Sub(start).Milliseconds()
		return fr

	case errors.Is(err, sink.ErrAlreadyImported):
		outcome = filing.Reject(filing.ReasonAlreadyImported, "")
		fr.Error = err.Error()

	case err != nil:
		outcome = filing.Reject(filing.ReasonUnexpected, err.Error())
		fr.Error = err.Error()
	}

	if outcome.Accepted() {
		if cerr := reg.CommitFile(ctx); cerr != nil {
			outcome = filing.Reject(filing.ReasonUnexpected, cerr.Error())
			cause = cerr
			fr.Error = cerr.Error()
			if s.opts.Mode == filing.ModeDatabase {
				counts = map[schema.Kind]int{schema.KindReview: counts[schema.KindReview]}
			}
		}
	} else if aerr := reg.AbortFile(ctx); aerr != nil {
		logger.Warn("abort filing", "error", aerr)
	}

	if !outcome.Accepted() && s.opts.Mode == filing.ModeDatabase {
		counts = map[schema.Kind]int{schema.KindReview: counts[schema.KindReview]}
	}
	fr.Review = counts[schema.KindReview]
	delete(counts, schema.KindReview)
	fr.Records = counts
	fr.setOutcome(outcome)
	if cause != nil {
		fr.Code = MapError(cause).Code
	}

	dest, merr := s.lifecycle.Move(path, outcome)
	if merr != nil {
		logger.Error("move filing", "error", merr)
		fr.Error = errors.Join(errorOrNil(fr.Error), merr).Error()
	}
	fr.MovedTo = dest
	fr.DurationMs = s.now().Sub(start).Milliseconds()

	if outcome.Accepted() {
		logger.Info("filing accepted",
			"form_type", fr.FormType,
			"version", fr.Version,
			"records", fr.RecordCount(),
			"review", fr.Review,
		)
	} else {
		logger.Warn("filing rejected",
			"reason", outcome.Reason,
			"detail", outcome.Detail,
			"code", fr.Code,
			"moved_to", dest,
		)
	}
	return fr
}

// processFiling opens, decodes and dispatches one filing. A panic is
// recovered into an error so the batch can continue with the next file.
func (s *Service) processFiling(ctx context.Context, reg *sink.Registry, path, imageID string, bytesRead *int64) (res filing.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error("panic while processing filing", "file", filepath.Base(path), "panic", r)
			err = fmt.Errorf("internal error: %v", r)
			res.Outcome = filing.Reject(filing.ReasonUnexpected, err.Error())
		}
	}()

	info, err := os.Stat(path)
	if err != nil {
		return res, fmt.Errorf("stat filing: %w", err)
	}
	if s.opts.MaxFileSize > 0 && info.Size() > s.opts.MaxFileSize {
		return res, fmt.Errorf("%w: %d bytes exceeds %d", ErrFileTooLarge, info.Size(), s.opts.MaxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("open filing: %w", err)
	}
	defer f.Close()

	r, counter, err := WrapForStreaming(f, s.opts.Encoding, info.Size())
	if err != nil {
		return res, err
	}
	defer func() {
		*bytesRead = counter.BytesRead
		logging.FromContext(ctx).Debug("filing read",
			"file", filepath.Base(path),
			"bytes", counter.BytesRead,
			"progress", counter.Progress(),
		)
	}()

	if err := reg.BeginFile(ctx, imageID); err != nil {
		return res, fmt.Errorf("begin filing: %w", err)
	}
	return s.engine.Process(ctx, imageID, r, reg)
}

func errorOrNil(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}
