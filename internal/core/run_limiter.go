package core

// run_limiter.go serializes batch runs.
//
// A run owns the import directory and the output files stamped with its start
// time, so two runs must never overlap. The limiter is a semaphore with one
// slot: HTTP triggers use TryAcquire and report a conflict when a run is
// already active, while the scheduler waits with Acquire.
//
// WaitForDrain blocks until the active run completes, for graceful shutdown.

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRunInProgress is returned when another run holds the only slot.
var ErrRunInProgress = errors.New("a batch run is already in progress")

// RunLimiter allows at most one active batch run.
type RunLimiter struct {
	semaphore chan struct{}

	mu      sync.RWMutex
	active  bool
	started time.Time
}

// NewRunLimiter creates an idle limiter.
func NewRunLimiter() *RunLimiter {
	return &RunLimiter{semaphore: make(chan struct{}, 1)}
}

// Acquire blocks until the slot is free or ctx is done.
// The caller MUST call Release() when the run completes (use defer).
func (l *RunLimiter) Acquire(ctx context.Context) error {
	select {
	case l.semaphore <- struct{}{}:
		l.markActive()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire takes the slot without blocking.
// Returns ErrRunInProgress when a run is active.
func (l *RunLimiter) TryAcquire() error {
	select {
	case l.semaphore <- struct{}{}:
		l.markActive()
		return nil
	default:
		return ErrRunInProgress
	}
}

func (l *RunLimiter) markActive() {
	l.mu.Lock()
	l.active = true
	l.started = time.Now()
	l.mu.Unlock()
}

// Release frees the slot.
// Must be called exactly once for each successful Acquire/TryAcquire.
func (l *RunLimiter) Release() {
	l.mu.Lock()
	l.active = false
	l.started = time.Time{}
	l.mu.Unlock()

	<-l.semaphore
}

// Active reports whether a run holds the slot.
func (l *RunLimiter) Active() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// WaitForDrain blocks until no run is active or ctx is cancelled.
func (l *RunLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if !l.Active() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunLimiterStatus is a snapshot of the limiter state.
type RunLimiterStatus struct {
	Active  bool       `json:"active"`
	Started *time.Time `json:"started,omitempty"`
}

// Status returns the current limiter state for the health endpoint.
func (l *RunLimiter) Status() RunLimiterStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()

	status := RunLimiterStatus{Active: l.active}
	if l.active {
		started := l.started
		status.Started = &started
	}
	return status
}
