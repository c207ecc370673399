package core

import (
	"errors"
	"sync"
)

// ErrRunNotFound is returned for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// DefaultHistorySize is used when no history size is configured.
const DefaultHistorySize = 50

// RunHistory keeps the most recent runs in memory, oldest evicted first.
type RunHistory struct {
	mu    sync.RWMutex
	size  int
	order []string
	runs  map[string]*RunResult
}

// NewRunHistory creates a history holding at most size runs.
func NewRunHistory(size int) *RunHistory {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &RunHistory{
		size: size,
		runs: make(map[string]*RunResult),
	}
}

// Put stores a snapshot of the run, replacing an earlier one with the same ID.
func (h *RunHistory) Put(r *RunResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.runs[r.RunID]; !ok {
		h.order = append(h.order, r.RunID)
	}
	h.runs[r.RunID] = r.clone()

	for len(h.order) > h.size {
		delete(h.runs, h.order[0])
		h.order = h.order[1:]
	}
}

// Get returns a copy of the run with the given ID.
func (h *RunHistory) Get(id string) (*RunResult, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	r, ok := h.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	return r.clone(), nil
}

// List returns copies of all runs, newest first.
func (h *RunHistory) List() []*RunResult {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*RunResult, 0, len(h.order))
	for i := len(h.order) - 1; i >= 0; i-- {
		out = append(out, h.runs[h.order[i]].clone())
	}
	return out
}
