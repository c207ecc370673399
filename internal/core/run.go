package core

import (
	"time"

	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/schema"
)

// RunStatus is the lifecycle state of a batch run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunCancelled RunStatus = "cancelled"
	RunFailed    RunStatus = "failed"
)

// FileResult reports what happened to one filing.
type FileResult struct {
	FileName    string              `json:"fileName"`
	ImageID     string              `json:"imageId"`
	FormType    string              `json:"formType,omitempty"`
	Version     string              `json:"version,omitempty"`
	Status      string              `json:"status"`
	Reason      filing.Reason       `json:"reason,omitempty"`
	Detail      string              `json:"detail,omitempty"`
	Code        string              `json:"code,omitempty"`
	Records     map[schema.Kind]int `json:"records,omitempty"`
	Review      int                 `json:"review"`
	Stats       filing.Stats        `json:"stats"`
	Bytes       int64               `json:"bytes"`
	MovedTo     string              `json:"movedTo,omitempty"`
	Interrupted bool                `json:"interrupted,omitempty"`
	Error       string              `json:"error,omitempty"`
	DurationMs  int64               `json:"durationMs"`

	outcome filing.Outcome
}

// Outcome returns the filing's verdict.
func (f FileResult) Outcome() filing.Outcome {
	return f.outcome
}

func (f *FileResult) setOutcome(o filing.Outcome) {
	f.outcome = o
	f.Reason = o.Reason
	f.Detail = o.Detail
	if o.Accepted() {
		f.Status = "accepted"
		f.Code = ""
		return
	}
	f.Status = "rejected"
	f.Code = MapError(o.Err()).Code
}

// RecordCount returns the number of typed records in the result.
func (f FileResult) RecordCount() int {
	total := 0
	for kind, n := range f.Records {
		if kind != schema.KindReview {
			total += n
		}
	}
	return total
}

// RunResult is the report of one batch run.
type RunResult struct {
	RunID      string              `json:"runId"`
	Mode       string              `json:"mode"`
	Status     RunStatus           `json:"status"`
	StartedAt  time.Time           `json:"startedAt"`
	FinishedAt *time.Time          `json:"finishedAt,omitempty"`
	Files      []FileResult        `json:"files"`
	Accepted   int                 `json:"accepted"`
	Rejected   int                 `json:"rejected"`
	Counts     map[schema.Kind]int `json:"counts,omitempty"`
	Diverted   int                 `json:"diverted"`
	Outputs    []string            `json:"outputs,omitempty"`
	Error      string              `json:"error,omitempty"`
	Code       string              `json:"code,omitempty"`
}

// Records returns the number of typed records written by the run.
func (r *RunResult) Records() int {
	total := 0
	for kind, n := range r.Counts {
		if kind != schema.KindReview {
			total += n
		}
	}
	return total
}

// Review returns the number of rows written to the review file.
func (r *RunResult) Review() int {
	return r.Counts[schema.KindReview]
}

// clone returns a deep copy safe to hand out while the run continues.
func (r *RunResult) clone() *RunResult {
	c := *r
	c.Files = append([]FileResult(nil), r.Files...)
	if r.Counts != nil {
		c.Counts = make(map[schema.Kind]int, len(r.Counts))
		for k, v := range r.Counts {
			c.Counts[k] = v
		}
	}
	c.Outputs = append([]string(nil), r.Outputs...)
	if r.FinishedAt != nil {
		t := *r.FinishedAt
		c.FinishedAt = &t
	}
	return &c
}

func (r *RunResult) finish(status RunStatus, at time.Time, err error) {
	r.Status = status
	r.FinishedAt = &at
	if err != nil {
		r.Error = err.Error()
		r.Code = MapError(err).Code
	}
}
