// Package sink writes normalized filing rows to their destinations: one
// tab-delimited file per layout, or Postgres tables, plus the review file.
package sink

import (
	"context"
	"errors"

	"github.com/JonMunkholm/fecparse/internal/filing"
)

var (
	// ErrAlreadyImported is returned when the database already holds the
	// filing's header.
	ErrAlreadyImported = errors.New("filing already imported")

	// ErrInvalidValue is returned when a field cannot be stored in its column.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNoFile is returned when a transactional sink is written outside
	// BeginFile/CommitFile.
	ErrNoFile = errors.New("no filing in progress")
)

// Sink is an append-only destination for rows.
type Sink interface {
	Write(ctx context.Context, row filing.Row) error
	Close() error
}

// FileScoped is implemented by sinks that group writes by filing.
type FileScoped interface {
	BeginFile(ctx context.Context, imageID string) error
	CommitFile(ctx context.Context) error
	AbortFile(ctx context.Context) error
}
