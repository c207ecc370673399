package sink

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/schema"
)

// ReviewLabel names the review file.
const ReviewLabel = "Review"

// Options configures the sinks of one run.
type Options struct {
	Mode      filing.Mode
	OutputDir string    // Flat layout files
	ReviewDir string    // Review file
	Timestamp time.Time // Stamped into file names
	Pool      Beginner  // Required in database mode
}

// Registry owns every sink of a run: one per layout plus review. It is the
// engine's Dispatcher and must be closed on every exit path.
type Registry struct {
	mode   filing.Mode
	sinks  map[schema.Kind]Sink
	review *FlatFile
	scoped []FileScoped
	closed bool

	counts     map[schema.Kind]int
	fileCounts map[schema.Kind]int
	diverted   int
}

// Open creates the sinks for a run. On failure every sink already opened is
// closed again.
func Open(opts Options) (*Registry, error) {
	if opts.Timestamp.IsZero() {
		opts.Timestamp = time.Now()
	}

	r := &Registry{
		mode:       opts.Mode,
		sinks:      make(map[schema.Kind]Sink),
		counts:     make(map[schema.Kind]int),
		fileCounts: make(map[schema.Kind]int),
	}

	review, err := CreateFlatFile(opts.ReviewDir, ReviewLabel, nil, opts.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("open review sink: %w", err)
	}
	r.review = review
	r.scoped = append(r.scoped, review)

	switch opts.Mode {
	case filing.ModeDatabase:
		if opts.Pool == nil {
			r.Close()
			return nil, errors.New("open database sink: no connection pool")
		}
		pg := NewPostgres(opts.Pool)
		for _, def := range schema.All() {
			r.sinks[def.Kind] = pg
		}
		r.scoped = append(r.scoped, pg)

	default:
		for _, def := range schema.All() {
			f, err := CreateFlatFile(opts.OutputDir, def.FileLabel, def.Columns, opts.Timestamp)
			if err != nil {
				r.Close()
				return nil, fmt.Errorf("open %s sink: %w", def.Kind, err)
			}
			r.sinks[def.Kind] = f
			r.scoped = append(r.scoped, f)
		}
	}

	return r, nil
}

// Header writes a header row.
func (r *Registry) Header(ctx context.Context, row filing.Row) error {
	s, ok := r.sinks[row.Kind]
	if !ok {
		return fmt.Errorf("no sink for %q", row.Kind)
	}
	if err := s.Write(ctx, row); err != nil {
		return err
	}
	r.fileCounts[row.Kind]++
	return nil
}

// Record writes a data row. Rows whose values do not fit their columns are
// diverted to review.
func (r *Registry) Record(ctx context.Context, row filing.Row) error {
	s, ok := r.sinks[row.Kind]
	if !ok {
		return fmt.Errorf("no sink for %q", row.Kind)
	}
	err := s.Write(ctx, row)
	if errors.Is(err, ErrInvalidValue) {
		slog.Debug("record diverted to review", "kind", row.Kind, "error", err)
		r.diverted++
		row.Kind = schema.KindReview
		return r.Review(ctx, row)
	}
	if err != nil {
		return err
	}
	r.fileCounts[row.Kind]++
	return nil
}

// Review writes a row to the review file.
func (r *Registry) Review(ctx context.Context, row filing.Row) error {
	if err := r.review.Write(ctx, row); err != nil {
		return err
	}
	r.fileCounts[schema.KindReview]++
	return nil
}

// BeginFile starts a filing on every file-scoped sink.
func (r *Registry) BeginFile(ctx context.Context, imageID string) error {
	clear(r.fileCounts)
	for _, s := range r.scoped {
		if err := s.BeginFile(ctx, imageID); err != nil {
			r.AbortFile(ctx)
			return err
		}
	}
	return nil
}

// CommitFile finishes the current filing and adds its rows to the run counts.
func (r *Registry) CommitFile(ctx context.Context) error {
	for _, s := range r.scoped {
		if err := s.CommitFile(ctx); err != nil {
			r.AbortFile(ctx)
			return err
		}
	}
	r.merge()
	return nil
}

// AbortFile abandons the current filing. In flat mode rows already written
// stay in the output files and are still counted.
func (r *Registry) AbortFile(ctx context.Context) error {
	var errs []error
	for _, s := range r.scoped {
		if err := s.AbortFile(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if r.mode == filing.ModeDatabase {
		// Review rows are written to a file even in database mode.
		n := r.fileCounts[schema.KindReview]
		clear(r.fileCounts)
		r.fileCounts[schema.KindReview] = n
	}
	r.merge()
	return errors.Join(errs...)
}

// FileCounts returns the rows written for the current filing.
func (r *Registry) FileCounts() map[schema.Kind]int {
	return copyCounts(r.fileCounts)
}

func (r *Registry) merge() {
	for k, n := range r.fileCounts {
		r.counts[k] += n
	}
	clear(r.fileCounts)
}

// Counts returns the rows committed per kind, review included.
func (r *Registry) Counts() map[schema.Kind]int {
	return copyCounts(r.counts)
}

// Diverted returns the number of records moved to review because a value
// did not fit its column.
func (r *Registry) Diverted() int {
	return r.diverted
}

// ReviewPath returns the path of the review file.
func (r *Registry) ReviewPath() string {
	return r.review.Path()
}

// Paths returns the flat files written by the run, sorted.
func (r *Registry) Paths() []string {
	seen := map[string]bool{r.review.Path(): true}
	for _, s := range r.sinks {
		if f, ok := s.(*FlatFile); ok {
			seen[f.Path()] = true
		}
	}
	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Close closes every sink once. Errors from all sinks are joined.
func (r *Registry) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error
	closed := make(map[Sink]bool)
	for _, s := range r.sinks {
		if closed[s] {
			continue
		}
		closed[s] = true
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.review != nil {
		if err := r.review.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func copyCounts(m map[schema.Kind]int) map[schema.Kind]int {
	out := make(map[schema.Kind]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
