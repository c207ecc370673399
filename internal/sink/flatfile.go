package sink

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JonMunkholm/fecparse/internal/filing"
)

// TimestampLayout formats the run timestamp in output file names.
const TimestampLayout = "20060102_150405"

// FlatFile writes rows as newline-terminated lines to one file.
type FlatFile struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

// FlatFileName returns <label>_<timestamp>.txt.
func FlatFileName(label string, ts time.Time) string {
	return fmt.Sprintf("%s_%s.txt", label, ts.Format(TimestampLayout))
}

// CreateFlatFile creates dir/<label>_<timestamp>.txt and writes the column
// header row. An empty column list writes no header row.
func CreateFlatFile(dir, label string, columns []string, ts time.Time) (*FlatFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, FlatFileName(label, ts))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}

	s := &FlatFile{path: path, f: f, w: bufio.NewWriter(f)}
	if len(columns) > 0 {
		if err := s.writeLine(strings.Join(columns, "\t")); err != nil {
			f.Close()
			return nil, err
		}
	}
	return s, nil
}

// Path returns the file path.
func (s *FlatFile) Path() string {
	return s.path
}

// Write appends the row's rendered line.
func (s *FlatFile) Write(_ context.Context, row filing.Row) error {
	return s.writeLine(row.Line)
}

func (s *FlatFile) writeLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(s.path), err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(s.path), err)
	}
	return nil
}

// BeginFile is a no-op; flat files are not transactional.
func (s *FlatFile) BeginFile(context.Context, string) error {
	return nil
}

// CommitFile flushes buffered rows to disk.
func (s *FlatFile) CommitFile(context.Context) error {
	return s.flush()
}

// AbortFile flushes rows already written; they are not rolled back.
func (s *FlatFile) AbortFile(context.Context) error {
	return s.flush()
}

func (s *FlatFile) flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", filepath.Base(s.path), err)
	}
	return nil
}

// Close flushes and closes the file.
func (s *FlatFile) Close() error {
	flushErr := s.flush()
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(s.path), err)
	}
	return flushErr
}
