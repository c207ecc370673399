package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/schema"
	"github.com/JonMunkholm/fecparse/internal/sink"
)

var runTime = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func fields(values ...string) string {
	return strings.Join(values, filing.Delimiter)
}

// filingText builds a filing with the given version and form type followed
// by the given data lines.
func filingText(version, formType string, lines ...string) string {
	var b strings.Builder
	b.WriteString(fields("HDR", "FEC", version, "Vendor") + "\n")
	b.WriteString(fields(formType, "C00123456", "COMMITTEE") + "\n")
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
	return b.String()
}

// testDirs is the directory layout of one test run.
type testDirs struct {
	Import, Processed, Output, Review string
}

func newTestService(t *testing.T, mutate func(*Options), pool Pool) (*Service, testDirs) {
	t.Helper()
	root := t.TempDir()
	dirs := testDirs{
		Import:    filepath.Join(root, "Import"),
		Processed: filepath.Join(root, "Processed"),
		Output:    filepath.Join(root, "Output"),
		Review:    filepath.Join(root, "Review"),
	}
	require.NoError(t, os.MkdirAll(dirs.Import, 0o755))

	opts := Options{
		Mode:         filing.ModeFlat,
		ImportDir:    dirs.Import,
		ProcessedDir: dirs.Processed,
		OutputDir:    dirs.Output,
		ReviewDir:    dirs.Review,
		Encoding:     "windows-1252",
		Extension:    ".fec",
		MaxFileSize:  1 << 20,
	}
	if mutate != nil {
		mutate(&opts)
	}

	svc, err := NewService(opts, pool)
	require.NoError(t, err)
	svc.now = func() time.Time { return runTime }
	return svc, dirs
}

// outputLines returns the data lines of a layout's flat output file.
func outputLines(t *testing.T, dir string, kind schema.Kind) []string {
	t.Helper()
	def, ok := schema.Get(kind)
	require.True(t, ok)
	data, err := os.ReadFile(filepath.Join(dir, sink.FlatFileName(def.FileLabel, runTime)))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	return lines[1:]
}

func reviewLines(t *testing.T, dir string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, sink.FlatFileName(sink.ReviewLabel, runTime)))
	require.NoError(t, err)
	if len(data) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
