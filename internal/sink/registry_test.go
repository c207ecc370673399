package sink

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/schema"
)

var runTime = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func openFlat(t *testing.T) (*Registry, string, string) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "Output")
	review := filepath.Join(t.TempDir(), "Review")
	r, err := Open(Options{Mode: filing.ModeFlat, OutputDir: out, ReviewDir: review, Timestamp: runTime})
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r, out, review
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestOpen_FlatCreatesEveryFile(t *testing.T) {
	r, out, review := openFlat(t)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, schema.Count())

	require.NoError(t, r.Close())
	for _, def := range schema.All() {
		lines := readLines(t, filepath.Join(out, def.FileLabel+"_20240315_093000.txt"))
		require.Len(t, lines, 1, def.Kind)
		assert.Equal(t, strings.Join(def.Columns, "\t"), lines[0])
	}

	data, err := os.ReadFile(filepath.Join(review, "Review_20240315_093000.txt"))
	require.NoError(t, err)
	assert.Empty(t, data, "review file has no header row")
	assert.Len(t, r.Paths(), schema.Count()+1)
}

func TestRegistry_WritesAndCounts(t *testing.T) {
	ctx := context.Background()
	r, out, review := openFlat(t)

	require.NoError(t, r.BeginFile(ctx, "1234567"))
	require.NoError(t, r.Header(ctx, headerRow(t)))
	require.NoError(t, r.Record(ctx, scheduleARow("20240315", "10")))
	require.NoError(t, r.Record(ctx, scheduleARow("20240316", "20")))
	require.NoError(t, r.Review(ctx, filing.Row{Kind: schema.KindReview, Line: "F3XN\t1234567\tH4"}))
	assert.Equal(t, 2, r.FileCounts()[schema.KindScheduleA])
	require.NoError(t, r.CommitFile(ctx))

	counts := r.Counts()
	assert.Equal(t, 1, counts[schema.KindF3XHeader])
	assert.Equal(t, 2, counts[schema.KindScheduleA])
	assert.Equal(t, 1, counts[schema.KindReview])
	assert.Empty(t, r.FileCounts())

	require.NoError(t, r.Close())
	lines := readLines(t, filepath.Join(out, "ScheduleAImport_20240315_093000.txt"))
	require.Len(t, lines, 3)
	assert.Equal(t, scheduleARow("20240315", "10").Line, lines[1])

	lines = readLines(t, filepath.Join(review, "Review_20240315_093000.txt"))
	assert.Equal(t, []string{"F3XN\t1234567\tH4"}, lines)
}

func TestRegistry_FlatModeKeepsInvalidValues(t *testing.T) {
	ctx := context.Background()
	r, _, _ := openFlat(t)

	require.NoError(t, r.BeginFile(ctx, "1"))
	require.NoError(t, r.Record(ctx, scheduleARow("someday", "lots")))
	require.NoError(t, r.CommitFile(ctx))
	assert.Equal(t, 1, r.Counts()[schema.KindScheduleA])
	assert.Zero(t, r.Diverted())
}

func TestRegistry_UnknownKind(t *testing.T) {
	r, _, _ := openFlat(t)
	err := r.Record(context.Background(), filing.Row{Kind: "schedule_z"})
	assert.ErrorContains(t, err, `no sink for "schedule_z"`)
}

func TestRegistry_CloseIsIdempotent(t *testing.T) {
	r, _, _ := openFlat(t)
	require.NoError(t, r.Close())
	assert.NoError(t, r.Close())
}

func TestOpen_DatabaseRequiresPool(t *testing.T) {
	_, err := Open(Options{Mode: filing.ModeDatabase, ReviewDir: t.TempDir(), Timestamp: runTime})
	assert.ErrorContains(t, err, "no connection pool")
}

func TestOpen_FailsOnUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := Open(Options{Mode: filing.ModeFlat, OutputDir: filepath.Join(blocker, "out"), ReviewDir: dir, Timestamp: runTime})
	assert.Error(t, err)
}

func TestRegistry_DatabaseMode(t *testing.T) {
	ctx := context.Background()
	pool := &fakePool{}
	reviewDir := t.TempDir()
	r, err := Open(Options{Mode: filing.ModeDatabase, ReviewDir: reviewDir, Timestamp: runTime, Pool: pool})
	require.NoError(t, err)
	defer r.Close()

	// Committed filing.
	require.NoError(t, r.BeginFile(ctx, "1234567"))
	require.NoError(t, r.Header(ctx, headerRow(t)))
	require.NoError(t, r.Record(ctx, scheduleARow("20240315", "10")))
	require.NoError(t, r.Record(ctx, scheduleARow("20240315", "ten")))
	require.NoError(t, r.CommitFile(ctx))

	require.Len(t, pool.txs, 1)
	assert.True(t, pool.txs[0].committed)
	assert.Len(t, pool.txs[0].copies["fec_schedule_a"], 1)
	assert.Equal(t, 1, r.Diverted())

	// Aborted filing: database rows are dropped, review rows stay counted.
	require.NoError(t, r.BeginFile(ctx, "7654321"))
	require.NoError(t, r.Record(ctx, scheduleARow("20240315", "10")))
	require.NoError(t, r.Review(ctx, filing.Row{Kind: schema.KindReview, Line: "x"}))
	require.NoError(t, r.AbortFile(ctx))
	assert.True(t, pool.txs[1].rolledBack)

	counts := r.Counts()
	assert.Equal(t, 1, counts[schema.KindF3XHeader])
	assert.Equal(t, 1, counts[schema.KindScheduleA])
	assert.Equal(t, 2, counts[schema.KindReview])

	require.NoError(t, r.Close())
	lines := readLines(t, filepath.Join(reviewDir, "Review_20240315_093000.txt"))
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ten")
}

func TestRegistry_ProcessFiling(t *testing.T) {
	ctx := context.Background()
	r, out, _ := openFlat(t)

	header := make([]string, 123)
	header[0] = "F3XN"
	header[1] = "C00123456"
	sa := make([]string, 45)
	sa[0] = "SA11AI"
	sa[1] = "C00123456"
	text := strings.Join([]string{"HDR", "FEC", "8.0"}, filing.Delimiter) + "\n" +
		strings.Join(header, filing.Delimiter) + "\n" +
		strings.Join(sa, filing.Delimiter) + "\n"

	require.NoError(t, r.BeginFile(ctx, "1234567"))
	res, err := filing.NewEngine(filing.ModeFlat).Process(ctx, "1234567", strings.NewReader(text), r)
	require.NoError(t, err)
	require.True(t, res.Outcome.Accepted())
	require.NoError(t, r.CommitFile(ctx))
	require.NoError(t, r.Close())

	lines := readLines(t, filepath.Join(out, "ScheduleAImport_20240315_093000.txt"))
	require.Len(t, lines, 2)
	assert.Equal(t, 47, strings.Count(lines[1], "\t")+1)
	assert.True(t, strings.HasPrefix(lines[1], "F3XN\t1234567\tSA11AI\tC00123456\t"))

	lines = readLines(t, filepath.Join(out, "FormF3XHeaders_20240315_093000.txt"))
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "1234567\tF3XN\tC00123456\tNULL\t"))
}
