package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/schema"
)

func TestService_RunFlatMode(t *testing.T) {
	svc, dirs := newTestService(t, nil, nil)

	writeFile(t, dirs.Import, "100.fec", filingText("7.0", "F3XN",
		fields("SA11A", "C00123456", "IND", "SMITH"),
		fields("ZZ9", "x"),
		"",
	))
	writeFile(t, dirs.Import, "200.fec", filingText("6.5", "F3XN"))
	writeFile(t, dirs.Import, "300.fec", "garbage\n")
	writeFile(t, dirs.Import, "readme.txt", "not a filing")

	res, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, RunCompleted, res.Status)
	assert.Equal(t, "flat", res.Mode)
	assert.Equal(t, 1, res.Accepted)
	assert.Equal(t, 2, res.Rejected)
	require.Len(t, res.Files, 3)

	accepted := res.Files[0]
	assert.Equal(t, "100.fec", accepted.FileName)
	assert.Equal(t, "accepted", accepted.Status)
	assert.Equal(t, "F3XN", accepted.FormType)
	assert.Equal(t, "7.0", accepted.Version)
	assert.Equal(t, 1, accepted.Records[schema.KindScheduleA])
	assert.Equal(t, 1, accepted.Records[schema.KindF3XHeader])
	assert.Equal(t, 1, accepted.Review)
	assert.Equal(t, 1, accepted.Stats.Blank)
	assert.Equal(t, 2, accepted.Stats.EmbeddedHeaders)
	assert.Equal(t, filepath.Join(dirs.Processed, "100.fec"), accepted.MovedTo)

	assert.Equal(t, filing.ReasonUnsupportedVersion, res.Files[1].Reason)
	assert.Equal(t, "HDR002", res.Files[1].Code)
	assert.Equal(t, filepath.Join(dirs.Review, "200_HDR_6.5.fec"), res.Files[1].MovedTo)
	assert.Equal(t, filing.ReasonInvalidHeader, res.Files[2].Reason)
	assert.Equal(t, filepath.Join(dirs.Review, "300_INV_HDR.fec"), res.Files[2].MovedTo)

	for _, f := range res.Files {
		assert.FileExists(t, f.MovedTo)
		assert.NoFileExists(t, filepath.Join(dirs.Import, f.FileName))
	}
	assert.FileExists(t, filepath.Join(dirs.Import, "readme.txt"))

	sa := outputLines(t, dirs.Output, schema.KindScheduleA)
	require.Len(t, sa, 1)
	assert.True(t, strings.HasPrefix(sa[0], "F3XN\t100\tSA11A\tC00123456\tIND\tSMITH\t"), sa[0])
	assert.Len(t, strings.Split(sa[0], "\t"), 47)

	headers := outputLines(t, dirs.Output, schema.KindF3XHeader)
	require.Len(t, headers, 1)
	assert.True(t, strings.HasPrefix(headers[0], "100\tF3XN\tC00123456\tCOMMITTEE"), headers[0])

	assert.Equal(t, []string{"F3XN\t100\tZZ9\tx"}, reviewLines(t, dirs.Review))

	assert.Equal(t, 2, res.Records())
	assert.Equal(t, 1, res.Review())
	assert.Len(t, res.Outputs, schema.Count()+1)

	stored, err := svc.History().Get(res.RunID)
	require.NoError(t, err)
	assert.Equal(t, RunCompleted, stored.Status)
}

func TestService_RunEmptyImportDir(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	res, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunCompleted, res.Status)
	assert.Empty(t, res.Files)
}

func TestService_RunMissingImportDir(t *testing.T) {
	svc, dirs := newTestService(t, nil, nil)
	require.NoError(t, os.RemoveAll(dirs.Import))

	res, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, RunFailed, res.Status)
	assert.Equal(t, "FILE003", res.Code)
}

func TestService_FileTooLarge(t *testing.T) {
	svc, dirs := newTestService(t, func(o *Options) { o.MaxFileSize = 10 }, nil)
	writeFile(t, dirs.Import, "100.fec", filingText("8.0", "F3XN"))

	res, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	fr := res.Files[0]
	assert.Equal(t, filing.ReasonUnexpected, fr.Reason)
	assert.Equal(t, "FILE001", fr.Code)
	assert.Equal(t, filepath.Join(dirs.Review, "100.fec"), fr.MovedTo)
}

func TestService_RunCancelled(t *testing.T) {
	svc, dirs := newTestService(t, nil, nil)
	writeFile(t, dirs.Import, "100.fec", filingText("8.0", "F3XN"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.run(ctx, "run-1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, RunCancelled, res.Status)
	assert.Equal(t, "RUN002", res.Code)
	assert.Empty(t, res.Files)
	assert.FileExists(t, filepath.Join(dirs.Import, "100.fec"))
}

func TestService_DecodesWindows1252(t *testing.T) {
	svc, dirs := newTestService(t, nil, nil)
	writeFile(t, dirs.Import, "100.fec", filingText("8.0", "F3XN", fields("TEXT", "C00123456", "CAF\xc9")))

	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	text := outputLines(t, dirs.Output, schema.KindText)
	require.Len(t, text, 1)
	assert.Contains(t, text[0], "CAFÉ")
}

func TestService_StartRun(t *testing.T) {
	svc, dirs := newTestService(t, nil, nil)
	writeFile(t, dirs.Import, "100.fec", filingText("8.0", "F3XN"))

	require.NoError(t, svc.Limiter().TryAcquire())
	_, err := svc.StartRun()
	assert.ErrorIs(t, err, ErrRunInProgress)
	svc.Limiter().Release()

	runID, err := svc.StartRun()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Limiter().WaitForDrain(ctx))
	require.NoError(t, svc.Shutdown(ctx))

	res, err := svc.History().Get(runID)
	require.NoError(t, err)
	assert.Equal(t, RunCompleted, res.Status)
	assert.Equal(t, 1, res.Accepted)
}

func TestService_ScanScheduler(t *testing.T) {
	svc, dirs := newTestService(t, nil, nil)
	writeFile(t, dirs.Import, "100.fec", filingText("8.0", "F3XN"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.StartScanScheduler(ctx, time.Hour)
		close(done)
	}()

	require.Eventually(t, func() bool {
		runs := svc.History().List()
		return len(runs) == 1 && runs[0].Status == RunCompleted
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	<-done
	require.NoError(t, svc.Shutdown(context.Background()))
	assert.FileExists(t, filepath.Join(dirs.Processed, "100.fec"))
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(Options{Mode: filing.ModeDatabase}, nil)
	assert.ErrorContains(t, err, "requires a connection pool")

	_, err = NewService(Options{Encoding: "ebcdic"}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

// fakeTx implements the parts of pgx.Tx the database sink uses.
type fakeTx struct {
	pgx.Tx

	headerID   int64
	copied     map[string]int
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row {
	return idRow{id: tx.headerID}
}

func (tx *fakeTx) CopyFrom(_ context.Context, table pgx.Identifier, _ []string, src pgx.CopyFromSource) (int64, error) {
	if tx.copied == nil {
		tx.copied = make(map[string]int)
	}
	var n int64
	for src.Next() {
		if _, err := src.Values(); err != nil {
			return n, err
		}
		n++
	}
	tx.copied[strings.Join(table, ".")] += int(n)
	return n, src.Err()
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

type idRow struct {
	id  int64
	err error
}

func (r idRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

// fakePool hands out fakeTx values and records run history statements.
type fakePool struct {
	headerID int64
	txs      []*fakeTx
	execs    []string
}

func (p *fakePool) Begin(context.Context) (pgx.Tx, error) {
	tx := &fakeTx{headerID: p.headerID}
	p.txs = append(p.txs, tx)
	return tx, nil
}

func (p *fakePool) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	p.execs = append(p.execs, strings.SplitN(sql, "\n", 2)[0])
	return pgconn.CommandTag{}, nil
}

func (p *fakePool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (p *fakePool) QueryRow(context.Context, string, ...any) pgx.Row {
	return idRow{err: errors.New("not implemented")}
}

func TestService_RunDatabaseMode(t *testing.T) {
	pool := &fakePool{headerID: 42}
	svc, dirs := newTestService(t, func(o *Options) { o.Mode = filing.ModeDatabase }, pool)
	writeFile(t, dirs.Import, "100.fec", filingText("8.0", "F3XN",
		fields("SA11A", "C00123456", "IND"),
		fields("ZZ9"),
	))

	res, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	fr := res.Files[0]
	assert.Equal(t, "accepted", fr.Status, fr.Error)
	assert.Equal(t, 1, fr.Records[schema.KindScheduleA])
	assert.Equal(t, 1, fr.Review)

	require.Len(t, pool.txs, 1)
	assert.True(t, pool.txs[0].committed)
	assert.Equal(t, 1, pool.txs[0].copied["fec_schedule_a"])

	assert.Equal(t, []string{
		"-- name: CreateRun :exec",
		"-- name: InsertImportFile :exec",
		"-- name: FinishRun :exec",
	}, pool.execs)
	assert.Equal(t, []string{filepath.Join(dirs.Review, "Review_20240315_093000.txt")}, res.Outputs)
}

func TestService_RunDatabaseAlreadyImported(t *testing.T) {
	pool := &fakePool{headerID: -1}
	svc, dirs := newTestService(t, func(o *Options) { o.Mode = filing.ModeDatabase }, pool)
	writeFile(t, dirs.Import, "100.fec", filingText("8.0", "F3XN", fields("SA11A", "C00123456")))

	res, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	fr := res.Files[0]
	assert.Equal(t, filing.ReasonAlreadyImported, fr.Reason)
	assert.Equal(t, "DB001", fr.Code)
	assert.Empty(t, fr.Records)
	assert.Equal(t, filepath.Join(dirs.Review, "100.fec"), fr.MovedTo)

	require.Len(t, pool.txs, 1)
	assert.True(t, pool.txs[0].rolledBack)
	assert.Empty(t, pool.txs[0].copied)
	assert.Equal(t, 0, res.Records())
}
