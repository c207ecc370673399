package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/fecparse/internal/schema"
)

func TestTableDDL_Header(t *testing.T) {
	def, ok := schema.Get(schema.KindF3XHeader)
	require.True(t, ok)

	ddl := TableDDL(def)
	assert.True(t, strings.HasPrefix(ddl, `CREATE TABLE IF NOT EXISTS "fec_f3x_headers" (`))
	assert.Contains(t, ddl, `"imageid" TEXT NOT NULL UNIQUE,`)
	assert.Equal(t, 1, strings.Count(ddl, "UNIQUE"))
	assert.NotContains(t, ddl, "CREATE INDEX")
	// id + layout columns + imported_at
	assert.Equal(t, def.Width()+2, strings.Count(ddl, ",\n")+1)
}

func TestTableDDL_Schedule(t *testing.T) {
	def, ok := schema.Get(schema.KindScheduleA)
	require.True(t, ok)

	ddl := TableDDL(def)
	assert.Contains(t, ddl, `"contamount" NUMERIC,`)
	assert.Contains(t, ddl, `"strcontdate" DATE,`)
	assert.NotContains(t, ddl, "UNIQUE")
	assert.Contains(t, ddl, `CREATE INDEX IF NOT EXISTS "idx_fec_schedule_a_image" ON "fec_schedule_a" ("imageid");`)
}

func TestHeaderFunctionDDL(t *testing.T) {
	ddl := HeaderFunctionDDL(schema.ByGroup(schema.GroupHeader))

	assert.Contains(t, ddl, "CREATE OR REPLACE FUNCTION fec_add_header(p_class TEXT, p_image_id TEXT, p_fields TEXT[])")
	for _, kind := range []schema.Kind{schema.KindF3Header, schema.KindF3PHeader, schema.KindF3XHeader} {
		assert.Contains(t, ddl, "WHEN '"+string(kind)+"' THEN")
	}
	assert.Equal(t, 3, strings.Count(ddl, "RETURN -1;"))

	f3p, _ := schema.Get(schema.KindF3PHeader)
	assert.Contains(t, ddl, "p_fields[207]")
	assert.NotContains(t, ddl, "p_fields[208]")
	assert.Contains(t, ddl, `"`+f3p.DBColumns()[206]+`"`)
}

func TestDDL_IncludesEverything(t *testing.T) {
	ddl := DDL()
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS fec_import_runs")
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS fec_import_files")
	for _, def := range schema.All() {
		assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS "`+def.Table+`"`)
	}
	assert.Contains(t, ddl, "fec_add_header")
}

// fakeDB records statements and returns canned results.
type fakeDB struct {
	sql  []string
	args [][]any
	scan int64
	err  error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return fakeRow{value: f.scan, err: f.err}
}

type fakeRow struct {
	value int64
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.value
	return nil
}

func TestApply(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, Apply(context.Background(), db))
	require.Len(t, db.sql, 1)
	assert.Equal(t, DDL(), db.sql[0])

	db = &fakeDB{err: errors.New("permission denied")}
	err := Apply(context.Background(), db)
	assert.ErrorContains(t, err, "apply schema: permission denied")
}

func TestAddHeader(t *testing.T) {
	db := &fakeDB{scan: AlreadyImported}
	fields := []pgtype.Text{{String: "123", Valid: true}, {}}

	id, err := New(db).AddHeader(context.Background(), "f3x_headers", "123", fields)
	require.NoError(t, err)
	assert.Equal(t, AlreadyImported, id)
	assert.Contains(t, db.sql[0], "SELECT fec_add_header($1, $2, $3)")
	assert.Equal(t, []any{"f3x_headers", "123", fields}, db.args[0])
}
