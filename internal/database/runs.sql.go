package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type ImportRun struct {
	ID         pgtype.UUID
	Mode       string
	StartedAt  pgtype.Timestamptz
	FinishedAt pgtype.Timestamptz
	Accepted   int32
	Rejected   int32
	Records    int64
	Review     int64
}

type ImportFile struct {
	RunID      pgtype.UUID
	FileName   string
	ImageID    string
	FormType   pgtype.Text
	Version    pgtype.Text
	Status     string
	Reason     pgtype.Text
	Detail     pgtype.Text
	Records    int64
	Review     int64
	MovedTo    string
	FinishedAt pgtype.Timestamptz
}

const createRun = `-- name: CreateRun :exec
INSERT INTO fec_import_runs (id, mode, started_at)
VALUES ($1, $2, $3)
`

type CreateRunParams struct {
	ID        pgtype.UUID
	Mode      string
	StartedAt pgtype.Timestamptz
}

func (q *Queries) CreateRun(ctx context.Context, arg CreateRunParams) error {
	_, err := q.db.Exec(ctx, createRun, arg.ID, arg.Mode, arg.StartedAt)
	return err
}

const finishRun = `-- name: FinishRun :exec
UPDATE fec_import_runs
SET finished_at = $2, accepted = $3, rejected = $4, records = $5, review = $6
WHERE id = $1
`

type FinishRunParams struct {
	ID         pgtype.UUID
	FinishedAt pgtype.Timestamptz
	Accepted   int32
	Rejected   int32
	Records    int64
	Review     int64
}

func (q *Queries) FinishRun(ctx context.Context, arg FinishRunParams) error {
	_, err := q.db.Exec(ctx, finishRun,
		arg.ID,
		arg.FinishedAt,
		arg.Accepted,
		arg.Rejected,
		arg.Records,
		arg.Review,
	)
	return err
}

const insertImportFile = `-- name: InsertImportFile :exec
INSERT INTO fec_import_files (
    run_id, file_name, image_id, form_type, version, status, reason, detail,
    records, review, moved_to, finished_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
)
`

func (q *Queries) InsertImportFile(ctx context.Context, arg ImportFile) error {
	_, err := q.db.Exec(ctx, insertImportFile,
		arg.RunID,
		arg.FileName,
		arg.ImageID,
		arg.FormType,
		arg.Version,
		arg.Status,
		arg.Reason,
		arg.Detail,
		arg.Records,
		arg.Review,
		arg.MovedTo,
		arg.FinishedAt,
	)
	return err
}

const listRuns = `-- name: ListRuns :many
SELECT id, mode, started_at, finished_at, accepted, rejected, records, review
FROM fec_import_runs
ORDER BY started_at DESC
LIMIT $1
`

func (q *Queries) ListRuns(ctx context.Context, limit int32) ([]ImportRun, error) {
	rows, err := q.db.Query(ctx, listRuns, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ImportRun
	for rows.Next() {
		var i ImportRun
		if err := rows.Scan(
			&i.ID,
			&i.Mode,
			&i.StartedAt,
			&i.FinishedAt,
			&i.Accepted,
			&i.Rejected,
			&i.Records,
			&i.Review,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
