package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// AlreadyImported is returned by fec_add_header when the image ID is
// already stored for the header class.
const AlreadyImported int64 = -1

const addHeader = `-- name: AddHeader :one
SELECT fec_add_header($1, $2, $3)
`

// AddHeader stores one header row through the fec_add_header function and
// returns the new row ID, or AlreadyImported.
func (q *Queries) AddHeader(ctx context.Context, class string, imageID string, fields []pgtype.Text) (int64, error) {
	row := q.db.QueryRow(ctx, addHeader, class, imageID, fields)
	var id int64
	err := row.Scan(&id)
	return id, err
}
