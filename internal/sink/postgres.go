package sink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	db "github.com/JonMunkholm/fecparse/internal/database"
	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/schema"
)

// Beginner starts transactions. Satisfied by *pgxpool.Pool.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Postgres stores every layout in its table. Each filing runs in one
// transaction: the header goes through the header function as soon as it
// arrives, records are buffered and copied in at CommitFile.
type Postgres struct {
	pool    Beginner
	tx      pgx.Tx
	queries *db.Queries
	imageID string
	pending map[schema.Kind][][]any
	order   []schema.Kind
}

// NewPostgres creates a database sink.
func NewPostgres(pool Beginner) *Postgres {
	return &Postgres{pool: pool}
}

// BeginFile opens the filing's transaction.
func (p *Postgres) BeginFile(ctx context.Context, imageID string) error {
	if p.tx != nil {
		return fmt.Errorf("begin %s: filing %s still in progress", imageID, p.imageID)
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	p.tx = tx
	p.queries = db.New(tx)
	p.imageID = imageID
	p.pending = make(map[schema.Kind][][]any)
	p.order = p.order[:0]
	return nil
}

// Write stores a header row or buffers a record row. Header rows that are
// already stored return ErrAlreadyImported; values that do not fit their
// column return ErrInvalidValue and leave the transaction untouched.
func (p *Postgres) Write(ctx context.Context, row filing.Row) error {
	if p.tx == nil {
		return ErrNoFile
	}
	def, ok := schema.Get(row.Kind)
	if !ok {
		return fmt.Errorf("no layout for %q", row.Kind)
	}

	if def.Group == schema.GroupHeader {
		return p.writeHeader(ctx, def, row)
	}

	values, err := ConvertRow(def, row.Fields)
	if err != nil {
		return err
	}
	if _, seen := p.pending[def.Kind]; !seen {
		p.order = append(p.order, def.Kind)
	}
	p.pending[def.Kind] = append(p.pending[def.Kind], values)
	return nil
}

func (p *Postgres) writeHeader(ctx context.Context, def schema.Definition, row filing.Row) error {
	args, err := HeaderArgs(def, row.Fields)
	if err != nil {
		return err
	}
	id, err := p.queries.AddHeader(ctx, string(def.Kind), p.imageID, args)
	if err != nil {
		return fmt.Errorf("add %s header: %w", def.Kind, err)
	}
	if id == db.AlreadyImported {
		return fmt.Errorf("%w: %s", ErrAlreadyImported, p.imageID)
	}
	slog.Debug("header stored", "image_id", p.imageID, "kind", def.Kind, "id", id)
	return nil
}

// CommitFile copies the buffered records and commits the transaction.
func (p *Postgres) CommitFile(ctx context.Context) error {
	if p.tx == nil {
		return ErrNoFile
	}
	defer p.reset()

	for _, kind := range p.order {
		def, _ := schema.Get(kind)
		rows := p.pending[kind]
		n, err := p.tx.CopyFrom(ctx, pgx.Identifier{def.Table}, def.DBColumns(), pgx.CopyFromRows(rows))
		if err != nil {
			_ = p.tx.Rollback(ctx)
			return fmt.Errorf("copy %s: %w", def.Table, err)
		}
		if int(n) != len(rows) {
			_ = p.tx.Rollback(ctx)
			return fmt.Errorf("copy %s: wrote %d of %d rows", def.Table, n, len(rows))
		}
	}

	if err := p.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit %s: %w", p.imageID, err)
	}
	return nil
}

// AbortFile rolls back the filing's transaction.
func (p *Postgres) AbortFile(ctx context.Context) error {
	if p.tx == nil {
		return nil
	}
	defer p.reset()
	if err := p.tx.Rollback(ctx); err != nil {
		return fmt.Errorf("rollback %s: %w", p.imageID, err)
	}
	return nil
}

// Pending returns the number of buffered records of a kind.
func (p *Postgres) Pending(kind schema.Kind) int {
	return len(p.pending[kind])
}

func (p *Postgres) reset() {
	p.tx = nil
	p.queries = nil
	p.imageID = ""
	p.pending = nil
	p.order = p.order[:0]
}

// Close rolls back a filing left in progress.
func (p *Postgres) Close() error {
	if p.tx == nil {
		return nil
	}
	return p.AbortFile(context.Background())
}
