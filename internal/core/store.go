package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	db "github.com/JonMunkholm/fecparse/internal/database"
	"github.com/JonMunkholm/fecparse/internal/logging"
)

// Run history is persisted best-effort in database mode: a failed write is
// logged and never fails the run.

func (s *Service) recordRunStart(ctx context.Context, res *RunResult) {
	if s.pool == nil {
		return
	}
	err := db.New(s.pool).CreateRun(ctx, db.CreateRunParams{
		ID:        toPgUUID(res.RunID),
		Mode:      res.Mode,
		StartedAt: toPgTimestamptz(res.StartedAt),
	})
	if err != nil {
		s.logStoreError(ctx, "create run", err)
	}
}

func (s *Service) recordFile(ctx context.Context, runID string, fr FileResult) {
	if s.pool == nil {
		return
	}
	err := db.New(s.pool).InsertImportFile(ctx, db.ImportFile{
		RunID:      toPgUUID(runID),
		FileName:   fr.FileName,
		ImageID:    fr.ImageID,
		FormType:   toPgText(fr.FormType),
		Version:    toPgText(fr.Version),
		Status:     fr.Status,
		Reason:     toPgText(string(fr.Reason)),
		Detail:     toPgText(fr.Detail),
		Records:    int64(fr.RecordCount()),
		Review:     int64(fr.Review),
		MovedTo:    fr.MovedTo,
		FinishedAt: toPgTimestamptz(s.now()),
	})
	if err != nil {
		s.logStoreError(ctx, "record file", err)
	}
}

func (s *Service) recordRunFinish(ctx context.Context, res *RunResult) {
	if s.pool == nil || res.FinishedAt == nil {
		return
	}
	err := db.New(s.pool).FinishRun(ctx, db.FinishRunParams{
		ID:         toPgUUID(res.RunID),
		FinishedAt: toPgTimestamptz(*res.FinishedAt),
		Accepted:   int32(res.Accepted),
		Rejected:   int32(res.Rejected),
		Records:    int64(res.Records()),
		Review:     int64(res.Review()),
	})
	if err != nil {
		s.logStoreError(ctx, "finish run", err)
	}
}

// StoredRuns returns the most recent runs recorded in the database.
// Returns nil in flat mode.
func (s *Service) StoredRuns(ctx context.Context, limit int32) ([]db.ImportRun, error) {
	if s.pool == nil {
		return nil, nil
	}
	return db.New(s.pool).ListRuns(ctx, limit)
}

func (s *Service) logStoreError(ctx context.Context, op string, err error) {
	msg := MapError(err)
	logging.FromContext(ctx).Warn("run history not persisted", "op", op, "code", msg.Code, "error", err)
}

func toPgUUID(id string) pgtype.UUID {
	u, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: u, Valid: true}
}

func toPgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func toPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}
