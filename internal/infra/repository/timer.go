package repository

import (
	"context"
	"log/slog"

	"countdown-timer/internal/domain/timer"
	"countdown-timer/internal/infra"
	"countdown-timer/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the part of a pgx pool the repository needs; pgxmock satisfies it in tests.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const timerColumns = `id, shop, name, type, start_at, end_at, duration_minutes, product_id, impressions, created_at`

const (
	insertTimerSQL = `INSERT INTO timers (` + timerColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	listTimersSQL = `SELECT ` + timerColumns + ` FROM timers ORDER BY seq ASC`

	listTimersByProductSQL = `SELECT ` + timerColumns + ` FROM timers WHERE product_id = $1 ORDER BY seq ASC`

	findTimerSQL = `SELECT ` + timerColumns + ` FROM timers WHERE id = $1`

	incrementImpressionSQL = `UPDATE timers SET impressions = impressions + 1 WHERE id = $1 RETURNING impressions`
)

// TimerRepository stores timers in PostgreSQL. Insertion order is the seq column.
type TimerRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewTimerRepository(db DBTX, logger *slog.Logger) *TimerRepository {
	return &TimerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TimerRepository) Create(ctx context.Context, t *timer.Timer) (*timer.Timer, error) {
	s := t.Snapshot()
	_, err := r.db.Exec(ctx, insertTimerSQL,
		s.ID,
		s.Shop,
		s.Name,
		string(s.Type),
		pgconv.TimePtrToPgtype(s.StartAt),
		pgconv.TimePtrToPgtype(s.EndAt),
		pgconv.IntPtrToPgtype(s.DurationMinutes),
		s.ProductID,
		s.Impressions,
		s.CreatedAt,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "timer id already stored", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create timer", err)
	}
	return t.Clone(), nil
}

func (r *TimerRepository) List(ctx context.Context) ([]*timer.Timer, error) {
	rows, err := r.db.Query(ctx, listTimersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list timers", err)
	}
	return r.collect(rows, "failed to list timers")
}

func (r *TimerRepository) ListByProduct(ctx context.Context, productID string) ([]*timer.Timer, error) {
	rows, err := r.db.Query(ctx, listTimersByProductSQL, productID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list timers by product", err)
	}
	return r.collect(rows, "failed to list timers by product")
}

func (r *TimerRepository) FindByID(ctx context.Context, id uuid.UUID) (*timer.Timer, error) {
	t, err := scanTimer(r.db.QueryRow(ctx, findTimerSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "timer not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find timer by ID", err)
	}
	return t, nil
}

// IncrementImpression is a single atomic statement, so concurrent calls never lose updates.
func (r *TimerRepository) IncrementImpression(ctx context.Context, id uuid.UUID) (int64, error) {
	var impressions int64
	if err := r.db.QueryRow(ctx, incrementImpressionSQL, id).Scan(&impressions); err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr(r.logger, infra.KindNotFound, "timer not found", err)
		}
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to increment impressions", err)
	}
	return impressions, nil
}

func (r *TimerRepository) collect(rows pgx.Rows, msg string) ([]*timer.Timer, error) {
	defer rows.Close()

	var out []*timer.Timer
	for rows.Next() {
		t, err := scanTimer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
	return out, nil
}

func scanTimer(row pgx.Row) (*timer.Timer, error) {
	var (
		s        timer.Snapshot
		typ      string
		startAt  pgtype.Timestamptz
		endAt    pgtype.Timestamptz
		duration pgtype.Int4
	)
	if err := row.Scan(&s.ID, &s.Shop, &s.Name, &typ, &startAt, &endAt, &duration, &s.ProductID, &s.Impressions, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Type = timer.Type(typ)
	s.StartAt = pgconv.TimePtrFromPgtype(startAt)
	s.EndAt = pgconv.TimePtrFromPgtype(endAt)
	s.DurationMinutes = pgconv.IntPtrFromPgtype(duration)
	return timer.Reconstruct(s), nil
}
