//go:build unit

package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"countdown-timer/internal/domain/timer"
	"countdown-timer/internal/infra"
	"countdown-timer/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "shop", "name", "type", "start_at", "end_at", "duration_minutes", "product_id", "impressions", "created_at"}

func newRepo(t *testing.T) (*TimerRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewTimerRepository(mock, slog.New(slog.NewTextHandler(io.Discard, nil))), mock
}

func addRow(rows *pgxmock.Rows, tm *timer.Timer) *pgxmock.Rows {
	s := tm.Snapshot()
	startAt, endAt := pgtype.Timestamptz{}, pgtype.Timestamptz{}
	if s.StartAt != nil {
		startAt = pgtype.Timestamptz{Time: *s.StartAt, Valid: true}
		endAt = pgtype.Timestamptz{Time: *s.EndAt, Valid: true}
	}
	duration := pgtype.Int4{}
	if s.DurationMinutes != nil {
		duration = pgtype.Int4{Int32: int32(*s.DurationMinutes), Valid: true}
	}
	return rows.AddRow(s.ID, s.Shop, s.Name, string(s.Type), startAt, endAt, duration, s.ProductID, s.Impressions, s.CreatedAt)
}

// =============================================================================
// Create Tests
// =============================================================================

func TestTimerRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		timer      *timer.Timer
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:  "success: fixed timer",
			timer: builder.NewTimerBuilder().MustBuild(),
		},
		{
			name:  "success: evergreen timer",
			timer: builder.NewTimerBuilder().AsEvergreen(20).MustBuild(),
		},
		{
			name:       "error: database failure",
			timer:      builder.NewTimerBuilder().MustBuild(),
			execErr:    errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: duplicate id",
			timer:      builder.NewTimerBuilder().MustBuild(),
			execErr:    &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			defer mock.Close()

			s := tc.timer.Snapshot()
			exp := mock.ExpectExec(regexp.QuoteMeta(insertTimerSQL)).
				WithArgs(s.ID, s.Shop, s.Name, string(s.Type), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), s.ProductID, int64(0), s.CreatedAt)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			created, err := repo.Create(ctx, tc.timer)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.timer.ID(), created.ID())
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestTimerRepository_List(t *testing.T) {
	ctx := context.Background()
	repo, mock := newRepo(t)
	defer mock.Close()

	fixed := builder.NewTimerBuilder().MustBuild()
	evergreen := builder.NewTimerBuilder().AsEvergreen(30).MustBuild()

	rows := pgxmock.NewRows(columns)
	addRow(rows, fixed)
	addRow(rows, evergreen)
	mock.ExpectQuery(regexp.QuoteMeta(listTimersSQL)).WillReturnRows(rows)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, fixed.Snapshot(), got[0].Snapshot())
	assert.Equal(t, evergreen.Snapshot(), got[1].Snapshot())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimerRepository_ListByProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows in storage order", func(t *testing.T) {
		repo, mock := newRepo(t)
		defer mock.Close()

		first := builder.NewTimerBuilder().WithProductID("p-1").MustBuild()
		second := builder.NewTimerBuilder().WithProductID("p-1").AsEvergreen(5).MustBuild()
		rows := pgxmock.NewRows(columns)
		addRow(rows, first)
		addRow(rows, second)
		mock.ExpectQuery(regexp.QuoteMeta(listTimersByProductSQL)).WithArgs("p-1").WillReturnRows(rows)

		got, err := repo.ListByProduct(ctx, "p-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID(), got[0].ID())
		assert.Equal(t, second.ID(), got[1].ID())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: query failure", func(t *testing.T) {
		repo, mock := newRepo(t)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(listTimersByProductSQL)).WithArgs("p-1").WillReturnError(errors.New("boom"))

		got, err := repo.ListByProduct(ctx, "p-1")
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestTimerRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mock := newRepo(t)
		defer mock.Close()

		tm := builder.NewTimerBuilder().WithCreatedAt(time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)).MustBuild()
		rows := pgxmock.NewRows(columns)
		addRow(rows, tm)
		mock.ExpectQuery(regexp.QuoteMeta(findTimerSQL)).WithArgs(tm.ID()).WillReturnRows(rows)

		got, err := repo.FindByID(ctx, tm.ID())
		require.NoError(t, err)
		assert.Equal(t, tm.Snapshot(), got.Snapshot())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepo(t)
		defer mock.Close()

		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(findTimerSQL)).WithArgs(id).WillReturnError(pgx.ErrNoRows)

		got, err := repo.FindByID(ctx, id)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// IncrementImpression Tests
// =============================================================================

func TestTimerRepository_IncrementImpression(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setup      func(pgxmock.PgxPoolIface, uuid.UUID)
		want       int64
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: returns new count",
			setup: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta(incrementImpressionSQL)).WithArgs(id).
					WillReturnRows(pgxmock.NewRows([]string{"impressions"}).AddRow(int64(7)))
			},
			want: 7,
		},
		{
			name: "error: unknown id",
			setup: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta(incrementImpressionSQL)).WithArgs(id).WillReturnError(pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setup: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta(incrementImpressionSQL)).WithArgs(id).WillReturnError(errors.New("timeout"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			defer mock.Close()

			id := uuid.New()
			tc.setup(mock, id)

			got, err := repo.IncrementImpression(ctx, id)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Equal(t, int64(0), got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
