//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"countdown-timer/internal/domain/timer"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertTimer writes tm straight to the timers table, bypassing the API.
func InsertTimer(t *testing.T, db DBLike, tm *timer.Timer) {
	t.Helper()

	s := tm.Snapshot()
	_, err := db.Exec(context.Background(), `
		INSERT INTO timers (id, shop, name, type, start_at, end_at, duration_minutes, product_id, impressions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.Shop, s.Name, string(s.Type), s.StartAt, s.EndAt, s.DurationMinutes, s.ProductID, s.Impressions, s.CreatedAt)
	require.NoError(t, err)
}

func TimerImpressions(t *testing.T, db DBLike, id uuid.UUID) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), "SELECT impressions FROM timers WHERE id = $1", id).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountTimers(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM timers").Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table, leaving the migration bookkeeping alone
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
