//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"countdown-timer/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.IntPtrFromPgtype(pgtype.Int4{}))
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	assert.False(t, pgconv.IntPtrToPgtype(nil).Valid)
	assert.False(t, pgconv.TimePtrToPgtype(nil).Valid)

	minutes := 30
	got := pgconv.IntPtrFromPgtype(pgconv.IntPtrToPgtype(&minutes))
	require.NotNil(t, got)
	assert.Equal(t, 30, *got)

	tokyo := time.FixedZone("JST", 9*3600)
	at := time.Date(2025, 6, 1, 21, 0, 0, 0, tokyo)
	ts := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&at))
	require.NotNil(t, ts)
	assert.True(t, ts.Equal(at))
	assert.Equal(t, time.UTC, ts.Location())
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("boom")))

	assert.True(t, pgconv.IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, pgconv.IsUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, pgconv.IsUniqueViolation(pgx.ErrNoRows))
}
