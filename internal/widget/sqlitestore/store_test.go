//go:build unit

package sqlitestore_test

import (
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"countdown-timer/internal/widget"
	"countdown-timer/internal/widget/sqlitestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store, err := sqlitestore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, ok, err := store.Get("evergreen_timer_a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("evergreen_timer_a", "1"))
	require.NoError(t, store.Set("evergreen_timer_a", "2"))

	v, ok, err := store.Get("evergreen_timer_a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	require.NoError(t, store.Delete("evergreen_timer_a"))
	require.NoError(t, store.Delete("evergreen_timer_a"))
	_, ok, err = store.Get("evergreen_timer_a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expiries.db")
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store, err := sqlitestore.Open(path)
	require.NoError(t, err)
	expiry := widget.NewExpiryManager(store, nil).ResolveExpiry("timer-1", 30, t0)
	require.NoError(t, store.Close())

	reopened, err := sqlitestore.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	raw, ok, err := reopened.Get(widget.ExpiryKey("timer-1"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, strconv.FormatInt(expiry.UnixMilli(), 10), raw)

	again := widget.NewExpiryManager(reopened, nil).ResolveExpiry("timer-1", 30, t0.Add(10*time.Minute))
	assert.Equal(t, expiry, again)
}
