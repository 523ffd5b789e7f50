//go:build unit

package widget_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"countdown-timer/internal/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timerID = "0b7c6f0e-6a43-4b8e-9c39-0f3c7c1d2e11"

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type failingStore struct {
	getErr, setErr, deleteErr error
	panicOnGet                bool
	sets                      int
}

func (s *failingStore) Get(string) (string, bool, error) {
	if s.panicOnGet {
		panic("storage disabled")
	}
	return "", false, s.getErr
}

func (s *failingStore) Set(string, string) error {
	s.sets++
	return s.setErr
}

func (s *failingStore) Delete(string) error {
	return s.deleteErr
}

func TestExpiryManager_ResolveExpiry(t *testing.T) {
	t.Run("first visit persists now plus duration", func(t *testing.T) {
		store := widget.NewMemoryStore()
		m := widget.NewExpiryManager(store, nil)

		expiry := m.ResolveExpiry(timerID, 30, t0)
		assert.Equal(t, t0.Add(30*time.Minute), expiry)

		raw, ok, err := store.Get(widget.ExpiryKey(timerID))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, strconv.FormatInt(t0.Add(30*time.Minute).UnixMilli(), 10), raw)
	})

	t.Run("stored future expiry is reused", func(t *testing.T) {
		store := widget.NewMemoryStore()
		m := widget.NewExpiryManager(store, nil)

		first := m.ResolveExpiry(timerID, 30, t0)
		again := m.ResolveExpiry(timerID, 30, t0.Add(10*time.Minute))
		assert.Equal(t, first, again)
	})

	t.Run("elapsed expiry starts a fresh window", func(t *testing.T) {
		store := widget.NewMemoryStore()
		m := widget.NewExpiryManager(store, nil)

		m.ResolveExpiry(timerID, 30, t0)
		later := t0.Add(31 * time.Minute)
		fresh := m.ResolveExpiry(timerID, 30, later)
		assert.Equal(t, later.Add(30*time.Minute), fresh)

		raw, _, _ := store.Get(widget.ExpiryKey(timerID))
		assert.Equal(t, strconv.FormatInt(fresh.UnixMilli(), 10), raw)
	})

	t.Run("expiry equal to now is not reused", func(t *testing.T) {
		store := widget.NewMemoryStore()
		require.NoError(t, store.Set(widget.ExpiryKey(timerID), strconv.FormatInt(t0.UnixMilli(), 10)))

		m := widget.NewExpiryManager(store, nil)
		assert.Equal(t, t0.Add(5*time.Minute), m.ResolveExpiry(timerID, 5, t0))
	})

	t.Run("unparsable value is replaced", func(t *testing.T) {
		store := widget.NewMemoryStore()
		require.NoError(t, store.Set(widget.ExpiryKey(timerID), "not-a-number"))

		m := widget.NewExpiryManager(store, nil)
		expiry := m.ResolveExpiry(timerID, 30, t0)
		assert.Equal(t, t0.Add(30*time.Minute), expiry)

		raw, _, _ := store.Get(widget.ExpiryKey(timerID))
		assert.Equal(t, strconv.FormatInt(expiry.UnixMilli(), 10), raw)
	})

	t.Run("failing store still yields a fresh expiry", func(t *testing.T) {
		store := &failingStore{getErr: errors.New("quota"), setErr: errors.New("quota")}
		m := widget.NewExpiryManager(store, nil)

		assert.Equal(t, t0.Add(30*time.Minute), m.ResolveExpiry(timerID, 30, t0))
		assert.Equal(t, 1, store.sets)
	})

	t.Run("panicking store still yields a fresh expiry", func(t *testing.T) {
		m := widget.NewExpiryManager(&failingStore{panicOnGet: true}, nil)

		assert.NotPanics(t, func() {
			assert.Equal(t, t0.Add(30*time.Minute), m.ResolveExpiry(timerID, 30, t0))
		})
	})

	t.Run("nil store is never persisted", func(t *testing.T) {
		m := widget.NewExpiryManager(nil, nil)
		assert.Equal(t, t0.Add(time.Minute), m.ResolveExpiry(timerID, 1, t0))
		assert.NotPanics(t, func() { m.Clear(timerID) })
	})
}

func TestExpiryManager_Clear(t *testing.T) {
	store := widget.NewMemoryStore()
	m := widget.NewExpiryManager(store, nil)

	m.ResolveExpiry(timerID, 30, t0)
	m.Clear(timerID)

	_, ok, err := store.Get(widget.ExpiryKey(timerID))
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		widget.NewExpiryManager(&failingStore{deleteErr: errors.New("locked")}, nil).Clear(timerID)
	})
}

func TestExpiryKey(t *testing.T) {
	assert.Equal(t, "evergreen_timer_abc", widget.ExpiryKey("abc"))
}
