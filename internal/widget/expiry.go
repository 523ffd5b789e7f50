package widget

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// ExpiryManager gives each visitor an independent window for an evergreen timer, anchored at
// the first time the timer was seen. It never fails: storage problems only cost persistence.
type ExpiryManager struct {
	store  ExpiryStore
	logger *slog.Logger
}

func NewExpiryManager(store ExpiryStore, logger *slog.Logger) *ExpiryManager {
	if logger == nil {
		logger = discardLogger()
	}
	return &ExpiryManager{store: store, logger: logger}
}

// ResolveExpiry returns the stored expiry for timerID while it is still in the future,
// otherwise now plus durationMinutes, persisted for the next visit.
func (m *ExpiryManager) ResolveExpiry(timerID string, durationMinutes int, now time.Time) time.Time {
	key := ExpiryKey(timerID)
	if stored := m.load(key); stored.OK() && stored.Value.After(now) {
		return stored.Value
	}

	expiry := now.Add(time.Duration(durationMinutes) * time.Minute)
	if m.store != nil {
		value := strconv.FormatInt(expiry.UnixMilli(), 10)
		if err := guard(func() error { return m.store.Set(key, value) }); err != nil {
			m.logger.Debug("evergreen expiry not persisted", "key", key, "error", err)
		}
	}
	return expiry
}

// Clear forgets the visitor's expiry so the next visit opens a fresh window.
func (m *ExpiryManager) Clear(timerID string) {
	if m.store == nil {
		return
	}
	key := ExpiryKey(timerID)
	if err := guard(func() error { return m.store.Delete(key) }); err != nil {
		m.logger.Debug("evergreen expiry not cleared", "key", key, "error", err)
	}
}

func (m *ExpiryManager) load(key string) Outcome[time.Time] {
	if m.store == nil {
		return Missing[time.Time]()
	}

	var (
		raw string
		ok  bool
	)
	err := guard(func() (err error) {
		raw, ok, err = m.store.Get(key)
		return err
	})
	if err != nil {
		m.logger.Debug("evergreen expiry not readable", "key", key, "error", err)
		return Failed[time.Time](err)
	}
	if !ok {
		return Missing[time.Time]()
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return Failed[time.Time](err)
	}
	return Found(time.UnixMilli(ms).UTC())
}

// guard turns a panicking store call into an error. Browser storage access can throw.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("expiry store panicked: %v", r)
		}
	}()
	return fn()
}
