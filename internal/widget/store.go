package widget

import "sync"

const expiryKeyPrefix = "evergreen_timer_"

// ExpiryKey is the storage key of a visitor's expiry for an evergreen timer. The value stored
// under it is the expiry as unix milliseconds in decimal.
func ExpiryKey(timerID string) string {
	return expiryKeyPrefix + timerID
}

// ExpiryStore is the visitor-local key/value storage behind evergreen expiries: localStorage in
// the browser, SQLite in the terminal client, a map in tests.
type ExpiryStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

type MemoryStore struct {
	mu    sync.Mutex
	items map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}
