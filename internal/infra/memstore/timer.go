// Package memstore keeps timers in process memory for the lifetime of the server.
package memstore

import (
	"context"
	"log/slog"
	"sync"

	"countdown-timer/internal/domain/timer"
	"countdown-timer/internal/infra"

	"github.com/google/uuid"
)

// TimerStore owns every stored timer. All access goes through its mutex, so impression
// increments never lose updates. Callers only ever receive clones.
type TimerStore struct {
	mu     sync.RWMutex
	timers []*timer.Timer
	byID   map[uuid.UUID]*timer.Timer
	logger *slog.Logger
}

func NewTimerStore(logger *slog.Logger) *TimerStore {
	return &TimerStore{
		byID:   make(map[uuid.UUID]*timer.Timer),
		logger: logger,
	}
}

func (s *TimerStore) Create(_ context.Context, t *timer.Timer) (*timer.Timer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[t.ID()]; exists {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "timer id already stored", nil)
	}
	stored := t.Clone()
	s.timers = append(s.timers, stored)
	s.byID[stored.ID()] = stored
	return stored.Clone(), nil
}

func (s *TimerStore) List(_ context.Context) ([]*timer.Timer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*timer.Timer, len(s.timers))
	for i, t := range s.timers {
		out[i] = t.Clone()
	}
	return out, nil
}

func (s *TimerStore) ListByProduct(_ context.Context, productID string) ([]*timer.Timer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*timer.Timer
	for _, t := range s.timers {
		if t.ProductID() == productID {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

func (s *TimerStore) FindByID(_ context.Context, id uuid.UUID) (*timer.Timer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "timer not found", nil)
	}
	return t.Clone(), nil
}

func (s *TimerStore) IncrementImpression(_ context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return 0, infra.WrapRepoErr(s.logger, infra.KindNotFound, "timer not found", nil)
	}
	return t.RecordImpression(), nil
}
