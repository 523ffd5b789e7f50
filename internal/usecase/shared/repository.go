package shared

//go:generate mockgen -source=repository.go -destination=../../../tests/mock/shared/repository.go -package=mock_shared

import (
	"context"

	"countdown-timer/internal/domain/timer"

	"github.com/google/uuid"
)

// TimerRepository is implemented by the in-memory store and the PostgreSQL adapter.
// List and ListByProduct return timers in insertion order.
type TimerRepository interface {
	Create(ctx context.Context, t *timer.Timer) (*timer.Timer, error)
	List(ctx context.Context) ([]*timer.Timer, error)
	ListByProduct(ctx context.Context, productID string) ([]*timer.Timer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*timer.Timer, error)
	IncrementImpression(ctx context.Context, id uuid.UUID) (int64, error)
}
