package queries

//go:generate mockgen -source=timer.go -destination=../../../tests/mock/queries/timer.go -package=mock_queries

import (
	"context"
	"strings"

	"countdown-timer/internal/domain/timer"
	"countdown-timer/internal/metrics"
	"countdown-timer/internal/pkg/clock"
	"countdown-timer/internal/pkg/errs"
	"countdown-timer/internal/usecase/shared"
)

var ErrProductIDRequired = errs.New("productId is required")

type TimerQueries interface {
	List(ctx context.Context) ([]*timer.Timer, error)
	// Active returns the timer currently shown for a product. A product without an active
	// timer is not an error: the bool is false and the timer nil.
	Active(ctx context.Context, productID string) (*timer.Timer, bool, error)
}

type timerQueriesImpl struct {
	repo  shared.TimerRepository
	clock clock.Clock
}

func NewTimerQueries(repo shared.TimerRepository, clk clock.Clock) TimerQueries {
	return &timerQueriesImpl{repo: repo, clock: clk}
}

func (q *timerQueriesImpl) List(ctx context.Context) ([]*timer.Timer, error) {
	timers, err := q.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if timers == nil {
		timers = []*timer.Timer{}
	}
	return timers, nil
}

func (q *timerQueriesImpl) Active(ctx context.Context, productID string) (*timer.Timer, bool, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, false, ErrProductIDRequired
	}

	candidates, err := q.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, false, err
	}

	t, ok := timer.Resolve(candidates, productID, q.clock.Now())
	if !ok {
		metrics.Resolutions.WithLabelValues(metrics.OutcomeNone).Inc()
		return nil, false, nil
	}
	metrics.Resolutions.WithLabelValues(metrics.OutcomeActive).Inc()
	return t, true, nil
}
