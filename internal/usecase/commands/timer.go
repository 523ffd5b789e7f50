package commands

//go:generate mockgen -source=timer.go -destination=../../../tests/mock/commands/timer.go -package=mock_commands

import (
	"context"
	"log/slog"
	"strings"

	"countdown-timer/internal/domain/timer"
	"countdown-timer/internal/infra"
	"countdown-timer/internal/metrics"
	"countdown-timer/internal/pkg/clock"
	"countdown-timer/internal/pkg/errs"
	"countdown-timer/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTimerNotFound       = errs.New("timer not found")
	ErrTimerCreationFailed = errs.New("failed to create timer")
)

// CreateTimerInput carries the raw request values; parsing and validation happen in Create.
type CreateTimerInput struct {
	Shop            string
	Name            string
	ProductID       string
	Type            string
	StartAt         string
	EndAt           string
	DurationMinutes *int
}

type TimerCommands interface {
	Create(ctx context.Context, in CreateTimerInput) (*timer.Timer, error)
	TrackImpression(ctx context.Context, id uuid.UUID) (int64, error)
}

type timerCommandsImpl struct {
	repo   shared.TimerRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewTimerCommands(repo shared.TimerRepository, clk clock.Clock, logger *slog.Logger) TimerCommands {
	return &timerCommandsImpl{repo: repo, clock: clk, logger: logger}
}

func (uc *timerCommandsImpl) Create(ctx context.Context, in CreateTimerInput) (*timer.Timer, error) {
	typ, err := timer.ParseType(in.Type)
	if err != nil {
		return nil, err
	}
	if missing := missingFields(typ, in); len(missing) > 0 {
		return nil, timer.NewMissingFieldsError(missing...)
	}

	params := timer.Params{
		Shop:      strings.TrimSpace(in.Shop),
		Name:      strings.TrimSpace(in.Name),
		ProductID: strings.TrimSpace(in.ProductID),
		Type:      typ,
	}
	switch typ {
	case timer.TypeFixed:
		w, werr := timer.ParseWindow(in.StartAt, in.EndAt)
		if werr != nil {
			return nil, werr
		}
		params.Window = &w
	case timer.TypeEvergreen:
		params.DurationMinutes = *in.DurationMinutes
	}

	t, err := timer.NewTimer(uuid.New(), params, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.Create(ctx, t)
	if err != nil {
		return nil, errs.Mark(err, ErrTimerCreationFailed)
	}

	metrics.TimersCreated.WithLabelValues(created.Type().String()).Inc()
	uc.logger.Info("timer created",
		slog.String("timer_id", created.ID().String()),
		slog.String("shop", created.Shop()),
		slog.String("product_id", created.ProductID()),
		slog.String("type", created.Type().String()),
	)
	return created, nil
}

func (uc *timerCommandsImpl) TrackImpression(ctx context.Context, id uuid.UUID) (int64, error) {
	count, err := uc.repo.IncrementImpression(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			metrics.Impressions.WithLabelValues(metrics.OutcomeUnknown).Inc()
			return 0, errs.Mark(err, ErrTimerNotFound)
		}
		return 0, err
	}
	metrics.Impressions.WithLabelValues(metrics.OutcomeRecorded).Inc()
	return count, nil
}

// missingFields lists absent inputs in request order. Dates are only required for fixed timers
// and the duration only for evergreen ones.
func missingFields(typ timer.Type, in CreateTimerInput) []string {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.ProductID) == "" {
		missing = append(missing, "productId")
	}
	switch typ {
	case timer.TypeFixed:
		if strings.TrimSpace(in.StartAt) == "" {
			missing = append(missing, "startAt")
		}
		if strings.TrimSpace(in.EndAt) == "" {
			missing = append(missing, "endAt")
		}
	case timer.TypeEvergreen:
		if in.DurationMinutes == nil {
			missing = append(missing, "durationMinutes")
		}
	}
	return missing
}
