//go:build unit || e2e

package builder

import (
	"time"

	domtimer "countdown-timer/internal/domain/timer"
	reqdto "countdown-timer/internal/handler/dto/request"
	"countdown-timer/internal/pkg/ptr"

	"github.com/google/uuid"
)

type TimerBuilder struct {
	ID              uuid.UUID
	Shop            string
	Name            string
	Type            domtimer.Type
	ProductID       string
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	CreatedAt       time.Time
}

func NewTimerBuilder() *TimerBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &TimerBuilder{
		Shop:            "demo-store",
		Name:            "Summer sale",
		Type:            domtimer.TypeFixed,
		ProductID:       "gid://shopify/Product/1001",
		StartAt:         now.Add(-time.Hour),
		EndAt:           now.Add(time.Hour),
		DurationMinutes: 30,
		CreatedAt:       now,
	}
}

func (b *TimerBuilder) With(mutate func(*TimerBuilder)) *TimerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TimerBuilder) Params() domtimer.Params {
	p := domtimer.Params{
		Shop:            b.Shop,
		Name:            b.Name,
		ProductID:       b.ProductID,
		Type:            b.Type,
		DurationMinutes: b.DurationMinutes,
	}
	if b.Type == domtimer.TypeFixed {
		// an inverted window is left nil; NewWindow is exercised directly for that case
		if w, err := domtimer.NewWindow(b.StartAt, b.EndAt); err == nil {
			p.Window = &w
		}
	}
	return p
}

func (b *TimerBuilder) BuildDomain() (*domtimer.Timer, error) {
	return domtimer.NewTimer(b.ID, b.Params(), b.CreatedAt)
}

// MustBuild is for fixtures that are valid by construction.
func (b *TimerBuilder) MustBuild() *domtimer.Timer {
	t, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return t
}

func (b *TimerBuilder) BuildCreateRequestDTO() reqdto.CreateTimerRequest {
	req := reqdto.CreateTimerRequest{
		Name:      b.Name,
		ProductID: b.ProductID,
		Type:      ptr.Of(string(b.Type)),
	}
	switch b.Type {
	case domtimer.TypeEvergreen:
		req.DurationMinutes = ptr.Of(b.DurationMinutes)
	default:
		req.StartAt = b.StartAt.Format(time.RFC3339)
		req.EndAt = b.EndAt.Format(time.RFC3339)
	}
	return req
}

// Fluent builder methods
func (b *TimerBuilder) WithID(id uuid.UUID) *TimerBuilder {
	b.ID = id
	return b
}

func (b *TimerBuilder) WithShop(shop string) *TimerBuilder {
	b.Shop = shop
	return b
}

func (b *TimerBuilder) WithName(name string) *TimerBuilder {
	b.Name = name
	return b
}

func (b *TimerBuilder) WithProductID(productID string) *TimerBuilder {
	b.ProductID = productID
	return b
}

func (b *TimerBuilder) WithWindow(start, end time.Time) *TimerBuilder {
	b.Type = domtimer.TypeFixed
	b.StartAt = start
	b.EndAt = end
	return b
}

func (b *TimerBuilder) WithCreatedAt(createdAt time.Time) *TimerBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *TimerBuilder) AsEvergreen(minutes int) *TimerBuilder {
	b.Type = domtimer.TypeEvergreen
	b.DurationMinutes = minutes
	return b
}
