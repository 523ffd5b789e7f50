package timer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Timer is a promotional countdown attached to one storefront product. Everything except the
// impression counter is fixed at creation.
type Timer struct {
	id          uuid.UUID
	shop        string
	name        string
	timerType   Type
	window      *Window
	duration    DurationMinutes
	productID   string
	impressions int64
	createdAt   time.Time
}

type Params struct {
	Shop      string
	Name      string
	ProductID string
	Type      Type
	// Window is required for fixed timers and ignored for evergreen ones.
	Window *Window
	// DurationMinutes is required for evergreen timers and ignored for fixed ones.
	DurationMinutes int
}

// createdAtPrecision is the finest resolution every store keeps (PostgreSQL timestamptz).
const createdAtPrecision = time.Microsecond

func NewTimer(id uuid.UUID, p Params, now time.Time) (*Timer, error) {
	var missing []string
	if strings.TrimSpace(p.Shop) == "" {
		missing = append(missing, "shop")
	}
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.ProductID) == "" {
		missing = append(missing, "productId")
	}
	if p.Type == TypeFixed && p.Window == nil {
		missing = append(missing, "startAt", "endAt")
	}
	if len(missing) > 0 {
		return nil, NewMissingFieldsError(missing...)
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	t := &Timer{
		id:        id,
		shop:      p.Shop,
		name:      p.Name,
		timerType: p.Type,
		productID: p.ProductID,
		createdAt: now.UTC().Truncate(createdAtPrecision),
	}

	switch p.Type {
	case TypeFixed:
		if _, err := NewWindow(p.Window.Start(), p.Window.End()); err != nil {
			return nil, err
		}
		w := *p.Window
		t.window = &w
	case TypeEvergreen:
		d, err := NewDurationMinutes(p.DurationMinutes)
		if err != nil {
			return nil, err
		}
		t.duration = d
	default:
		return nil, ErrInvalidType
	}

	return t, nil
}

// Snapshot is the flat form of a Timer used by storage adapters.
type Snapshot struct {
	ID              uuid.UUID
	Shop            string
	Name            string
	Type            Type
	StartAt         *time.Time
	EndAt           *time.Time
	DurationMinutes *int
	ProductID       string
	Impressions     int64
	CreatedAt       time.Time
}

// Reconstruct rebuilds a stored timer without re-running creation checks.
func Reconstruct(s Snapshot) *Timer {
	t := &Timer{
		id:          s.ID,
		shop:        s.Shop,
		name:        s.Name,
		timerType:   s.Type,
		productID:   s.ProductID,
		impressions: s.Impressions,
		createdAt:   s.CreatedAt,
	}
	if s.StartAt != nil && s.EndAt != nil {
		t.window = &Window{start: *s.StartAt, end: *s.EndAt}
	}
	if s.DurationMinutes != nil {
		t.duration = DurationMinutes(*s.DurationMinutes)
	}
	return t
}

func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		ID:              t.id,
		Shop:            t.shop,
		Name:            t.name,
		Type:            t.timerType,
		StartAt:         t.StartAt(),
		EndAt:           t.EndAt(),
		DurationMinutes: t.DurationMinutes(),
		ProductID:       t.productID,
		Impressions:     t.impressions,
		CreatedAt:       t.createdAt,
	}
}

func (t *Timer) Clone() *Timer {
	c := *t
	return &c
}

// IsActiveAt reports whether the timer applies at now. Evergreen timers are always active on the
// server; each visitor's own expiry is tracked by the storefront widget.
func (t *Timer) IsActiveAt(now time.Time) bool {
	switch t.timerType {
	case TypeEvergreen:
		return true
	case TypeFixed:
		return t.window != nil && t.window.Contains(now)
	default:
		return false
	}
}

// RecordImpression increments the counter and returns the new value.
func (t *Timer) RecordImpression() int64 {
	t.impressions++
	return t.impressions
}

func (t *Timer) ID() uuid.UUID        { return t.id }
func (t *Timer) Shop() string         { return t.shop }
func (t *Timer) Name() string         { return t.name }
func (t *Timer) Type() Type           { return t.timerType }
func (t *Timer) ProductID() string    { return t.productID }
func (t *Timer) Impressions() int64   { return t.impressions }
func (t *Timer) CreatedAt() time.Time { return t.createdAt }

func (t *Timer) StartAt() *time.Time {
	if t.window == nil {
		return nil
	}
	v := t.window.start
	return &v
}

func (t *Timer) EndAt() *time.Time {
	if t.window == nil {
		return nil
	}
	v := t.window.end
	return &v
}

func (t *Timer) DurationMinutes() *int {
	if t.timerType != TypeEvergreen {
		return nil
	}
	v := t.duration.Int()
	return &v
}
