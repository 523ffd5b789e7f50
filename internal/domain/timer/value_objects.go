package timer

import (
	"strings"
	"time"
)

// accepted in addition to RFC 3339; the admin form posts datetime-local values without a zone.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseInstant parses a timestamp; values without a zone are read as UTC.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidInstant
}

// Window is the closed interval [start, end] a fixed timer runs in.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func ParseWindow(startAt, endAt string) (Window, error) {
	start, err := ParseInstant(startAt)
	if err != nil {
		return Window{}, err
	}
	end, err := ParseInstant(endAt)
	if err != nil {
		return Window{}, err
	}
	return NewWindow(start, end)
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

// Contains is inclusive on both bounds.
func (w Window) Contains(now time.Time) bool {
	return !now.Before(w.start) && !now.After(w.end)
}

type DurationMinutes int

func NewDurationMinutes(v int) (DurationMinutes, error) {
	if v <= 0 {
		return 0, ErrInvalidDuration
	}
	return DurationMinutes(v), nil
}

func (d DurationMinutes) Int() int                { return int(d) }
func (d DurationMinutes) Duration() time.Duration { return time.Duration(d) * time.Minute }
