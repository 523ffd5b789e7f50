package response

import (
	"time"

	"countdown-timer/internal/domain/timer"
	"countdown-timer/internal/usecase/commands"
)

type TimerResponse struct {
	ID              string     `json:"id"`
	Shop            string     `json:"shop"`
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	StartAt         *time.Time `json:"startAt"`
	EndAt           *time.Time `json:"endAt"`
	ProductID       string     `json:"productId"`
	DurationMinutes *int       `json:"durationMinutes"`
	Impressions     int64      `json:"impressions"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func FromTimer(t *timer.Timer) *TimerResponse {
	return &TimerResponse{
		ID:              t.ID().String(),
		Shop:            t.Shop(),
		Name:            t.Name(),
		Type:            t.Type().String(),
		StartAt:         t.StartAt(),
		EndAt:           t.EndAt(),
		ProductID:       t.ProductID(),
		DurationMinutes: t.DurationMinutes(),
		Impressions:     t.Impressions(),
		CreatedAt:       t.CreatedAt(),
	}
}

func FromTimerList(ts []*timer.Timer) []*TimerResponse {
	res := make([]*TimerResponse, len(ts))
	for i, t := range ts {
		res[i] = FromTimer(t)
	}
	return res
}

type ImpressionResponse struct {
	Impressions int64 `json:"impressions"`
}

type SuggestionResponse struct {
	Type            string `json:"type"`
	DurationMinutes int    `json:"durationMinutes"`
	Headline        string `json:"headline"`
}

func FromSuggestion(s *commands.TimerSuggestion) *SuggestionResponse {
	return &SuggestionResponse{
		Type:            s.Type.String(),
		DurationMinutes: s.DurationMinutes,
		Headline:        s.Headline,
	}
}
