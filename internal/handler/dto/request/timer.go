package request

import (
	"countdown-timer/internal/domain/timer"
	"countdown-timer/internal/pkg/patch"
	"countdown-timer/internal/usecase/commands"
)

// Required fields are checked by the use case so that every missing one is reported together.
type CreateTimerRequest struct {
	Name            string  `json:"name" binding:"max=255"`
	ProductID       string  `json:"productId" binding:"max=255"`
	Type            *string `json:"type"`
	StartAt         string  `json:"startAt"`
	EndAt           string  `json:"endAt"`
	DurationMinutes *int    `json:"durationMinutes"`
}

func (r *CreateTimerRequest) ToInput(shop string) commands.CreateTimerInput {
	return commands.CreateTimerInput{
		Shop:            shop,
		Name:            r.Name,
		ProductID:       r.ProductID,
		Type:            patch.Coalesce(r.Type, timer.TypeFixed.String()),
		StartAt:         r.StartAt,
		EndAt:           r.EndAt,
		DurationMinutes: r.DurationMinutes,
	}
}

type SuggestTimerRequest struct {
	Intent       *string `json:"intent"`
	ProductTitle string  `json:"productTitle"`
}

func (r *SuggestTimerRequest) ToInput() commands.SuggestTimerInput {
	return commands.SuggestTimerInput{
		Intent:       r.Intent,
		ProductTitle: r.ProductTitle,
	}
}
