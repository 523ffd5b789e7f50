package commands

//go:generate mockgen -source=suggestion.go -destination=../../../tests/mock/commands/suggestion.go -package=mock_commands

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"countdown-timer/internal/domain/timer"
	"countdown-timer/internal/pkg/errs"
)

const MaxIntentLength = 200

var (
	ErrIntentRequired = errs.New("'intent' is required and must be a string")
	ErrIntentEmpty    = errs.New("'intent' must not be empty")
	ErrIntentTooLong  = errs.New("'intent' must be at most 200 characters")
)

var (
	urgentIntent = regexp.MustCompile(`(?i)flash|limited|today only|ends soon`)
	whitespace   = regexp.MustCompile(`\s+`)
)

const (
	urgentHeadline  = "Limited-time offer: ends soon!"
	defaultHeadline = "Special offer available for a short time."

	urgentDurationMinutes  = 120
	defaultDurationMinutes = 30
)

// A nil Intent means the field was absent from the request.
type SuggestTimerInput struct {
	Intent       *string
	ProductTitle string
}

type TimerSuggestion struct {
	Type            timer.Type
	DurationMinutes int
	Headline        string
}

type SuggestionCommands interface {
	Suggest(ctx context.Context, in SuggestTimerInput) (*TimerSuggestion, error)
}

type suggestionCommandsImpl struct{}

func NewSuggestionCommands() SuggestionCommands {
	return &suggestionCommandsImpl{}
}

// Suggest proposes a timer configuration from a merchant's free-text intent. Urgent wording gets a
// two hour fixed timer, anything else a 30 minute evergreen one.
func (uc *suggestionCommandsImpl) Suggest(_ context.Context, in SuggestTimerInput) (*TimerSuggestion, error) {
	if in.Intent == nil {
		return nil, ErrIntentRequired
	}
	intent := strings.TrimSpace(*in.Intent)
	if intent == "" {
		return nil, ErrIntentEmpty
	}
	if utf8.RuneCountInString(intent) > MaxIntentLength {
		return nil, ErrIntentTooLong
	}

	s := &TimerSuggestion{
		Type:            timer.TypeEvergreen,
		DurationMinutes: defaultDurationMinutes,
		Headline:        defaultHeadline,
	}
	if urgentIntent.MatchString(whitespace.ReplaceAllString(intent, " ")) {
		s.Type = timer.TypeFixed
		s.DurationMinutes = urgentDurationMinutes
		s.Headline = urgentHeadline
	}
	if in.ProductTitle != "" {
		s.Headline += " " + in.ProductTitle
	}
	return s, nil
}
