package timer

import (
	"strings"

	"countdown-timer/internal/pkg/errs"
)

type Type string

const (
	TypeFixed     Type = "fixed"
	TypeEvergreen Type = "evergreen"
)

var (
	ErrInvalidType     = errs.New("type must be one of: fixed, evergreen")
	ErrMissingFields   = errs.New("missing required fields")
	ErrInvalidInstant  = errs.New("invalid date format for startAt or endAt")
	ErrInvalidWindow   = errs.New("startAt must be before endAt")
	ErrInvalidDuration = errs.New("durationMinutes must be a positive number of minutes")
)

// ParseType maps the wire value to a Type. An empty value means fixed.
func ParseType(s string) (Type, error) {
	switch Type(strings.TrimSpace(s)) {
	case "", TypeFixed:
		return TypeFixed, nil
	case TypeEvergreen:
		return TypeEvergreen, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string { return string(t) }

// MissingFieldsError names every required field absent from a creation request.
type MissingFieldsError struct {
	Fields []string
}

func NewMissingFieldsError(fields ...string) *MissingFieldsError {
	return &MissingFieldsError{Fields: fields}
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}
