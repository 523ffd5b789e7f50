package widget

type Status int

const (
	StatusMissing Status = iota
	StatusFound
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusFailed:
		return "failed"
	default:
		return "missing"
	}
}

// Outcome is the result of a boundary call the widget must never let escape to the page.
// Missing and Failed both end in the no-op path; they are kept apart for logging.
type Outcome[T any] struct {
	Value  T
	Status Status
	Err    error
}

func Found[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v, Status: StatusFound}
}

func Missing[T any]() Outcome[T] {
	return Outcome[T]{Status: StatusMissing}
}

func Failed[T any](err error) Outcome[T] {
	return Outcome[T]{Status: StatusFailed, Err: err}
}

func (o Outcome[T]) OK() bool {
	return o.Status == StatusFound
}
