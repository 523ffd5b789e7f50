package widget

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"countdown-timer/internal/pkg/clock"
)

// Host is where a countdown renders: a DOM element in the browser, a terminal line elsewhere.
type Host interface {
	SetText(text string)
	Hide()
}

type State int32

const (
	StateLoading State = iota
	StateCounting
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateCounting:
		return "counting"
	case StateExpired:
		return "expired"
	default:
		return "loading"
	}
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFunc func(d time.Duration) Ticker

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

const DefaultTickInterval = time.Second

// Countdown drives a Host from Counting to Expired. Ticks run on a single goroutine; Stop is
// idempotent and no tick renders after it returns.
type Countdown struct {
	host      Host
	end       time.Time
	clock     clock.Clock
	interval  time.Duration
	newTicker TickerFunc
	onExpire  func()
	logger    *slog.Logger

	state     atomic.Int32
	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

type CountdownOption func(*Countdown)

func WithClock(c clock.Clock) CountdownOption {
	return func(cd *Countdown) { cd.clock = c }
}

func WithInterval(d time.Duration) CountdownOption {
	return func(cd *Countdown) {
		if d > 0 {
			cd.interval = d
		}
	}
}

func WithTicker(f TickerFunc) CountdownOption {
	return func(cd *Countdown) { cd.newTicker = f }
}

// WithOnExpire runs fn once when the countdown reaches zero.
func WithOnExpire(fn func()) CountdownOption {
	return func(cd *Countdown) { cd.onExpire = fn }
}

func WithLogger(l *slog.Logger) CountdownOption {
	return func(cd *Countdown) { cd.logger = l }
}

func NewCountdown(host Host, end time.Time, opts ...CountdownOption) *Countdown {
	cd := &Countdown{
		host:      host,
		end:       end,
		clock:     clock.NewRealClock(),
		interval:  DefaultTickInterval,
		newTicker: NewRealTicker,
		logger:    discardLogger(),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(cd)
	}
	return cd
}

// Start renders the first tick before returning, then keeps ticking in the background.
// Calls after the first are no-ops.
func (cd *Countdown) Start() {
	cd.startOnce.Do(func() {
		cd.state.Store(int32(StateCounting))
		if !cd.tick() {
			close(cd.done)
			return
		}
		ticker := cd.newTicker(cd.interval)
		go cd.loop(ticker)
	})
}

// Stop cancels ticking and waits for the loop to exit. Safe to call any number of times, before
// or after Start.
func (cd *Countdown) Stop() {
	cd.stopOnce.Do(func() { close(cd.stop) })
	cd.startOnce.Do(func() { close(cd.done) })
	<-cd.done
}

// Done is closed once ticking has ended for any reason.
func (cd *Countdown) Done() <-chan struct{} {
	return cd.done
}

func (cd *Countdown) State() State {
	return State(cd.state.Load())
}

func (cd *Countdown) End() time.Time {
	return cd.end
}

func (cd *Countdown) loop(ticker Ticker) {
	defer close(cd.done)
	defer ticker.Stop()

	for {
		select {
		case <-cd.stop:
			return
		case <-ticker.C():
			// a tick and a stop can be ready together; stop wins
			select {
			case <-cd.stop:
				return
			default:
			}
			if !cd.tick() {
				return
			}
		}
	}
}

// tick renders once and reports whether ticking should continue. A panic from the host or the
// expiry hook ends ticking and leaves the last render in place.
func (cd *Countdown) tick() (cont bool) {
	defer func() {
		if r := recover(); r != nil {
			cd.logger.Warn("countdown tick failed", "panic", r)
			cont = false
		}
	}()

	remaining := cd.end.Sub(cd.clock.Now())
	if remaining <= 0 {
		cd.state.Store(int32(StateExpired))
		cd.expire()
		return false
	}
	cd.host.SetText(OfferText(remaining))
	return true
}

// expire runs the expiry hook before hiding the host; each step runs even if the other panics.
func (cd *Countdown) expire() {
	defer cd.host.Hide()
	if cd.onExpire != nil {
		cd.onExpire()
	}
}
