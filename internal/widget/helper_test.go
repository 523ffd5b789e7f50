//go:build unit

package widget_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"countdown-timer/internal/widget"
)

const waitTimeout = 2 * time.Second

// recordingHost collects renders; every call is also signalled on events.
type recordingHost struct {
	mu     sync.Mutex
	texts  []string
	hidden bool
	events chan string

	panicOnSet  bool
	panicOnHide bool
}

func newRecordingHost() *recordingHost {
	return &recordingHost{events: make(chan string, 64)}
}

func (h *recordingHost) SetText(text string) {
	if h.panicOnSet {
		panic("element detached")
	}
	h.mu.Lock()
	h.texts = append(h.texts, text)
	h.mu.Unlock()
	h.signal(text)
}

func (h *recordingHost) Hide() {
	if h.panicOnHide {
		panic("element detached")
	}
	h.mu.Lock()
	h.hidden = true
	h.mu.Unlock()
	h.signal("hide")
}

func (h *recordingHost) signal(ev string) {
	select {
	case h.events <- ev:
	default:
	}
}

func (h *recordingHost) Texts() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.texts...)
}

func (h *recordingHost) Hidden() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hidden
}

func (h *recordingHost) next(t *testing.T) string {
	t.Helper()
	select {
	case ev := <-h.events:
		return ev
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for a render")
		return ""
	}
}

// manualTicker only ticks when the test sends on it.
type manualTicker struct {
	c       chan time.Time
	stopped atomic.Bool
	created atomic.Int32
}

func newManualTicker() *manualTicker {
	return &manualTicker{c: make(chan time.Time)}
}

func (m *manualTicker) C() <-chan time.Time { return m.c }
func (m *manualTicker) Stop()               { m.stopped.Store(true) }

func (m *manualTicker) factory() widget.TickerFunc {
	return func(time.Duration) widget.Ticker {
		m.created.Add(1)
		return m
	}
}

func (m *manualTicker) tick(t *testing.T) {
	t.Helper()
	select {
	case m.c <- time.Now():
	case <-time.After(waitTimeout):
		t.Fatal("countdown loop is not receiving ticks")
	}
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("countdown did not finish")
	}
}
