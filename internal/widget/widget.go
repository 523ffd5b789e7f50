// Package widget is the storefront side of the countdown timers: it resolves the active timer
// for a product, anchors evergreen timers per visitor, counts impressions and drives the
// countdown on a Host. Nothing in it reports failure to the page; every failure ends quietly.
package widget

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"countdown-timer/internal/pkg/clock"
)

type Config struct {
	// BaseURL is the origin serving the timer API, e.g. https://shop.example.com.
	BaseURL      string
	TickInterval time.Duration
	HTTPClient   *http.Client
	Logger       *slog.Logger
	Clock        clock.Clock
	NewTicker    TickerFunc
}

type Widget struct {
	client  *Client
	expiry  *ExpiryManager
	host    Host
	clock   clock.Clock
	logger  *slog.Logger
	options []CountdownOption
}

func New(cfg Config, host Host, store ExpiryStore) *Widget {
	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewRealClock()
	}

	opts := []CountdownOption{WithClock(clk), WithInterval(cfg.TickInterval), WithLogger(logger)}
	if cfg.NewTicker != nil {
		opts = append(opts, WithTicker(cfg.NewTicker))
	}

	return &Widget{
		client:  NewClient(cfg.BaseURL, cfg.HTTPClient, logger),
		expiry:  NewExpiryManager(store, logger),
		host:    host,
		clock:   clk,
		logger:  logger,
		options: opts,
	}
}

// Boot resolves the active timer for productID and starts its countdown. It returns nil when
// there is nothing to show, whatever the reason. The impression request is sent once, before the
// first render, and is never waited for.
func (w *Widget) Boot(ctx context.Context, productID string) (cd *Countdown) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Warn("widget boot failed", "panic", r)
			cd = nil
		}
	}()

	if productID == "" {
		return nil
	}

	active := w.client.FetchActive(ctx, productID)
	if !active.OK() {
		w.logger.Debug("no countdown to show", "product_id", productID, "status", active.Status.String(), "error", active.Err)
		return nil
	}
	t := active.Value
	if t.ID == "" {
		return nil
	}

	end, ok := w.endInstant(t)
	if !ok {
		w.logger.Debug("active timer has no usable end", "timer_id", t.ID, "type", t.Type)
		return nil
	}

	go w.track(ctx, t.ID)

	opts := append([]CountdownOption{}, w.options...)
	if t.IsEvergreen() {
		opts = append(opts, WithOnExpire(func() { w.expiry.Clear(t.ID) }))
	}
	cd = NewCountdown(w.host, end, opts...)
	cd.Start()
	return cd
}

// endInstant is endAt for fixed timers and the visitor's own expiry for evergreen ones.
// Evergreen timers without a positive duration have nothing to count down.
func (w *Widget) endInstant(t ActiveTimer) (time.Time, bool) {
	if t.IsEvergreen() {
		if t.DurationMinutes == nil || *t.DurationMinutes <= 0 {
			return time.Time{}, false
		}
		return w.expiry.ResolveExpiry(t.ID, *t.DurationMinutes, w.clock.Now()), true
	}
	if t.EndAt == nil || t.EndAt.IsZero() {
		return time.Time{}, false
	}
	return *t.EndAt, true
}

func (w *Widget) track(ctx context.Context, timerID string) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Debug("impression tracking panicked", "timer_id", timerID, "panic", r)
		}
	}()
	if err := w.client.TrackImpression(context.WithoutCancel(ctx), timerID); err != nil {
		w.logger.Debug("impression not recorded", "timer_id", timerID, "error", err)
	}
}
