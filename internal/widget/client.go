package widget

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// anything else is treated as fixed, like a missing type
const typeEvergreen = "evergreen"

// ActiveTimer is the part of the active-timer response the widget reads.
type ActiveTimer struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	EndAt           *time.Time `json:"endAt"`
	DurationMinutes *int       `json:"durationMinutes"`
}

func (t ActiveTimer) IsEvergreen() bool {
	return t.Type == typeEvergreen
}

// Client talks to the timer API. baseURL is the origin serving /api.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// FetchActive asks which timer is active for productID. 204 and an empty body are Missing;
// transport errors, other statuses and undecodable bodies are Failed.
func (c *Client) FetchActive(ctx context.Context, productID string) Outcome[ActiveTimer] {
	u := c.baseURL + "/api/timers/active?productId=" + url.QueryEscape(productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Failed[ActiveTimer](err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Failed[ActiveTimer](err)
	}
	defer drain(resp.Body)

	if resp.StatusCode == http.StatusNoContent {
		return Missing[ActiveTimer]()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Failed[ActiveTimer](fmt.Errorf("active timer lookup returned %s", resp.Status))
	}

	var t ActiveTimer
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		if err == io.EOF {
			return Missing[ActiveTimer]()
		}
		return Failed[ActiveTimer](fmt.Errorf("decode active timer: %w", err))
	}
	return Found(t)
}

// TrackImpression records one impression for timerID. Callers treat it as fire-and-forget.
func (c *Client) TrackImpression(ctx context.Context, timerID string) error {
	if timerID == "" {
		return nil
	}
	u := c.baseURL + "/api/timers/" + url.PathEscape(timerID) + "/impression"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer drain(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("impression returned %s", resp.Status)
	}
	return nil
}

func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
