package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameHTTPRequestDuration = "http_request_duration_seconds"
	LabelMethod             = "method"
	LabelRoute              = "route"
	LabelStatus             = "status"
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameHTTPRequestDuration,
		Help:      "HTTP request duration in seconds",
		Namespace: Namespace,
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	},
	[]string{LabelMethod, LabelRoute, LabelStatus},
)
