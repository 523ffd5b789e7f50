package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTimersCreated = "timers_created_total"
	NameResolutions   = "active_resolutions_total"
	NameImpressions   = "impressions_total"
	LabelType         = "type"
	LabelOutcome      = "outcome"
)

const (
	OutcomeActive   = "active"
	OutcomeNone     = "none"
	OutcomeRecorded = "recorded"
	OutcomeUnknown  = "unknown_timer"
)

var TimersCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTimersCreated,
		Help:      "Timers created, by timer type",
		Namespace: Namespace,
	},
	[]string{LabelType},
)

var Resolutions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameResolutions,
		Help:      "Active-timer lookups, by whether a timer was active",
		Namespace: Namespace,
	},
	[]string{LabelOutcome},
)

var Impressions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameImpressions,
		Help:      "Impression beacons received",
		Namespace: Namespace,
	},
	[]string{LabelOutcome},
)
