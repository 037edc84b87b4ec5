package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Progression Metrics
var (
	UpgradePurchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradePurchases,
			Help: HelpTextUpgradePurchases,
		},
		[]string{LabelGroup, LabelKey, LabelResult},
	)

	UnlockGrants = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnlockGrants,
			Help: HelpTextUnlockGrants,
		},
		[]string{LabelGroup, LabelKey},
	)

	CelestialRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCelestialRuns,
			Help: HelpTextCelestialRuns,
		},
		[]string{LabelCelestial, LabelAction},
	)

	ProgressResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProgressResets,
			Help: HelpTextProgressResets,
		},
		[]string{LabelGroup},
	)
)
