package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Progression metric names
const (
	MetricNameUpgradePurchases = "upgrade_purchases_total"
	MetricNameUnlockGrants     = "unlock_grants_total"
	MetricNameCelestialRuns    = "celestial_runs_total"
	MetricNameProgressResets   = "progress_resets_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

const (
	HelpTextUpgradePurchases = "Total number of upgrade purchase attempts by outcome"
	HelpTextUnlockGrants     = "Total number of unlocks granted without charge"
	HelpTextCelestialRuns    = "Total number of celestial run starts and stops"
	HelpTextProgressResets   = "Total number of explicit progress resets"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelGroup     = "group"
	LabelKey       = "key"
	LabelResult    = "result"
	LabelCelestial = "celestial"
	LabelAction    = "action"
)

// Purchase results
const (
	ResultPurchased = "purchased"
	ResultRejected  = "rejected"
)

// Run actions
const (
	ActionStart = "start"
	ActionStop  = "stop"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
