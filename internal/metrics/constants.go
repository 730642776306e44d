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
	MetricNameEventsPublished = "events_published_total"
)

// Tool metric names
const (
	MetricNameToolActions        = "tool_actions_total"
	MetricNameToolActionsRefused = "tool_actions_refused_total"
	MetricNameToolRepairs        = "tool_repairs_total"
	MetricNameToolWear           = "tool_wear_total"
	MetricNameToolDurability     = "tool_durability"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Tool metric help text
const (
	HelpTextToolActions        = "Total number of tool actions performed"
	HelpTextToolActionsRefused = "Total number of tool actions refused because the tool was broken"
	HelpTextToolRepairs        = "Total number of tool repairs"
	HelpTextToolWear           = "Total durability points lost to wear"
	HelpTextToolDurability     = "Current tool durability"
)

// ============================================================================
// RouteUnmatched labels requests that matched no route
const RouteUnmatched = "unmatched"

// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelRoute  = "route"
	LabelStatus = "status"
	LabelType   = "type"
	LabelTool   = "tool"
	LabelAction = "action"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload is not a tool payload"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
