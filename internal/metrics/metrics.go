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
		[]string{LabelMethod, LabelRoute, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelRoute},
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
)

// Tool Metrics
var (
	ToolActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameToolActions,
			Help: HelpTextToolActions,
		},
		[]string{LabelTool, LabelAction},
	)

	ToolActionsRefused = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameToolActionsRefused,
			Help: HelpTextToolActionsRefused,
		},
		[]string{LabelTool, LabelAction},
	)

	ToolRepairs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameToolRepairs,
			Help: HelpTextToolRepairs,
		},
		[]string{LabelTool},
	)

	ToolWear = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameToolWear,
			Help: HelpTextToolWear,
		},
		[]string{LabelTool},
	)

	ToolDurability = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameToolDurability,
			Help: HelpTextToolDurability,
		},
		[]string{LabelTool},
	)
)
