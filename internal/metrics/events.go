package metrics

import (
	"context"

	"github.com/osse101/Toolbox_Go/internal/event"
	"github.com/osse101/Toolbox_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all tool events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.ToolTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	payload, err := event.ToolPayload(evt)
	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}
	tool := string(payload.Kind)

	switch evt.Type {
	case event.ToolActionPerformed:
		ToolActions.WithLabelValues(tool, payload.Action).Inc()
		if wear := payload.Wear(); wear > 0 {
			ToolWear.WithLabelValues(tool).Add(float64(wear))
		}
		ToolDurability.WithLabelValues(tool).Set(float64(payload.DurabilityAfter))

	case event.ToolActionRefused:
		ToolActionsRefused.WithLabelValues(tool, payload.Action).Inc()

	case event.ToolRepaired:
		ToolRepairs.WithLabelValues(tool).Inc()
		ToolDurability.WithLabelValues(tool).Set(float64(payload.DurabilityAfter))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type, "tool", tool)
	return nil
}
