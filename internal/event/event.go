package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/Toolbox_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Tool event types
const (
	ToolActionPerformed Type = domain.EventTypeToolActionPerformed
	ToolActionRefused   Type = domain.EventTypeToolActionRefused
	ToolRepaired        Type = domain.EventTypeToolRepaired
)

// ToolTypes lists every tool event type, for subscribers that want all of them
var ToolTypes = []Type{ToolActionPerformed, ToolActionRefused, ToolRepaired}

// NewToolEvent wraps a tool payload in a versioned event
func NewToolEvent(eventType Type, payload domain.ToolActionPayload) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
	}
}

// Handler handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for publishing and subscribing to events
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers the event to every subscriber synchronously, in
// subscription order. All handlers run even if one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
