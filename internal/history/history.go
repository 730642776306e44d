// Package history remembers the most recent action taken on each toolbox
// entry so the toolbox screen can show it.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Toolbox_Go/internal/event"
	"github.com/osse101/Toolbox_Go/internal/logger"
)

// Entry is the last recorded action for one toolbox key
type Entry struct {
	Action           string
	Refused          bool
	DurabilityBefore int
	DurabilityAfter  int
	At               time.Time
}

// Summary renders the entry for the toolbox screen
func (e Entry) Summary() string {
	if e.Refused {
		return fmt.Sprintf(SummaryRefusedFormat, e.Action)
	}
	return fmt.Sprintf(SummaryPerformedFormat, e.Action, e.DurabilityBefore, e.DurabilityAfter)
}

// Store is a bounded LRU of entries keyed by toolbox key.
// A ttl of zero keeps entries until they are evicted by size.
type Store struct {
	lru *expirable.LRU[string, Entry]
	now func() time.Time
}

// New creates a store holding at most size keys
func New(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	return &Store{
		lru: expirable.NewLRU[string, Entry](size, nil, ttl),
		now: time.Now,
	}
}

// Register subscribes the store to every tool event
func (s *Store) Register(bus event.Bus) {
	for _, eventType := range event.ToolTypes {
		bus.Subscribe(eventType, s.HandleEvent)
	}
}

// HandleEvent records the event under its toolbox key
func (s *Store) HandleEvent(ctx context.Context, evt event.Event) error {
	payload, err := event.ToolPayload(evt)
	if err != nil || payload.Key == "" {
		logger.FromContext(ctx).Debug(LogMsgPayloadSkip, "type", evt.Type)
		return nil
	}

	s.Record(payload.Key, Entry{
		Action:           payload.Action,
		Refused:          evt.Type == event.ToolActionRefused,
		DurabilityBefore: payload.DurabilityBefore,
		DurabilityAfter:  payload.DurabilityAfter,
	})
	logger.FromContext(ctx).Debug(LogMsgEntryRecorded, "key", payload.Key, "action", payload.Action)
	return nil
}

// Record stores entry for key, stamping it when At is zero
func (s *Store) Record(key string, entry Entry) {
	if entry.At.IsZero() {
		entry.At = s.now()
	}
	s.lru.Add(key, entry)
}

// Last returns the most recent entry for key
func (s *Store) Last(key string) (Entry, bool) {
	return s.lru.Get(key)
}

// Len returns the number of live entries
func (s *Store) Len() int {
	return s.lru.Len()
}

// Clear removes all entries
func (s *Store) Clear() {
	s.lru.Purge()
}
