package workshop

import (
	"bytes"
	"context"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Toolbox_Go/internal/console"
	"github.com/osse101/Toolbox_Go/internal/event"
	"github.com/osse101/Toolbox_Go/internal/utils"
)

// mockBus is a testify mock of event.Bus
type mockBus struct {
	mock.Mock
}

func (m *mockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *mockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

// scriptedRand replays fixed draws, each Intn value taken modulo n
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// recorder collects every tool event published on a memory bus
type recorder struct {
	events []event.Event
}

func newRecorder(bus *event.MemoryBus) *recorder {
	r := &recorder{}
	for _, eventType := range event.ToolTypes {
		bus.Subscribe(eventType, func(_ context.Context, evt event.Event) error {
			r.events = append(r.events, evt)
			return nil
		})
	}
	return r
}

func (r *recorder) types() []event.Type {
	types := make([]event.Type, 0, len(r.events))
	for _, evt := range r.events {
		types = append(types, evt.Type)
	}
	return types
}

func newTestWorkshop(input string, bus event.Bus, rng utils.Rand) (*Workshop, *bytes.Buffer) {
	var out bytes.Buffer
	c := console.New(strings.NewReader(input), &out, console.Options{})
	return New(c, bus, rng), &out
}
