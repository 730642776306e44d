package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/event"
)

func TestCollector_RecordsToolEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	tool := string(domain.ToolKindSaw)
	actionsBefore := testutil.ToFloat64(ToolActions.WithLabelValues(tool, domain.ActionCutWood))
	wearBefore := testutil.ToFloat64(ToolWear.WithLabelValues(tool))
	refusedBefore := testutil.ToFloat64(ToolActionsRefused.WithLabelValues(tool, domain.ActionCutWood))
	repairsBefore := testutil.ToFloat64(ToolRepairs.WithLabelValues(tool))

	performed := domain.ToolActionPayload{
		Key: "3", Tool: "Saw", Kind: domain.ToolKindSaw, Action: domain.ActionCutWood,
		DurabilityBefore: 100, DurabilityAfter: 97,
	}
	require.NoError(t, bus.Publish(ctx, event.NewToolEvent(event.ToolActionPerformed, performed)))

	assert.Equal(t, actionsBefore+1, testutil.ToFloat64(ToolActions.WithLabelValues(tool, domain.ActionCutWood)))
	assert.Equal(t, wearBefore+3, testutil.ToFloat64(ToolWear.WithLabelValues(tool)))
	assert.Equal(t, 97.0, testutil.ToFloat64(ToolDurability.WithLabelValues(tool)))

	refused := performed
	refused.DurabilityBefore, refused.DurabilityAfter = 0, 0
	require.NoError(t, bus.Publish(ctx, event.NewToolEvent(event.ToolActionRefused, refused)))
	assert.Equal(t, refusedBefore+1, testutil.ToFloat64(ToolActionsRefused.WithLabelValues(tool, domain.ActionCutWood)))

	repaired := domain.ToolActionPayload{
		Key: "3", Tool: "Saw", Kind: domain.ToolKindSaw, Action: domain.ActionRepair,
		DurabilityBefore: 0, DurabilityAfter: 100,
	}
	require.NoError(t, bus.Publish(ctx, event.NewToolEvent(event.ToolRepaired, repaired)))
	assert.Equal(t, repairsBefore+1, testutil.ToFloat64(ToolRepairs.WithLabelValues(tool)))
	assert.Equal(t, 100.0, testutil.ToFloat64(ToolDurability.WithLabelValues(tool)))
}

func TestCollector_IgnoresForeignPayload(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.ToolRepaired)))

	err := c.HandleEvent(context.Background(), event.Event{Type: event.ToolRepaired, Payload: "not a payload"})

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.ToolRepaired))))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/tools/{key}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	tests := []struct {
		name       string
		path       string
		wantRoute  string
		wantStatus int
	}{
		{name: "pattern, not raw path", path: "/tools/3", wantRoute: "/tools/{key}", wantStatus: http.StatusTeapot},
		{name: "implicit 200", path: "/ok", wantRoute: "/ok", wantStatus: http.StatusOK},
		{name: "no route", path: "/nope", wantRoute: RouteUnmatched, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := strconv.Itoa(tt.wantStatus)
			before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, tt.wantRoute, status))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, tt.wantRoute, status)))
			assert.Equal(t, 0.0, testutil.ToFloat64(HTTPRequestsInFlight))
		})
	}

	assert.Equal(t, 0.0, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/tools/3", "418")))
}
