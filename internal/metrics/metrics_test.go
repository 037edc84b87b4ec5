package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/prestige/internal/event"
)

func TestEventMetricsCollector_Purchases(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	purchased := UpgradePurchases.WithLabelValues("metrics-test", "adjuster", ResultPurchased)
	published := EventsPublished.WithLabelValues(string(event.UnlockPurchased))
	beforePurchased := testutil.ToFloat64(purchased)
	beforePublished := testutil.ToFloat64(published)

	require.NoError(t, bus.Publish(context.Background(),
		event.NewUnlockPurchasedEvent("p1", "metrics-test", "adjuster", "1e7")))

	assert.Equal(t, beforePurchased+1, testutil.ToFloat64(purchased))
	assert.Equal(t, beforePublished+1, testutil.ToFloat64(published))
}

func TestEventMetricsCollector_RunsGrantsResets(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	start := CelestialRuns.WithLabelValues("metrics-cel", ActionStart)
	stop := CelestialRuns.WithLabelValues("metrics-cel", ActionStop)
	grant := UnlockGrants.WithLabelValues("metrics-grp", "reality")
	reset := ProgressResets.WithLabelValues("dilation")
	s0, t0, g0, r0 := testutil.ToFloat64(start), testutil.ToFloat64(stop), testutil.ToFloat64(grant), testutil.ToFloat64(reset)

	require.NoError(t, bus.Publish(ctx, event.NewRunStartedEvent("p1", "metrics-cel")))
	require.NoError(t, bus.Publish(ctx, event.NewRunStoppedEvent("p1", "metrics-cel")))
	require.NoError(t, bus.Publish(ctx, event.NewUnlockGrantedEvent("p1", "metrics-grp", "reality")))
	require.NoError(t, bus.Publish(ctx, event.NewGalaxyThresholdResetEvent("p1")))
	require.NoError(t, bus.Publish(ctx, event.NewModifiersRecalculateEvent("p1")))

	assert.Equal(t, s0+1, testutil.ToFloat64(start))
	assert.Equal(t, t0+1, testutil.ToFloat64(stop))
	assert.Equal(t, g0+1, testutil.ToFloat64(grant))
	assert.Equal(t, r0+1, testutil.ToFloat64(reset))
}

func TestRecordRejectedPurchase(t *testing.T) {
	c := UpgradePurchases.WithLabelValues("metrics-rej", "run", ResultRejected)
	before := testutil.ToFloat64(c)
	RecordRejectedPurchase("metrics-rej", "run")
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/players/{playerID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{playerID}", "418")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, 0.0, testutil.ToFloat64(HTTPRequestsInFlight))
}
