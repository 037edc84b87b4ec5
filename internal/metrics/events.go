package metrics

import (
	"context"

	"github.com/osse101/prestige/internal/event"
	"github.com/osse101/prestige/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type the engine publishes
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.UnlockPurchased,
		event.UnlockGranted,
		event.RebuyablePurchased,
		event.StageEntered,
		event.RunStarted,
		event.RunStopped,
		event.Quote,
		event.ModifiersRecalculate,
		event.GalaxyThresholdReset,
		event.ProgressReset,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.UpgradePayloadV1:
		switch evt.Type {
		case event.UnlockPurchased, event.RebuyablePurchased:
			UpgradePurchases.WithLabelValues(p.Group, p.Key, ResultPurchased).Inc()
		case event.UnlockGranted:
			UnlockGrants.WithLabelValues(p.Group, p.Key).Inc()
		}

	case event.RunPayloadV1:
		action := ActionStart
		if evt.Type == event.RunStopped {
			action = ActionStop
		}
		CelestialRuns.WithLabelValues(p.Celestial, action).Inc()

	case event.ResetPayloadV1:
		ProgressResets.WithLabelValues(p.Group).Inc()

	case event.StagePayloadV1, event.QuotePayloadV1, nil:

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordRejectedPurchase counts a purchase attempt that changed nothing.
func RecordRejectedPurchase(group, key string) {
	UpgradePurchases.WithLabelValues(group, key, ResultRejected).Inc()
}
