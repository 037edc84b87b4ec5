package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/prestige/internal/event"
	"github.com/osse101/prestige/internal/logger"
	"github.com/osse101/prestige/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector and the quote logger.
func RegisterEventHandlers(bus event.Bus) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	bus.Subscribe(event.Quote, logQuote)
	slog.Info(LogMsgQuoteLoggerRegistered)
	return nil
}

// logQuote records celestial dialogue; there is no presentation layer to show it.
func logQuote(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.QuotePayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgCelestialQuote,
		"player_id", payload.PlayerID,
		"celestial", payload.Celestial,
		"quote", payload.Quote)
	return nil
}
