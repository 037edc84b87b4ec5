package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/prestige/internal/event"
	"github.com/osse101/prestige/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
	Store              *Store
}

// GracefulShutdown stops accepting requests, flushes queued event retries,
// then closes the store. Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Store != nil && c.Store.Close != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
