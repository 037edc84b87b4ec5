package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/prestige/internal/config"
	"github.com/osse101/prestige/internal/event"
)

// InitializeEventSystem creates the in-process bus and wraps it in a
// resilient publisher that retries failed handlers and dead-letters the rest.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}
	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}
	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)
	return bus, publisher, nil
}
