package bootstrap

import "time"

const (
	// DirPermission is used for the dead-letter and sqlite directories
	DirPermission = 0755

	// ServiceName tags every log record
	ServiceName = "prestige"
)

// Event system defaults, used when configuration leaves them zero
const (
	EventDefaultMaxRetries     = 5
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/deadletter.jsonl"
)

// Postgres pool settings
const (
	PoolMaxIdle = 30 * time.Minute
	PoolMaxLife = time.Hour
)

// Log messages
const (
	LogMsgLoggingInitialized         = "Logging initialized"
	LogMsgStarting                   = "Starting prestige"
	LogMsgConfigurationLoaded        = "Configuration loaded"
	LogMsgConfigWarning              = "Configuration warning"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgQuoteLoggerRegistered      = "Quote logger registered"
	LogMsgCelestialQuote             = "Celestial quote"
	LogMsgStoreOpened                = "Progress store opened"
	LogMsgContentLoaded              = "Content loaded"
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgStoreCloseFailed           = "Progress store close failed"
)

// Error messages
const (
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	ErrMsgFailedRegisterMetrics          = "failed to register metrics collector"
	ErrMsgUnknownStoreDriver             = "unknown store driver"
)
