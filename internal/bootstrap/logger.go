package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/prestige/internal/config"
	"github.com/osse101/prestige/internal/logger"
)

// SetupLogger installs the process logger described by cfg, writes the
// startup banner and surfaces configuration warnings. Source locations are
// added in dev only.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	addSource := cfg.Environment == "dev"
	l := logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"store", cfg.StoreDriver)
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"sqlite_path", cfg.SQLitePath,
		"content_path", cfg.ContentPath)
	for _, w := range cfg.Warnings() {
		l.Warn(LogMsgConfigWarning, "warning", w)
	}
	return l
}
