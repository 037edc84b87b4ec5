package logger

import (
	"log/slog"
	"strings"
)

// Config holds the settings the process logger is built from.
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json, text
	ServiceName string
	Version     string
	Environment string // dev, staging, production
	AddSource   bool
}

// NewConfig creates a config from explicit values.
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// LogLevel converts the string level to slog.Level. Unknown levels read as info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case levelDebug:
		return slog.LevelDebug
	case levelWarn, levelWarning:
		return slog.LevelWarn
	case levelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON reports whether the format is JSON.
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == formatJSON
}

// BaseAttributes returns the attributes added to every record.
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
