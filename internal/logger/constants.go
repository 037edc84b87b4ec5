package logger

// Accepted level and format strings. Matching is case-insensitive.
const (
	levelDebug   = "debug"
	levelWarn    = "warn"
	levelWarning = "warning"
	levelError   = "error"

	formatJSON = "json"
)

// Attribute keys attached to every record.
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
