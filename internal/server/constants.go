package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Log messages
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgRepeatedAuthFail = "Repeated authentication failures"
	LogMsgRateLimited      = "Client rate limited"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

const (
	headerValueNoSniff      = "nosniff"
	headerValueDeny         = "DENY"
	headerValueNoReferrer   = "no-referrer"
	redactedValue           = "[REDACTED]"
	maxRequestBodyBytes     = 1 << 20
	readHeaderTimeout       = 5 * time.Second
	defaultRateWindow       = 5 * time.Minute
	defaultRequestsPerIP    = 1000
	defaultAuthFailureAlert = 5
)

// PublicPaths bypass API-key authentication.
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// quietPaths are served without request logging.
var quietPaths = []string{"/healthz", "/readyz", "/metrics"}
