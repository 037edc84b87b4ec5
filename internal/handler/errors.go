package handler

// Client-facing messages. Internal error details never reach the response body.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnavailable        = "Server is temporarily unavailable. Please try again later."

	ErrMsgPlayerNotFound   = "Player not found"
	ErrMsgPlayerExists     = "Player already exists"
	ErrMsgUnknownUpgrade   = "Upgrade not found"
	ErrMsgNotPurchasable   = "That unlock is granted by progress and cannot be bought"
	ErrMsgLocked           = "That feature is locked. Buy its unlock first."
	ErrMsgInvalidAmount    = "Amount must be a positive number"
	ErrMsgUnknownCurrency  = "Unknown currency"
	ErrMsgInvalidInputUser = "Invalid request. Please check your inputs."
)

// Success messages
const (
	MsgPlayerDeleted = "Player deleted"
)

// Log messages
const (
	LogMsgServiceError    = "Service error"
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgValidationError = "Request validation failed"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)
