package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON encodes payload into a pooled buffer before writing the status,
// so encoding failures still produce a 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", op, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", op, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP statuses and
// messages a client can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFound
	case errors.Is(err, domain.ErrUnknownUpgrade):
		return http.StatusNotFound, ErrMsgUnknownUpgrade
	case errors.Is(err, domain.ErrPlayerExists):
		return http.StatusConflict, ErrMsgPlayerExists
	case errors.Is(err, domain.ErrNotPurchasable):
		return http.StatusConflict, ErrMsgNotPurchasable
	case errors.Is(err, domain.ErrLocked):
		return http.StatusForbidden, ErrMsgLocked
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmount
	case errors.Is(err, domain.ErrUnknownCurrency):
		return http.StatusBadRequest, ErrMsgUnknownCurrency
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputUser
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
