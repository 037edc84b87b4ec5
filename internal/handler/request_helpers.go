package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/prestige/internal/live"
	"github.com/osse101/prestige/internal/logger"
)

// Path parameter names shared with the router.
const (
	ParamPlayerID = "playerID"
	ParamKey      = "key"
)

// ValidationErrorResponse lists per-field validation failures.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On error the response has already been written.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationError, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// decodeOptional decodes a JSON body into req, treating an empty body as
// the zero value.
func decodeOptional(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) bool {
	err := json.NewDecoder(r.Body).Decode(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
	respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
	return false
}

// decodeSnapshot reads an optional live snapshot body. It returns nil for an empty body.
func decodeSnapshot(r *http.Request, w http.ResponseWriter, actionName string) (*live.Snapshot, bool) {
	var snap *live.Snapshot
	if !decodeOptional(r, w, &snap, actionName) {
		return nil, false
	}
	return snap, true
}

// GetPathParam returns a required chi URL parameter, writing a 400 when it is empty.
func GetPathParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if value == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, name))
		return "", false
	}
	return value, true
}
