package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/prestige/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessChecker reports whether the service can take traffic.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

const readinessTimeout = 2 * time.Second

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz checks that the progress store is reachable
// @Summary Readiness check
// @Description Returns OK if the progress store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := checker.Ready(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "progress store unreachable",
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
