package handler

import (
	"net/http"

	"github.com/osse101/prestige/internal/session"
)

// GameEventRequest forwards a game-loop event such as "big_crunch_before".
type GameEventRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

// GameEventResponse reports whether the event produced a reaction.
type GameEventResponse struct {
	Reacted bool `json:"reacted"`
}

// EffarigHandlers serves the Effarig unlock and run routes.
type EffarigHandlers struct {
	service session.Service
}

func NewEffarigHandlers(service session.Service) *EffarigHandlers {
	return &EffarigHandlers{service: service}
}

// HandlePurchaseUnlock buys an Effarig unlock with relic shards
// @Summary Purchase Effarig unlock
// @Description Returns purchased=false when the unlock is owned or unaffordable.
// @Tags effarig
// @Produce json
// @Param playerID path string true "Player id"
// @Param key path string true "Unlock key"
// @Success 200 {object} session.PurchaseResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/{playerID}/effarig/unlocks/{key}/purchase [post]
func (h *EffarigHandlers) HandlePurchaseUnlock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		key, ok := GetPathParam(r, w, ParamKey)
		if !ok {
			return
		}
		res, err := h.service.PurchaseEffarigUnlock(r.Context(), playerID, key)
		if err != nil {
			respondServiceError(w, r, "purchase effarig unlock", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGrantUnlock grants an Effarig unlock without charging
// @Summary Grant Effarig unlock
// @Tags effarig
// @Produce json
// @Param playerID path string true "Player id"
// @Param key path string true "Unlock key"
// @Success 200 {object} session.PurchaseResult
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/effarig/unlocks/{key}/grant [post]
func (h *EffarigHandlers) HandleGrantUnlock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		key, ok := GetPathParam(r, w, ParamKey)
		if !ok {
			return
		}
		res, err := h.service.GrantEffarigUnlock(r.Context(), playerID, key)
		if err != nil {
			respondServiceError(w, r, "grant effarig unlock", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleStartRun enters Effarig's Reality
// @Summary Start Effarig run
// @Tags effarig
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} session.RunResult
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/effarig/run/start [post]
func (h *EffarigHandlers) HandleStartRun() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		res, err := h.service.StartEffarigRun(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "start effarig run", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleStopRun leaves Effarig's Reality
// @Summary Stop Effarig run
// @Tags effarig
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} session.RunResult
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/effarig/run/stop [post]
func (h *EffarigHandlers) HandleStopRun() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		res, err := h.service.StopEffarigRun(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "stop effarig run", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGameEvent forwards a game-loop event to Effarig
// @Summary Forward game event
// @Tags effarig
// @Accept json
// @Produce json
// @Param playerID path string true "Player id"
// @Param request body GameEventRequest true "Event name"
// @Success 200 {object} GameEventResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/effarig/events [post]
func (h *EffarigHandlers) HandleGameEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		var req GameEventRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Game event"); err != nil {
			return
		}
		reacted, err := h.service.HandleGameEvent(r.Context(), playerID, req.Name)
		if err != nil {
			respondServiceError(w, r, "game event", err)
			return
		}
		respondJSON(w, http.StatusOK, GameEventResponse{Reacted: reacted})
	}
}
