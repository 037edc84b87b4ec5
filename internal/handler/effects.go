package handler

import "net/http"

// HandleEffects evaluates every effect against the posted live snapshot
// @Summary Evaluate effects
// @Tags effects
// @Accept json
// @Produce json
// @Param playerID path string true "Player id"
// @Param request body live.Snapshot false "Live game state"
// @Success 200 {object} session.Effects
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/effects [post]
func (h *PlayerHandlers) HandleEffects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		snap, ok := decodeSnapshot(r, w, "Effects")
		if !ok {
			return
		}
		eff, err := h.service.Effects(r.Context(), playerID, snap)
		if err != nil {
			respondServiceError(w, r, "effects", err)
			return
		}
		respondJSON(w, http.StatusOK, eff)
	}
}
