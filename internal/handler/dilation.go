package handler

import (
	"net/http"

	"github.com/osse101/prestige/internal/session"
)

// DilationHandlers serves the dilation upgrade routes.
type DilationHandlers struct {
	service session.Service
}

func NewDilationHandlers(service session.Service) *DilationHandlers {
	return &DilationHandlers{service: service}
}

// HandlePurchase buys one level of a dilation upgrade
// @Summary Purchase dilation upgrade
// @Description The optional body is a live snapshot carrying the doomed flag and perks.
// @Tags dilation
// @Accept json
// @Produce json
// @Param playerID path string true "Player id"
// @Param key path string true "Upgrade key"
// @Param request body live.Snapshot false "Live game state"
// @Success 200 {object} session.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/dilation/upgrades/{key}/purchase [post]
func (h *DilationHandlers) HandlePurchase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		key, ok := GetPathParam(r, w, ParamKey)
		if !ok {
			return
		}
		snap, ok := decodeSnapshot(r, w, "Dilation purchase")
		if !ok {
			return
		}
		res, err := h.service.PurchaseDilationUpgrade(r.Context(), playerID, key, snap)
		if err != nil {
			respondServiceError(w, r, "purchase dilation upgrade", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleReset zeroes the dilation rebuyables and resettable upgrades
// @Summary Reset dilation
// @Tags dilation
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} session.State
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/dilation/reset [post]
func (h *DilationHandlers) HandleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		state, err := h.service.ResetDilation(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "reset dilation", err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}
