package handler

import (
	"net/http"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/logger"
	"github.com/osse101/prestige/internal/session"
)

// CreatePlayerRequest creates a player. An empty id lets the server pick one.
type CreatePlayerRequest struct {
	PlayerID string `json:"player_id" validate:"max=64,excludesall=/?#"`
}

// CreditRequest adds currency to a player's wallet.
type CreditRequest struct {
	Currency string `json:"currency" validate:"required,currency"`
	Amount   string `json:"amount" validate:"required,amount"`
}

// PlayerHandlers serves player lifecycle and wallet routes.
type PlayerHandlers struct {
	service session.Service
}

func NewPlayerHandlers(service session.Service) *PlayerHandlers {
	return &PlayerHandlers{service: service}
}

// HandleCreatePlayer creates a player with empty progress
// @Summary Create player
// @Tags players
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest false "Player id"
// @Success 201 {object} session.State
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players [post]
func (h *PlayerHandlers) HandleCreatePlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePlayerRequest
		if !decodeOptional(r, w, &req, "Create player") {
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}

		state, err := h.service.CreatePlayer(r.Context(), req.PlayerID)
		if err != nil {
			respondServiceError(w, r, "create player", err)
			return
		}
		respondJSON(w, http.StatusCreated, state)
	}
}

// HandleGetPlayer returns a player's progression
// @Summary Get player state
// @Tags players
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} session.State
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID} [get]
func (h *PlayerHandlers) HandleGetPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		state, err := h.service.GetState(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "get player", err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// HandleDeletePlayer removes a player's progress
// @Summary Delete player
// @Tags players
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID} [delete]
func (h *PlayerHandlers) HandleDeletePlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		if err := h.service.DeletePlayer(r.Context(), playerID); err != nil {
			respondServiceError(w, r, "delete player", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerDeleted})
	}
}

// HandleCredit adds currency to the wallet
// @Summary Credit currency
// @Description Amounts are decimal literals and may exceed float64 range, e.g. "1e400".
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player id"
// @Param request body CreditRequest true "Currency and amount"
// @Success 200 {object} session.State
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/credit [post]
func (h *PlayerHandlers) HandleCredit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetPathParam(r, w, ParamPlayerID)
		if !ok {
			return
		}
		var req CreditRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Credit"); err != nil {
			return
		}
		amount, err := bignum.Parse(req.Amount)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidAmount)
			return
		}

		state, err := h.service.Credit(r.Context(), playerID, domain.Currency(req.Currency), amount)
		if err != nil {
			respondServiceError(w, r, "credit", err)
			return
		}
		logger.FromContext(r.Context()).Info("Currency credited",
			"player_id", playerID,
			"currency", req.Currency,
			"amount", req.Amount)
		respondJSON(w, http.StatusOK, state)
	}
}
