package game

import (
	dto "casino_demo/internal/api/dto/game"
	"casino_demo/internal/converter"
	"casino_demo/internal/middleware"
	"casino_demo/internal/model"
	"casino_demo/internal/service"
	"casino_demo/pkg/req"
	"casino_demo/pkg/resp"
	"errors"
	"net/http"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Bet - одна ставка от пользователя текущей сессии
func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.PlaceBet(r.Context(), user.ID, payload.Bet)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, model.ErrInsufficientBalance):
			http.Error(w, "not enough balance", http.StatusConflict)
		case errors.Is(err, model.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			http.Error(w, "bet failed", http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBetResponse(*result))
}

// Data - баланс и операции пользователя текущей сессии
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	data, err := h.serv.Data(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "data lookup failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}
