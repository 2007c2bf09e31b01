package admin

import (
	dto "casino_demo/internal/api/dto/admin"
	"casino_demo/internal/converter"
	"casino_demo/internal/model"
	"casino_demo/internal/service"
	"casino_demo/pkg/req"
	"casino_demo/pkg/resp"
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.AdminService
}

type Handler struct {
	serv service.AdminService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// ListUsers - все аккаунты
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.serv.ListUsers(r.Context())
	if err != nil {
		http.Error(w, "users lookup failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponses(users))
}

// CreateUser - заведение аккаунта администратором
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateUserRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.serv.CreateUser(r.Context(), payload.Username, payload.Password)
	if err != nil {
		log.Println("CreateUser error:", err)
		switch {
		case errors.Is(err, model.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, model.ErrDuplicateUsername):
			http.Error(w, "username already exists", http.StatusConflict)
		default:
			http.Error(w, "create failed", http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToUserResponse(user))
}

// DeleteUser - удаление аккаунта, журнал операций сохраняется
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	err := h.serv.DeleteUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "delete failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ResetPassword - смена пароля аккаунта
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	payload, err := req.Decode[dto.ResetPasswordRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err = h.serv.ResetPassword(r.Context(), userID, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, model.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			http.Error(w, "update failed", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddBalance - пополнение счёта
func (h *Handler) AddBalance(w http.ResponseWriter, r *http.Request) {
	h.adjustBalance(w, r, h.serv.AddBalance)
}

// SubtractBalance - списание со счёта
func (h *Handler) SubtractBalance(w http.ResponseWriter, r *http.Request) {
	h.adjustBalance(w, r, h.serv.SubtractBalance)
}

func (h *Handler) adjustBalance(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, userID string, amount int) (*model.Transaction, error),
) {
	userID := chi.URLParam(r, "id")

	payload, err := req.Decode[dto.BalanceRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	tx, err := op(r.Context(), userID, payload.Amount)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, model.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			http.Error(w, "balance update failed", http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionResponse(*tx))
}

// ListTransactions - полный журнал операций
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.serv.ListTransactions(r.Context())
	if err != nil {
		http.Error(w, "transactions lookup failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionResponses(txs))
}

// Stats - сводка для панели администратора
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		http.Error(w, "stats failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}
