package auth

import (
	dto "casino_demo/internal/api/dto/auth"
	"casino_demo/internal/converter"
	"casino_demo/internal/model"
	"casino_demo/internal/service"
	"casino_demo/pkg/req"
	"casino_demo/pkg/resp"
	"errors"
	"log"
	"net/http"
)

type HandlerDeps struct {
	Serv service.AccountService
}

type Handler struct {
	serv service.AccountService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register создаёт пользователя и открывает сессию
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.serv.Register(r.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		log.Println("Register error:", err)
		switch {
		case errors.Is(err, model.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, model.ErrDuplicateUsername):
			http.Error(w, "username already exists", http.StatusConflict)
		default:
			http.Error(w, "register failed", http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToUserResponse(user))
}

// Login открывает сессию по имени и паролю
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.serv.Login(r.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		log.Println("Login error:", err)
		if errors.Is(err, model.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponse(user))
}

// Logout закрывает сессию
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.serv.Logout(r.Context())
	if err != nil {
		log.Println("Logout error:", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me возвращает пользователя текущей сессии
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.serv.Current(r.Context())
	if err != nil {
		http.Error(w, "session lookup failed", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "no active session", http.StatusUnauthorized)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponse(user))
}
