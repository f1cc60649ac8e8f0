package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"postsAPI/internal/repository"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Auth  bool   `json:"auth"`
	Token string `json:"token"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateUserRequest{
		Username: req.Username,
		Password: req.Password,
	}

	// registering a user in the service
	_, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if strings.Contains(err.Error(), "уже существует") {
			WriteError(w, "Имя пользователя занято", http.StatusBadRequest)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, Envelope{
		Status:  "success",
		Message: "Пользователь создан",
	}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	// несуществующий пользователь и неверный пароль дают разные статусы
	_, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Пользователь не найден", http.StatusBadRequest)
		} else if strings.Contains(err.Error(), "неверный пароль") {
			WriteError(w, "Неверный пароль", http.StatusUnauthorized)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, LoginResponse{
		Auth:  true,
		Token: token,
	}, http.StatusOK)
}

// Username отдает имя пользователя из claims, положенных AuthMiddleware в контекст
func (h *Handlers) Username(w http.ResponseWriter, r *http.Request) {
	username, ok := r.Context().Value("username").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, map[string]string{"username": username}, http.StatusOK)
}
