package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"yatube/internal/service"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Signup - регистрация нового пользователя.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteJSON(w, map[string]interface{}{"errors": fieldErrors(err)}, http.StatusOK)
		return
	}

	user, err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		WriteError(w, err.Error(), http.StatusConflict)
		return
	}

	WriteJSON(w, user, http.StatusCreated)
}

// Login. GET — точка входа, на которую уводят неаутентифицированные запросы
// (параметр next указывает, куда вернуться). POST проверяет пароль, выдаёт
// токены и ставит cookie access_token для браузерных переходов.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		WriteJSON(w, map[string]string{
			"title": "Войдите, чтобы продолжить",
			"next":  r.URL.Query().Get("next"),
		}, http.StatusOK)
		return
	}

	var req LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteJSON(w, map[string]interface{}{"errors": fieldErrors(err)}, http.StatusOK)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, "Неверное имя пользователя или пароль", http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		Expires:  time.Now().Add(h.Cfg.AccessTokenDuration),
		HttpOnly: true,
	})

	WriteJSON(w, TokenResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, http.StatusOK)
}

// Refresh - обмен refresh token на новую пару токенов.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует refresh token", http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		WriteError(w, "Недействительный refresh token", http.StatusUnauthorized)
		return
	}

	WriteJSON(w, TokenResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, http.StatusOK)
}
