package handlers

import (
	"net/http"
)

type AboutPage struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (h *Handlers) AboutAuthor(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, AboutPage{
		Title: "Об авторе проекта",
		Text:  "Учебный проект: лента постов с группами, комментариями и подписками.",
	}, http.StatusOK)
}

func (h *Handlers) AboutTech(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, AboutPage{
		Title: "Технологии",
		Text:  "Go, PostgreSQL, MinIO.",
	}, http.StatusOK)
}

type HealthResponse struct {
	Status     string `json:"status"`
	TableCount int    `json:"tableCount"`
}

// Health - проверка живости: пинг базы и число таблиц схемы, чтобы отличить
// пустую базу от мигрированной.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	count, err := h.DB.TableCount()
	if err != nil {
		WriteError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, HealthResponse{Status: "ok", TableCount: count}, http.StatusOK)
}
