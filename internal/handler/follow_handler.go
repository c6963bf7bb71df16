package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"yatube/internal/repository"
)

// ProfileFollow - подписка на автора. Повторная подписка и подписка на себя
// проглатываются как no-op, в обоих случаях редирект в профиль автора.
func (h *Handlers) ProfileFollow(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	userID, _ := r.Context().Value("userID").(string)

	err := h.FollowService.Follow(r.Context(), userID, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile/"+username+"/", http.StatusFound)
}

// ProfileUnfollow - отписка. Отсутствие подписки — тоже no-op.
func (h *Handlers) ProfileUnfollow(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	userID, _ := r.Context().Value("userID").(string)

	err := h.FollowService.Unfollow(r.Context(), userID, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile/"+username+"/", http.StatusFound)
}
