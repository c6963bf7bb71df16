package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"yatube/internal/models"
	"yatube/internal/pagination"
	"yatube/internal/repository"
)

type IndexResponse struct {
	Title string                        `json:"title"`
	Page  pagination.Page[models.Post] `json:"page"`
}

type GroupResponse struct {
	Group models.Group                 `json:"group"`
	Page  pagination.Page[models.Post] `json:"page"`
}

type ProfileResponse struct {
	Author    string                       `json:"author"`
	PostCount int                          `json:"postCount"`
	Following bool                         `json:"following"`
	Page      pagination.Page[models.Post] `json:"page"`
}

// Index - главная лента, постранично. Список берётся из кеш-слота, поэтому
// свежесозданный пост может появиться здесь с опозданием до истечения TTL.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.FeedService.Index(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := pagination.ParsePage(r.URL.Query().Get("page"))

	WriteJSON(w, IndexResponse{
		Title: "Последние обновления на сайте",
		Page:  pagination.Paginate(posts, page, h.Cfg.PageSize),
	}, http.StatusOK)
}

// GroupPosts - лента группы по slug, 404 для неизвестной группы.
func (h *Handlers) GroupPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	group, posts, err := h.FeedService.GroupFeed(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Группа не найдена", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := pagination.ParsePage(r.URL.Query().Get("page"))

	WriteJSON(w, GroupResponse{
		Group: *group,
		Page:  pagination.Paginate(posts, page, h.Cfg.PageSize),
	}, http.StatusOK)
}

// Profile - лента автора плюс флаг подписки текущего пользователя.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	currentUserID, _ := r.Context().Value("userID").(string)

	author, posts, following, err := h.FeedService.ProfileFeed(r.Context(), username, currentUserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := pagination.ParsePage(r.URL.Query().Get("page"))

	WriteJSON(w, ProfileResponse{
		Author:    author.Username,
		PostCount: len(posts),
		Following: following,
		Page:      pagination.Paginate(posts, page, h.Cfg.PageSize),
	}, http.StatusOK)
}

// FollowIndex - лента авторов, на которых подписан текущий пользователь.
func (h *Handlers) FollowIndex(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value("userID").(string)

	posts, err := h.FeedService.FollowFeed(r.Context(), userID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := pagination.ParsePage(r.URL.Query().Get("page"))

	WriteJSON(w, IndexResponse{
		Title: "Подписки на любимых авторов",
		Page:  pagination.Paginate(posts, page, h.Cfg.PageSize),
	}, http.StatusOK)
}
