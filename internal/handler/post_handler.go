package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/service"
)

type PostDetailResponse struct {
	Post            models.Post      `json:"post"`
	Comments        []models.Comment `json:"comments"`
	AuthorPostCount int              `json:"authorPostCount"`
	Form            CommentForm      `json:"form"`
}

type PostFormResponse struct {
	Form   PostForm          `json:"form"`
	Groups []models.Group    `json:"groups"`
	Errors map[string]string `json:"errors,omitempty"`
	IsEdit bool              `json:"isEdit,omitempty"`
}

// PostDetail - страница поста: сам пост, комментарии и пустая форма
// комментария.
func (h *Handlers) PostDetail(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, comments, authorPostCount, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	WriteJSON(w, PostDetailResponse{
		Post:            *post,
		Comments:        comments,
		AuthorPostCount: authorPostCount,
		Form:            CommentForm{},
	}, http.StatusOK)
}

// PostCreate - форма создания поста. GET отдаёт пустую форму со списком
// групп, POST создаёт пост от имени текущего пользователя и уводит в его
// профиль. Невалидная форма возвращается с ошибками и статусом 200.
func (h *Handlers) PostCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.writePostForm(w, r, PostForm{}, nil, false)
		return
	}

	form, image, err := h.parsePostForm(r)
	if err != nil {
		WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(form); err != nil {
		h.writePostForm(w, r, form, fieldErrors(err), false)
		return
	}

	userID, _ := r.Context().Value("userID").(string)
	username, _ := r.Context().Value("username").(string)

	_, err = h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		AuthorID: userID,
		Text:     form.Text,
		GroupID:  form.GroupID,
		Image:    image,
	})
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile/"+username+"/", http.StatusFound)
}

// PostEdit - редактирование поста. Не-автору никакой ошибки не показываем,
// просто уводим на страницу поста без изменений.
func (h *Handlers) PostEdit(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	userID, _ := r.Context().Value("userID").(string)

	if r.Method == http.MethodGet {
		post, _, _, err := h.PostService.GetPost(r.Context(), postID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				WriteError(w, "Пост не найден", http.StatusNotFound)
				return
			}
			WriteError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if post.AuthorID != userID {
			http.Redirect(w, r, "/posts/"+postID+"/", http.StatusFound)
			return
		}

		h.writePostForm(w, r, PostForm{Text: post.Text, GroupID: post.GroupID}, nil, true)
		return
	}

	form, image, err := h.parsePostForm(r)
	if err != nil {
		WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(form); err != nil {
		h.writePostForm(w, r, form, fieldErrors(err), true)
		return
	}

	_, err = h.PostService.UpdatePost(r.Context(), service.UpdatePostRequest{
		PostID:   postID,
		EditorID: userID,
		Text:     form.Text,
		GroupID:  form.GroupID,
		Image:    image,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotAuthor) {
			http.Redirect(w, r, "/posts/"+postID+"/", http.StatusFound)
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/posts/"+postID+"/", http.StatusFound)
}

// AddComment - добавление комментария. Невалидная форма молча уводит обратно
// на страницу поста, ошибки полей не показываются.
func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	userID, _ := r.Context().Value("userID").(string)

	detailURL := "/posts/" + postID + "/"

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, detailURL, http.StatusFound)
		return
	}

	form := CommentForm{Text: r.FormValue("text")}

	if err := h.Validate.Struct(form); err != nil {
		http.Redirect(w, r, detailURL, http.StatusFound)
		return
	}

	_, err := h.CommentService.AddComment(r.Context(), postID, userID, form.Text)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, detailURL, http.StatusFound)
}

func (h *Handlers) writePostForm(w http.ResponseWriter, r *http.Request, form PostForm, errs map[string]string, isEdit bool) {
	groups, err := h.GroupRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if groups == nil {
		groups = []models.Group{}
	}

	WriteJSON(w, PostFormResponse{
		Form:   form,
		Groups: groups,
		Errors: errs,
		IsEdit: isEdit,
	}, http.StatusOK)
}
