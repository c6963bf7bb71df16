package handlers

import (
	"errors"
	"net/http"
	"strings"

	"yatube/internal/service"
)

// PostForm — поля формы создания и редактирования поста.
type PostForm struct {
	Text    string  `json:"text" validate:"required"`
	GroupID *string `json:"group"`
}

// CommentForm — единственное поле формы комментария.
type CommentForm struct {
	Text string `json:"text" validate:"required"`
}

// parsePostForm читает форму поста из urlencoded- или multipart-тела.
// Картинка необязательна; её отсутствие ошибкой не является.
func (h *Handlers) parsePostForm(r *http.Request) (PostForm, *service.ImageUpload, error) {
	var form PostForm
	var image *service.ImageUpload

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
			return form, nil, err
		}

		file, header, err := r.FormFile("image")
		if err != nil && !errors.Is(err, http.ErrMissingFile) {
			return form, nil, err
		}
		if err == nil {
			image = &service.ImageUpload{
				FileName: header.Filename,
				File:     file,
				Size:     header.Size,
			}
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return form, nil, err
		}
	}

	form.Text = r.FormValue("text")
	if group := r.FormValue("group"); group != "" {
		form.GroupID = &group
	}

	return form, image, nil
}
