package service

import (
	"context"
	"fmt"
	"io"

	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

// ImageUpload — необязательное вложение формы поста.
type ImageUpload struct {
	FileName string
	File     io.Reader
	Size     int64
}

type CreatePostRequest struct {
	AuthorID string
	Text     string
	GroupID  *string
	Image    *ImageUpload
}

type UpdatePostRequest struct {
	PostID   string
	EditorID string
	Text     string
	GroupID  *string
	Image    *ImageUpload
}

type PostService interface {
	GetPost(ctx context.Context, postID string) (*models.Post, []models.Comment, int, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error)
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	storage     storage.Storage
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		storage:     storage,
	}
}

// GetPost отдаёт пост, его комментарии (новые сверху) и число постов автора.
func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, []models.Comment, int, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, nil, 0, err
	}

	comments, err := p.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, nil, 0, err
	}

	authorPostCount, err := p.postRepo.CountByAuthorID(ctx, post.AuthorID)
	if err != nil {
		return nil, nil, 0, err
	}

	return post, comments, authorPostCount, nil
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Text:     req.Text,
		AuthorID: req.AuthorID,
		GroupID:  req.GroupID,
	}

	if req.Image != nil {
		imageURL, err := p.uploadImage(ctx, post.PostID, req.Image)
		if err != nil {
			return nil, err
		}
		post.ImageURL = &imageURL
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost меняет пост на месте. Чужой пост не трогаем: ErrNotAuthor,
// обработчик молча уводит на страницу поста.
func (p *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != req.EditorID {
		return nil, fmt.Errorf("пост %s: %w", req.PostID, ErrNotAuthor)
	}

	post.Text = req.Text
	post.GroupID = req.GroupID

	if req.Image != nil {
		imageURL, err := p.uploadImage(ctx, post.PostID, req.Image)
		if err != nil {
			return nil, err
		}
		post.ImageURL = &imageURL
	}

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) uploadImage(ctx context.Context, postID string, image *ImageUpload) (string, error) {
	imageURL, err := p.storage.UploadImage(ctx, postID, image.FileName, image.File, image.Size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения: %w", err)
	}
	return imageURL, nil
}
