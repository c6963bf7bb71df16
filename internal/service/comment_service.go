package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, postID, authorID, text string) (*models.Comment, error)
}

type commentService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

func NewCommentService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) CommentService {
	return &commentService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// AddComment привязывает комментарий к существующему посту. Комментарий после
// создания неизменяем.
func (c *commentService) AddComment(ctx context.Context, postID, authorID, text string) (*models.Comment, error) {
	post, err := c.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   post.PostID,
		AuthorID: authorID,
		Text:     text,
	}

	err = c.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}
