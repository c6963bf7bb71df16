package service

import (
	"errors"

	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

// ErrNotAuthor возвращается при попытке редактировать чужой пост.
var ErrNotAuthor = errors.New("пользователь не является автором поста")

type Service struct {
	Feed    FeedService
	Post    PostService
	Comment CommentService
	Follow  FollowService
	Auth    AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, feedCache cache.Cache) *Service {
	return &Service{
		Feed:    NewFeedService(rep.Post, rep.Group, rep.User, rep.Follow, feedCache, cfg),
		Post:    NewPostService(rep.Post, rep.Comment, storage),
		Comment: NewCommentService(rep.Post, rep.Comment),
		Follow:  NewFollowService(rep.Follow, rep.User),
		Auth:    NewAuthService(rep.User, cfg),
	}
}
