package handlers

import (
	"github.com/go-playground/validator/v10"

	"yatube/internal/config"
	"yatube/internal/database"
	"yatube/internal/repository"
	"yatube/internal/service"
)

type Handlers struct {
	FeedService    service.FeedService
	PostService    service.PostService
	CommentService service.CommentService
	FollowService  service.FollowService
	AuthService    service.AuthService
	GroupRepo      repository.GroupRepository
	DB             *database.DB
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		FeedService:    service.Feed,
		PostService:    service.Post,
		CommentService: service.Comment,
		FollowService:  service.Follow,
		AuthService:    service.Auth,
		GroupRepo:      repo.Group,
		DB:             db,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
