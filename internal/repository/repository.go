package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"yatube/internal/models"
)

// Ошибки уровня хранилища. Нарушения ограничений follows приходят из самой
// базы (коды pq 23505/23514) и переводятся в эти значения.
var (
	ErrNotFound         = errors.New("не найдено")
	ErrAlreadyFollowing = errors.New("подписка уже существует")
	ErrSelfFollow       = errors.New("нельзя подписаться на самого себя")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	GetAll(ctx context.Context) ([]models.Group, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByGroupID(ctx context.Context, groupID string) ([]models.Post, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error)
	GetFollowFeed(ctx context.Context, userID string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	CountByAuthorID(ctx context.Context, authorID string) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	CountByPostID(ctx context.Context, postID string) (int, error)
}

type FollowRepository interface {
	Create(ctx context.Context, userID, authorID string) error
	Delete(ctx context.Context, userID, authorID string) error
	Exists(ctx context.Context, userID, authorID string) (bool, error)
}

type Repository struct {
	User    UserRepository
	Group   GroupRepository
	Post    PostRepository
	Comment CommentRepository
	Follow  FollowRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Group:   NewGroupRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Follow:  NewFollowRepository(db),
	}
}
