package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"yatube/internal/models"
	"yatube/internal/repository"
)

func TestFollowService_Follow(t *testing.T) {
	ctx := context.Background()
	author := &models.User{UserID: uuid.New().String(), Username: "post_author"}
	readerID := uuid.New().String()

	t.Run("Успешная подписка", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowService(followRepo, userRepo)

		userRepo.On("GetUserByUsername", ctx, "post_author").Return(author, nil)
		followRepo.On("Create", ctx, readerID, author.UserID).Return(nil)

		err := svc.Follow(ctx, readerID, "post_author")

		require.NoError(t, err)
		followRepo.AssertExpectations(t)
	})

	t.Run("Подписка на себя — no-op без обращения к базе", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowService(followRepo, userRepo)

		userRepo.On("GetUserByUsername", ctx, "post_author").Return(author, nil)

		err := svc.Follow(ctx, author.UserID, "post_author")

		require.NoError(t, err)
		followRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Повторная подписка гасится", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowService(followRepo, userRepo)

		userRepo.On("GetUserByUsername", ctx, "post_author").Return(author, nil)
		followRepo.On("Create", ctx, readerID, author.UserID).Return(repository.ErrAlreadyFollowing)

		err := svc.Follow(ctx, readerID, "post_author")

		assert.NoError(t, err)
	})

	t.Run("Неизвестный автор", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowService(followRepo, userRepo)

		userRepo.On("GetUserByUsername", ctx, "ghost").Return(nil, repository.ErrNotFound)

		err := svc.Follow(ctx, readerID, "ghost")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		followRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFollowService_Unfollow(t *testing.T) {
	ctx := context.Background()
	author := &models.User{UserID: uuid.New().String(), Username: "post_author"}
	readerID := uuid.New().String()

	t.Run("Успешная отписка", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowService(followRepo, userRepo)

		userRepo.On("GetUserByUsername", ctx, "post_author").Return(author, nil)
		followRepo.On("Delete", ctx, readerID, author.UserID).Return(nil)

		err := svc.Unfollow(ctx, readerID, "post_author")

		require.NoError(t, err)
		followRepo.AssertExpectations(t)
	})

	t.Run("Отписка без подписки — no-op", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		svc := NewFollowService(followRepo, userRepo)

		userRepo.On("GetUserByUsername", ctx, "post_author").Return(author, nil)
		followRepo.On("Delete", ctx, readerID, author.UserID).Return(nil)

		err := svc.Unfollow(ctx, readerID, "post_author")

		assert.NoError(t, err)
	})
}
