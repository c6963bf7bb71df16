package service

import (
	"context"
	"errors"

	"yatube/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, userID, authorUsername string) error
	Unfollow(ctx context.Context, userID, authorUsername string) error
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow создаёт подписку userID на автора. Повторная подписка и попытка
// подписаться на себя — no-op: ограничения базы отклоняют вставку, а здесь
// отказ гасится. Ошибкой наружу уходит только неизвестный автор.
func (s *followService) Follow(ctx context.Context, userID, authorUsername string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}

	if author.UserID == userID {
		return nil
	}

	err = s.followRepo.Create(ctx, userID, author.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyFollowing) || errors.Is(err, repository.ErrSelfFollow) {
			return nil
		}
		return err
	}

	return nil
}

// Unfollow снимает подписку; отсутствие подписки ошибкой не является.
func (s *followService) Unfollow(ctx context.Context, userID, authorUsername string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}

	return s.followRepo.Delete(ctx, userID, author.UserID)
}
