package service

import (
	"context"

	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/models"
	"yatube/internal/repository"
)

type FeedService interface {
	Index(ctx context.Context) ([]models.Post, error)
	GroupFeed(ctx context.Context, slug string) (*models.Group, []models.Post, error)
	ProfileFeed(ctx context.Context, username, currentUserID string) (*models.User, []models.Post, bool, error)
	FollowFeed(ctx context.Context, userID string) ([]models.Post, error)
	ClearIndexCache()
}

type feedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	cache      cache.Cache
	cfg        *config.Config
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	feedCache cache.Cache,
	cfg *config.Config,
) FeedService {
	return &feedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		cache:      feedCache,
		cfg:        cfg,
	}
}

// Index отдаёт главную ленту целиком, страницы нарезает обработчик.
// Результат живёт в кеше IndexCacheTTL от момента записи; создание и
// удаление постов слот не сбрасывают, свежесть приносится в жертву
// повторным запросам.
func (s *feedService) Index(ctx context.Context) ([]models.Post, error) {
	if cached, ok := s.cache.Get(cache.IndexKey); ok {
		if posts, ok := cached.([]models.Post); ok {
			return posts, nil
		}
	}

	posts, err := s.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cache.IndexKey, posts, s.cfg.IndexCacheTTL)

	return posts, nil
}

func (s *feedService) GroupFeed(ctx context.Context, slug string) (*models.Group, []models.Post, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.postRepo.GetByGroupID(ctx, group.GroupID)
	if err != nil {
		return nil, nil, err
	}

	return group, posts, nil
}

// ProfileFeed возвращает автора, его посты и флаг "текущий пользователь
// подписан". Для анонимного запроса currentUserID пуст и флаг всегда false.
func (s *feedService) ProfileFeed(ctx context.Context, username, currentUserID string) (*models.User, []models.Post, bool, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, false, err
	}

	posts, err := s.postRepo.GetByAuthorID(ctx, author.UserID)
	if err != nil {
		return nil, nil, false, err
	}

	following := false
	if currentUserID != "" && currentUserID != author.UserID {
		following, err = s.followRepo.Exists(ctx, currentUserID, author.UserID)
		if err != nil {
			return nil, nil, false, err
		}
	}

	return author, posts, following, nil
}

func (s *feedService) FollowFeed(ctx context.Context, userID string) ([]models.Post, error) {
	return s.postRepo.GetFollowFeed(ctx, userID)
}

// ClearIndexCache — явный сброс слота главной ленты.
func (s *feedService) ClearIndexCache() {
	s.cache.Clear()
}
