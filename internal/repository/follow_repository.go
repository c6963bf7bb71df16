package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"yatube/internal/models"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create вставляет ребро подписки. Уникальность пары и запрет самоподписки
// проверяет сама база: при гонке двух одинаковых запросов выживет ровно одна
// строка, проигравшему вернётся ErrAlreadyFollowing.
func (r *followRepository) Create(ctx context.Context, userID, authorID string) error {
	follow := models.Follow{
		FollowID: uuid.New().String(),
		UserID:   userID,
		AuthorID: authorID,
	}

	query := `
		INSERT INTO follows (follow_id, user_id, author_id)
		VALUES (:follow_id, :user_id, :author_id)
	`

	_, err := r.db.NamedExecContext(ctx, query, follow)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505": // unique_violation
				return fmt.Errorf("подписка %s -> %s: %w", userID, authorID, ErrAlreadyFollowing)
			case "23514": // check_violation
				return fmt.Errorf("подписка %s -> %s: %w", userID, authorID, ErrSelfFollow)
			}
		}
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

// Delete снимает подписку. Отсутствие строки ошибкой не считается.
func (r *followRepository) Delete(ctx context.Context, userID, authorID string) error {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	return nil
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)`

	err := r.db.GetContext(ctx, &exists, query, userID, authorID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}

	return exists, nil
}
