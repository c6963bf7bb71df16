package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"yatube/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	comment.Created = time.Now()

	query := `
		INSERT INTO comments (comment_id, post_id, author_id, text, created)
		VALUES (:comment_id, :post_id, :author_id, :text, :created)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `
		SELECT c.comment_id, c.post_id, c.author_id, u.username AS author_username, c.text, c.created
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created DESC
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) CountByPostID(ctx context.Context, postID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM comments WHERE post_id = $1`

	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте комментариев: %w", err)
	}

	return count, nil
}
