package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"yatube/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Все выборки постов идут с JOIN на users ради имени автора и отсортированы
// по убыванию даты публикации.
const postColumns = `
	p.post_id, p.text, p.pub_date, p.author_id, u.username AS author_username, p.group_id, p.image_url
`

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	// pub_date выставляется один раз и больше никогда не обновляется
	post.PubDate = time.Now()

	query := `
		INSERT INTO posts (post_id, text, pub_date, author_id, group_id, image_url)
		VALUES (:post_id, :text, :pub_date, :author_id, :group_id, :image_url)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		WHERE p.post_id = $1
	`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		ORDER BY p.pub_date DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetByGroupID(ctx context.Context, groupID string) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		WHERE p.group_id = $1
		ORDER BY p.pub_date DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов группы: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		WHERE p.author_id = $1
		ORDER BY p.pub_date DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return posts, nil
}

// GetFollowFeed отдаёт посты авторов, на которых подписан userID.
func (r *postRepository) GetFollowFeed(ctx context.Context, userID string) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		JOIN follows f ON f.author_id = p.author_id
		WHERE f.user_id = $1
		ORDER BY p.pub_date DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты подписок: %w", err)
	}

	return posts, nil
}

// Update меняет текст, группу и картинку. Дата публикации и автор
// неизменяемы, условие по author_id — последний рубеж против чужой правки.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			text = :text,
			group_id = :group_id,
			image_url = :image_url
		WHERE post_id = :post_id AND author_id = :author_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост %s: %w", post.PostID, ErrNotFound)
	}

	return nil
}

func (r *postRepository) CountByAuthorID(ctx context.Context, authorID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1`

	err := r.db.GetContext(ctx, &count, query, authorID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов автора: %w", err)
	}

	return count, nil
}
