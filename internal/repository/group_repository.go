package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"yatube/internal/models"
)

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) GroupRepository {
	return &groupRepository{db: db}
}

// Create заводит новую группу. Группы создаёт администратор; при удалении
// группы её посты не удаляются (group_id обнуляется базой).
func (r *groupRepository) Create(ctx context.Context, group *models.Group) error {
	if group.GroupID == "" {
		group.GroupID = uuid.New().String()
	}

	query := `
		INSERT INTO groups (group_id, title, slug, description)
		VALUES (:group_id, :title, :slug, :description)
	`

	_, err := r.db.NamedExecContext(ctx, query, group)
	if err != nil {
		return fmt.Errorf("ошибка при создании группы: %w", err)
	}

	return nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	var group models.Group

	query := `SELECT * FROM groups WHERE slug = $1`

	err := r.db.GetContext(ctx, &group, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("группа %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении группы: %w", err)
	}

	return &group, nil
}

func (r *groupRepository) GetAll(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group

	query := `SELECT * FROM groups ORDER BY title`

	err := r.db.SelectContext(ctx, &groups, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка групп: %w", err)
	}

	return groups, nil
}
