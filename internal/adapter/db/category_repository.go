package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
)

type CategoryRepository struct {
	db *sqlx.DB
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryRow struct {
	ID         uint64    `db:"id"`
	UserID     uint64    `db:"user_id"`
	Name       string    `db:"name"`
	Color      string    `db:"color"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
	TasksCount int       `db:"tasks_count"`
}

func (r *CategoryRepository) List(ctx context.Context, userID uint64) ([]domain.Category, error) {
	var rows []categoryRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT c.id, c.user_id, c.name, c.color, c.created_at, c.updated_at,
       COUNT(t.id) AS tasks_count
FROM categories c
LEFT JOIN tasks t ON t.category_id = c.id
WHERE c.user_id = ?
GROUP BY c.id, c.user_id, c.name, c.color, c.created_at, c.updated_at
ORDER BY c.id`, userID)
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRow(row))
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, userID, categoryID uint64) (domain.Category, error) {
	var row categoryRow
	err := r.db.GetContext(ctx, &row, `
SELECT c.id, c.user_id, c.name, c.color, c.created_at, c.updated_at, 0 AS tasks_count
FROM categories c
WHERE c.id = ? AND c.user_id = ?`, categoryID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}
	return mapCategoryRow(row), nil
}

func (r *CategoryRepository) GetWithTasks(ctx context.Context, userID, categoryID uint64) (domain.Category, error) {
	category, err := r.GetByID(ctx, userID, categoryID)
	if err != nil {
		return domain.Category{}, err
	}

	var rows []taskRow
	query := fmt.Sprintf(`
SELECT %s
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
WHERE t.category_id = ? AND t.user_id = ?
ORDER BY t.id`, taskSelectColumns)
	if err := r.db.SelectContext(ctx, &rows, query, categoryID, userID); err != nil {
		return domain.Category{}, err
	}

	category.Tasks = make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		category.Tasks = append(category.Tasks, mapTaskRow(row))
	}
	category.TasksCount = len(category.Tasks)

	return category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (user_id, name, color) VALUES (?, ?, ?)",
		input.UserID, input.Name, input.Color,
	)
	if err != nil {
		return domain.Category{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Category{}, err
	}

	return r.GetByID(ctx, input.UserID, uint64(id))
}

func (r *CategoryRepository) Update(ctx context.Context, userID, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error) {
	if _, err := r.GetByID(ctx, userID, categoryID); err != nil {
		return domain.Category{}, err
	}

	sets := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *input.Color)
	}

	if len(sets) > 0 {
		query := fmt.Sprintf("UPDATE categories SET %s WHERE id = ? AND user_id = ?", strings.Join(sets, ", "))
		args = append(args, categoryID, userID)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Category{}, err
		}
	}

	return r.GetByID(ctx, userID, categoryID)
}

// Delete removes the category row. Tasks keep existing with a null category
// through the schema's ON DELETE SET NULL foreign key.
func (r *CategoryRepository) Delete(ctx context.Context, userID, categoryID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ? AND user_id = ?", categoryID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func mapCategoryRow(row categoryRow) domain.Category {
	return domain.Category{
		ID:         row.ID,
		UserID:     row.UserID,
		Name:       row.Name,
		Color:      row.Color,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
		TasksCount: row.TasksCount,
	}
}
