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

const dateLayout = "2006-01-02"

const taskSelectColumns = `
  t.id, t.user_id, t.category_id, t.title, t.description, t.status, t.priority,
  t.due_date, t.completed_at, t.created_at, t.updated_at,
  c.name AS category_name, c.color AS category_color
`

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID            uint64         `db:"id"`
	UserID        uint64         `db:"user_id"`
	CategoryID    sql.NullInt64  `db:"category_id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	Status        string         `db:"status"`
	Priority      string         `db:"priority"`
	DueDate       sql.NullTime   `db:"due_date"`
	CompletedAt   sql.NullTime   `db:"completed_at"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	CategoryName  sql.NullString `db:"category_name"`
	CategoryColor sql.NullString `db:"category_color"`
}

// buildTaskPredicates composes the WHERE clause for a task query. The owner
// scope comes first and is never optional; every other predicate is ANDed in
// only when its filter field is set.
func buildTaskPredicates(userID uint64, filter domain.TaskFilter) (string, []any) {
	clauses := []string{"t.user_id = ?"}
	args := []any{userID}

	if filter.Status != nil {
		clauses = append(clauses, "t.status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.ExcludeStatus != nil {
		clauses = append(clauses, "t.status <> ?")
		args = append(args, string(*filter.ExcludeStatus))
	}
	if filter.Priority != nil {
		clauses = append(clauses, "t.priority = ?")
		args = append(args, string(*filter.Priority))
	}
	if filter.CategoryID != nil {
		clauses = append(clauses, "t.category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.DueOn != nil {
		clauses = append(clauses, "t.due_date = ?")
		args = append(args, filter.DueOn.Format(dateLayout))
	}
	if filter.DueBefore != nil {
		clauses = append(clauses, "t.due_date < ?")
		args = append(args, filter.DueBefore.Format(dateLayout))
	}
	if filter.DueFrom != nil {
		clauses = append(clauses, "t.due_date >= ?")
		args = append(args, filter.DueFrom.Format(dateLayout))
	}
	if filter.DueTo != nil {
		clauses = append(clauses, "t.due_date <= ?")
		args = append(args, filter.DueTo.Format(dateLayout))
	}
	if filter.Search != "" {
		clauses = append(clauses, "(t.title LIKE ? OR t.description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	return strings.Join(clauses, " AND "), args
}

// orderClause renders the sort specification. Priority sorts by severity via
// FIELD(), not lexically. Every ordering ends with id ASC so equal keys keep
// a stable order across pages.
func orderClause(sort domain.TaskSort) string {
	direction := "ASC"
	if sort.Order == domain.SortDesc {
		direction = "DESC"
	}

	if sort.Field == domain.SortByPriority {
		return fmt.Sprintf("FIELD(t.priority, 'low', 'medium', 'high') %s, t.id ASC", direction)
	}
	return fmt.Sprintf("t.%s %s, t.id ASC", sort.Field, direction)
}

func (r *TaskRepository) List(ctx context.Context, userID uint64, filter domain.TaskFilter, sort domain.TaskSort, page int) ([]domain.Task, domain.PageInfo, error) {
	where, args := buildTaskPredicates(userID, filter)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks t WHERE %s", where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, domain.PageInfo{}, err
	}

	query := fmt.Sprintf(`
SELECT %s
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
WHERE %s
ORDER BY %s
LIMIT ? OFFSET ?`, taskSelectColumns, where, orderClause(sort))

	offset := (page - 1) * domain.PageSize
	args = append(args, domain.PageSize, offset)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, domain.PageInfo{}, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}

	return tasks, domain.NewPageInfo(page, total), nil
}

// Summarize counts the filtered set by status, plus how many of it is overdue
// relative to the given calendar date.
func (r *TaskRepository) Summarize(ctx context.Context, userID uint64, filter domain.TaskFilter, today time.Time) (domain.TaskSummary, error) {
	where, args := buildTaskPredicates(userID, filter)

	query := fmt.Sprintf(`
SELECT
  COUNT(*) AS total,
  COALESCE(SUM(t.status = 'pending'), 0) AS pending,
  COALESCE(SUM(t.status = 'in_progress'), 0) AS in_progress,
  COALESCE(SUM(t.status = 'completed'), 0) AS completed,
  COALESCE(SUM(t.due_date IS NOT NULL AND t.due_date < ? AND t.status <> 'completed'), 0) AS overdue
FROM tasks t
WHERE %s`, where)

	queryArgs := append([]any{today.Format(dateLayout)}, args...)

	var row struct {
		Total      int `db:"total"`
		Pending    int `db:"pending"`
		InProgress int `db:"in_progress"`
		Completed  int `db:"completed"`
		Overdue    int `db:"overdue"`
	}
	if err := r.db.GetContext(ctx, &row, query, queryArgs...); err != nil {
		return domain.TaskSummary{}, err
	}

	return domain.TaskSummary{
		Total:      row.Total,
		Pending:    row.Pending,
		InProgress: row.InProgress,
		Completed:  row.Completed,
		Overdue:    row.Overdue,
	}, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
WHERE t.id = ? AND t.user_id = ?`, taskSelectColumns)

	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, taskID, userID); err != nil {
		if err == sql.ErrNoRows {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRow(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (user_id, category_id, title, description, status, priority, due_date, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		input.UserID,
		nullableID(input.CategoryID),
		input.Title,
		nullableString(input.Description),
		string(input.Status),
		string(input.Priority),
		nullableDate(input.DueDate),
		nullableTime(input.CompletedAt),
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, input.UserID, uint64(id))
}

func (r *TaskRepository) Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	// Existence check first: an UPDATE that changes nothing reports zero
	// affected rows on MySQL, which would be indistinguishable from a miss.
	if _, err := r.GetByID(ctx, userID, taskID); err != nil {
		return domain.Task{}, err
	}

	sets := make([]string, 0, 7)
	args := make([]any, 0, 9)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(input.Description))
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?")
		args = append(args, nullableDate(input.DueDate))
	}
	if input.CategoryIDSet {
		sets = append(sets, "category_id = ?")
		args = append(args, nullableID(input.CategoryID))
	}
	if input.CompletedAtSet {
		sets = append(sets, "completed_at = ?")
		args = append(args, nullableTime(input.CompletedAt))
	}

	if len(sets) > 0 {
		query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ? AND user_id = ?", strings.Join(sets, ", "))
		args = append(args, taskID, userID)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Task{}, err
		}
	}

	return r.GetByID(ctx, userID, taskID)
}

// SetStatus writes the status and its coupled completed_at timestamp in a
// single statement so the pair can never disagree under concurrent writers.
func (r *TaskRepository) SetStatus(ctx context.Context, userID, taskID uint64, status domain.TaskStatus, completedAt *time.Time) (domain.Task, error) {
	if _, err := r.GetByID(ctx, userID, taskID); err != nil {
		return domain.Task{}, err
	}

	_, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ?, completed_at = ? WHERE id = ? AND user_id = ?",
		string(status), nullableTime(completedAt), taskID, userID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, userID, taskID)
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND user_id = ?", taskID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		Priority:  domain.TaskPriority(row.Priority),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.CategoryID.Valid {
		value := uint64(row.CategoryID.Int64)
		task.CategoryID = &value
	}
	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}
	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}
	if row.CategoryID.Valid && row.CategoryName.Valid {
		task.Category = &domain.Category{
			ID:     uint64(row.CategoryID.Int64),
			UserID: row.UserID,
			Name:   row.CategoryName.String,
			Color:  row.CategoryColor.String,
		}
	}

	return task
}

func nullableID(value *uint64) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableDate(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.Format(dateLayout)
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return *value
}
