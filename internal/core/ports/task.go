package ports

import (
	"context"
	"time"

	"github.com/zulian026/TaskNest/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, userID uint64, filter domain.TaskFilter, sort domain.TaskSort, page int) ([]domain.Task, domain.PageInfo, error)
	Summarize(ctx context.Context, userID uint64, filter domain.TaskFilter, today time.Time) (domain.TaskSummary, error)
	GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	SetStatus(ctx context.Context, userID, taskID uint64, status domain.TaskStatus, completedAt *time.Time) (domain.Task, error)
	Delete(ctx context.Context, userID, taskID uint64) error
}

type TaskService interface {
	List(ctx context.Context, userID uint64, filter domain.TaskFilter, sort domain.TaskSort, page int) (domain.TaskPage, error)
	Filter(ctx context.Context, userID uint64, name string, page int) (domain.TaskPage, error)
	Get(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	SetStatus(ctx context.Context, userID, taskID uint64, status domain.TaskStatus) (domain.Task, error)
	Delete(ctx context.Context, userID, taskID uint64) error
}
