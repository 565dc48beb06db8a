package service

import (
	"context"
	"time"

	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
)

type TaskService struct {
	taskRepository     ports.TaskRepository
	categoryRepository ports.CategoryRepository
	clock              ports.Clock
}

func NewTaskService(taskRepository ports.TaskRepository, categoryRepository ports.CategoryRepository, clock ports.Clock) *TaskService {
	return &TaskService{
		taskRepository:     taskRepository,
		categoryRepository: categoryRepository,
		clock:              clock,
	}
}

func (s *TaskService) List(ctx context.Context, userID uint64, filter domain.TaskFilter, sort domain.TaskSort, page int) (domain.TaskPage, error) {
	return s.page(ctx, userID, filter, sort, page)
}

// Filter resolves one of the named shortcut filters. The result is always
// newest-first by creation time; the name vocabulary is closed and an unknown
// name fails before any query runs.
func (s *TaskService) Filter(ctx context.Context, userID uint64, name string, page int) (domain.TaskPage, error) {
	filter, err := domain.ResolveNamedFilter(name, s.clock.Now())
	if err != nil {
		return domain.TaskPage{}, err
	}
	return s.page(ctx, userID, filter, domain.DefaultTaskSort, page)
}

func (s *TaskService) page(ctx context.Context, userID uint64, filter domain.TaskFilter, sort domain.TaskSort, page int) (domain.TaskPage, error) {
	if page < 1 {
		page = 1
	}

	tasks, info, err := s.taskRepository.List(ctx, userID, filter, sort, page)
	if err != nil {
		return domain.TaskPage{}, err
	}

	summary, err := s.taskRepository.Summarize(ctx, userID, filter, domain.Today(s.clock.Now()))
	if err != nil {
		return domain.TaskPage{}, err
	}

	return domain.TaskPage{Tasks: tasks, Info: info, Summary: summary}, nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, userID, taskID)
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if err := s.checkCategoryOwnership(ctx, input.UserID, input.CategoryID); err != nil {
		return domain.Task{}, err
	}

	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}
	// Creating a task directly in completed state still stamps completed_at.
	input.CompletedAt, _ = s.completionStamp(input.Status)

	return s.taskRepository.Create(ctx, input)
}

func (s *TaskService) Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.CategoryIDSet {
		if err := s.checkCategoryOwnership(ctx, userID, input.CategoryID); err != nil {
			return domain.Task{}, err
		}
	}

	// A status change through the generic update goes through the same
	// completed_at rule as the status endpoint, so the invariant
	// "completed <=> completed_at set" cannot be broken by a field update.
	if input.Status != nil {
		input.CompletedAt, input.CompletedAtSet = s.completionStamp(*input.Status)
	}

	return s.taskRepository.Update(ctx, userID, taskID, input)
}

// SetStatus applies the status lifecycle rule: every transition is allowed,
// but entering completed stamps completed_at and entering any other state
// clears it. The status and timestamp are written in one statement.
func (s *TaskService) SetStatus(ctx context.Context, userID, taskID uint64, status domain.TaskStatus) (domain.Task, error) {
	if !status.Valid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	completedAt, _ := s.completionStamp(status)
	return s.taskRepository.SetStatus(ctx, userID, taskID, status, completedAt)
}

// MarkCompleted is shorthand for transitioning a task to completed.
func (s *TaskService) MarkCompleted(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	return s.SetStatus(ctx, userID, taskID, domain.TaskStatusCompleted)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID uint64) error {
	return s.taskRepository.Delete(ctx, userID, taskID)
}

func (s *TaskService) completionStamp(status domain.TaskStatus) (*time.Time, bool) {
	if status == domain.TaskStatusCompleted {
		now := s.clock.Now()
		return &now, true
	}
	return nil, true
}

// checkCategoryOwnership rejects a category reference that does not belong to
// the task's owner. The mismatch surfaces as "category not found" so other
// users' categories stay invisible.
func (s *TaskService) checkCategoryOwnership(ctx context.Context, userID uint64, categoryID *uint64) error {
	if categoryID == nil {
		return nil
	}
	_, err := s.categoryRepository.GetByID(ctx, userID, *categoryID)
	return err
}

var _ ports.TaskService = (*TaskService)(nil)
