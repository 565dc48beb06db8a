package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/zulian026/TaskNest/internal/core/domain"
)

// fixedClock pins time for deterministic tests. The zero value is unusable;
// build one with newFixedClock.
type fixedClock struct {
	now time.Time
}

func newFixedClock(now time.Time) *fixedClock {
	return &fixedClock{now: now}
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) List(ctx context.Context, userID uint64, filter domain.TaskFilter, sort domain.TaskSort, page int) ([]domain.Task, domain.PageInfo, error) {
	args := m.Called(ctx, userID, filter, sort, page)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Get(1).(domain.PageInfo), args.Error(2)
}

func (m *taskRepositoryMock) Summarize(ctx context.Context, userID uint64, filter domain.TaskFilter, today time.Time) (domain.TaskSummary, error) {
	args := m.Called(ctx, userID, filter, today)
	return args.Get(0).(domain.TaskSummary), args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) SetStatus(ctx context.Context, userID, taskID uint64, status domain.TaskStatus, completedAt *time.Time) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, status, completedAt)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, userID, taskID uint64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

type categoryRepositoryMock struct {
	mock.Mock
}

func (m *categoryRepositoryMock) List(ctx context.Context, userID uint64) ([]domain.Category, error) {
	args := m.Called(ctx, userID)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryRepositoryMock) GetByID(ctx context.Context, userID, categoryID uint64) (domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) GetWithTasks(ctx context.Context, userID, categoryID uint64) (domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) Create(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) Update(ctx context.Context, userID, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, userID, categoryID, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) Delete(ctx context.Context, userID, categoryID uint64) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) GetByID(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByGitHubID(ctx context.Context, githubID string) (domain.User, error) {
	args := m.Called(ctx, githubID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Update(ctx context.Context, userID uint64, input domain.UpdateUserInput) (domain.User, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) LinkGitHub(ctx context.Context, userID uint64, githubID string, avatar *string) (domain.User, error) {
	args := m.Called(ctx, userID, githubID, avatar)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) UnlinkGitHub(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}
