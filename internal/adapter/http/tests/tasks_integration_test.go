//go:build integration
// +build integration

package tests

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/zulian026/TaskNest/internal/adapter/db"
	httpadapter "github.com/zulian026/TaskNest/internal/adapter/http"
	"github.com/zulian026/TaskNest/internal/adapter/http/dto"
	"github.com/zulian026/TaskNest/internal/adapter/http/handlers"
	appservice "github.com/zulian026/TaskNest/internal/app/service"
	"github.com/zulian026/TaskNest/pkg/apierrors"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
	token  string
	userID uint64
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	clock := appservice.SystemClock
	taskRepository := dbadapter.NewTaskRepository(s.DB)
	categoryRepository := dbadapter.NewCategoryRepository(s.DB)
	userRepository := dbadapter.NewUserRepository(s.DB)

	authService := appservice.NewAuthService(userRepository, "integration-secret", time.Hour, clock)
	taskService := appservice.NewTaskService(taskRepository, categoryRepository, clock)
	categoryService := appservice.NewCategoryService(categoryRepository)
	profileService := appservice.NewProfileService(userRepository, s.T().TempDir())
	githubService := appservice.NewGitHubService(userRepository, authService, appservice.GitHubConfig{
		FrontendURL: "http://localhost:3000",
	})

	router := gin.New()
	httpadapter.RegisterRoutes(router, authService, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(s.DB),
		Auth:     handlers.NewAuthHandler(authService),
		GitHub:   handlers.NewGitHubHandler(githubService),
		Task:     handlers.NewTaskHandler(taskService, clock),
		Category: handlers.NewCategoryHandler(categoryService, clock),
		Profile:  handlers.NewProfileHandler(profileService),
	})
	s.router = router

	s.token, s.userID = s.registerUser("ana@example.com")
}

func (s *TasksIntegrationSuite) registerUser(email string) (string, uint64) {
	body := fmt.Sprintf(`{"name":"Ana","email":"%s","password":"s3cret-pass"}`, email)
	rec := s.do(http.MethodPost, "/api/register", body, "")
	s.Require().Equal(http.StatusCreated, rec.Code)

	var got struct {
		Data dto.AuthResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().NotEmpty(got.Data.Token)
	return got.Data.Token, got.Data.User.ID
}

func (s *TasksIntegrationSuite) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) createCategory(name string) uint64 {
	rec := s.do(http.MethodPost, "/api/categories", fmt.Sprintf(`{"name":"%s","color":"#FF0000"}`, name), s.token)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var got struct {
		Data dto.CategoryItem `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	return got.Data.ID
}

func (s *TasksIntegrationSuite) createTask(body string) dto.TaskItem {
	rec := s.do(http.MethodPost, "/api/tasks", body, s.token)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var got struct {
		Data dto.TaskItem `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	return got.Data
}

func (s *TasksIntegrationSuite) TestGetTasks_RequiresAuthentication() {
	rec := s.do(http.MethodGet, "/api/tasks", "", "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
}

func (s *TasksIntegrationSuite) TestPostTasks_CreatesTaskWithDefaults() {
	categoryID := s.createCategory("Work")

	task := s.createTask(fmt.Sprintf(`{"title":"Write report","category_id":%d}`, categoryID))
	s.Require().NotZero(task.ID)
	s.Require().Equal("pending", task.Status)
	s.Require().Equal("medium", task.Priority)
	s.Require().NotNil(task.Category)
	s.Require().Equal("Work", task.Category.Name)

	var ownerID uint64
	s.Require().NoError(s.DB.Get(&ownerID, "SELECT user_id FROM tasks WHERE id = ?", task.ID))
	s.Require().Equal(s.userID, ownerID)
}

func (s *TasksIntegrationSuite) TestPostTasks_RejectsForeignCategory() {
	otherToken, _ := s.registerUser("bob@example.com")
	rec := s.do(http.MethodPost, "/api/categories", `{"name":"Bob's","color":"#00FF00"}`, otherToken)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created struct {
		Data dto.CategoryItem `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	rec = s.do(http.MethodPost, "/api/tasks", fmt.Sprintf(`{"title":"Sneaky","category_id":%d}`, created.Data.ID), s.token)
	s.Require().Equal(http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Category not found", got.ErrDetails.Message)
}

func (s *TasksIntegrationSuite) TestGetTasks_FiltersAndSummary() {
	s.createTask(`{"title":"Pending one"}`)
	s.createTask(`{"title":"Pending two"}`)
	s.createTask(`{"title":"Started","status":"in_progress"}`)

	rec := s.do(http.MethodGet, "/api/tasks?status=pending", "", s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got struct {
		Data []dto.TaskItem `json:"data"`
		Meta dto.ListMeta   `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got.Data, 2)
	s.Require().Equal(2, got.Meta.Total)
	s.Require().Equal(2, got.Meta.Summary.TotalTasks)
	s.Require().Equal(2, got.Meta.Summary.PendingTasks)
	s.Require().Equal(0, got.Meta.Summary.InProgressTasks)
}

func (s *TasksIntegrationSuite) TestGetTasks_SearchMatchesTitleOrDescription() {
	s.createTask(`{"title":"Write report","description":"quarterly numbers"}`)
	s.createTask(`{"title":"Groceries"}`)

	rec := s.do(http.MethodGet, "/api/tasks?search=quarterly", "", s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got struct {
		Data []dto.TaskItem `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got.Data, 1)
	s.Require().Equal("Write report", got.Data[0].Title)
}

func (s *TasksIntegrationSuite) TestGetTasks_SortByPrioritySeverity() {
	s.createTask(`{"title":"Low","priority":"low"}`)
	s.createTask(`{"title":"High","priority":"high"}`)
	s.createTask(`{"title":"Medium","priority":"medium"}`)

	rec := s.do(http.MethodGet, "/api/tasks?sort_by=priority&sort_order=asc", "", s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got struct {
		Data []dto.TaskItem `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got.Data, 3)
	s.Require().Equal("low", got.Data[0].Priority)
	s.Require().Equal("medium", got.Data[1].Priority)
	s.Require().Equal("high", got.Data[2].Priority)

	rec = s.do(http.MethodGet, "/api/tasks?sort_by=priority&sort_order=desc", "", s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	got.Data = nil
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got.Data, 3)
	s.Require().Equal("high", got.Data[0].Priority)
	s.Require().Equal("medium", got.Data[1].Priority)
	s.Require().Equal("low", got.Data[2].Priority)
}

func (s *TasksIntegrationSuite) TestGetTasksFilter_UnknownName() {
	rec := s.do(http.MethodGet, "/api/tasks/filter/urgent", "", s.token)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Invalid filter", got.ErrDetails.Message)
}

func (s *TasksIntegrationSuite) TestGetTasksFilter_Overdue() {
	task := s.createTask(`{"title":"Old"}`)
	_, err := s.DB.Exec("UPDATE tasks SET due_date = '2020-01-01' WHERE id = ?", task.ID)
	s.Require().NoError(err)

	s.createTask(`{"title":"Fresh"}`)

	// A completed task with a past due date must not count as overdue.
	finished := s.createTask(`{"title":"Finished"}`)
	_, err = s.DB.Exec("UPDATE tasks SET due_date = '2020-01-01' WHERE id = ?", finished.ID)
	s.Require().NoError(err)
	rec := s.do(http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", finished.ID), `{"status":"completed"}`, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/tasks/filter/overdue", "", s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got struct {
		Data []dto.TaskItem `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got.Data, 1)
	s.Require().Equal("Old", got.Data[0].Title)
	s.Require().True(got.Data[0].IsOverdue)
}

func (s *TasksIntegrationSuite) TestPatchTaskStatus_CompletedStampsAndClears() {
	task := s.createTask(`{"title":"Lifecycle"}`)

	rec := s.do(http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", task.ID), `{"status":"completed"}`, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var completedAt sql.NullTime
	s.Require().NoError(s.DB.Get(&completedAt, "SELECT completed_at FROM tasks WHERE id = ?", task.ID))
	s.Require().True(completedAt.Valid)

	rec = s.do(http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", task.ID), `{"status":"pending"}`, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	s.Require().NoError(s.DB.Get(&completedAt, "SELECT completed_at FROM tasks WHERE id = ?", task.ID))
	s.Require().False(completedAt.Valid)
}

func (s *TasksIntegrationSuite) TestPatchTaskStatus_RejectsUnknownStatus() {
	task := s.createTask(`{"title":"Lifecycle"}`)

	rec := s.do(http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", task.ID), `{"status":"done"}`, s.token)
	s.Require().Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *TasksIntegrationSuite) TestGetTask_OtherUsersTaskIsInvisible() {
	task := s.createTask(`{"title":"Mine"}`)

	otherToken, _ := s.registerUser("bob@example.com")
	rec := s.do(http.MethodGet, fmt.Sprintf("/api/tasks/%d", task.ID), "", otherToken)
	s.Require().Equal(http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Task not found", got.ErrDetails.Message)
}

func (s *TasksIntegrationSuite) TestPutTask_ClearsDueDateWithNull() {
	task := s.createTask(`{"title":"Dated","due_date":"2030-01-01"}`)

	rec := s.do(http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), `{"due_date":null}`, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var dueDate sql.NullTime
	s.Require().NoError(s.DB.Get(&dueDate, "SELECT due_date FROM tasks WHERE id = ?", task.ID))
	s.Require().False(dueDate.Valid)
}

func (s *TasksIntegrationSuite) TestDeleteCategory_DetachesTasks() {
	categoryID := s.createCategory("Doomed")
	task := s.createTask(fmt.Sprintf(`{"title":"Orphan-to-be","category_id":%d}`, categoryID))

	rec := s.do(http.MethodDelete, fmt.Sprintf("/api/categories/%d", categoryID), "", s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var taskCategory sql.NullInt64
	s.Require().NoError(s.DB.Get(&taskCategory, "SELECT category_id FROM tasks WHERE id = ?", task.ID))
	s.Require().False(taskCategory.Valid)
}

func (s *TasksIntegrationSuite) TestDeleteTask_RemovesRow() {
	task := s.createTask(`{"title":"Short lived"}`)

	rec := s.do(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), "", s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM tasks WHERE id = ?", task.ID))
	s.Require().Zero(count)
}
