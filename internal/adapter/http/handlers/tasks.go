package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/zulian026/TaskNest/internal/adapter/http/dto"
	"github.com/zulian026/TaskNest/internal/adapter/http/mapper"
	"github.com/zulian026/TaskNest/internal/adapter/http/middleware"
	"github.com/zulian026/TaskNest/internal/adapter/http/validation"
	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
	"github.com/zulian026/TaskNest/pkg/apierrors"
)

const dateLayout = "2006-01-02"

type TaskHandler struct {
	taskService ports.TaskService
	clock       ports.Clock
}

func NewTaskHandler(taskService ports.TaskService, clock ports.Clock) *TaskHandler {
	return &TaskHandler{taskService: taskService, clock: clock}
}

// ListTasks handles GET /tasks with the optional filter, sort and page query
// parameters. All filters combine with AND; unknown sort_by values fall back
// to the default ordering.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	filter, fields := parseTaskFilter(c)
	if len(fields) > 0 {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, lang, fields),
		)
		return
	}

	sort := domain.ParseTaskSort(c.Query("sort_by"), c.Query("sort_order"))

	page, err := h.taskService.List(c.Request.Context(), userID, filter, sort, parsePage(c))
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	h.respondTaskPage(c, page)
}

// FilterTasks handles GET /tasks/filter/:name for the closed named-filter
// vocabulary. An unknown name is a client error and never reaches the store.
func (h *TaskHandler) FilterTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)
	name := c.Param("name")

	page, err := h.taskService.Filter(c.Request.Context(), userID, name, parsePage(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownFilter) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgUnknownFilter, lang),
			)
			return
		}

		zap.L().Error("failed to filter tasks", zap.Uint64("user_id", userID), zap.String("filter", name), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	h.respondTaskPage(c, page)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	taskID, ok := parseID(c, lang, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to fetch task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailFetchTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.OK(mapper.ToTaskItem(task, h.clock.Now())))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.respondInvalidPayload(c, lang, err)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		h.respondInvalidPayload(c, lang, err)
		return
	}

	input, err := validation.BuildCreateTaskInput(userID, req, raw)
	if err != nil {
		h.respondInvalidPayload(c, lang, err)
		return
	}

	// Due dates in the past are rejected on create only; updates may keep an
	// already-overdue date.
	if input.DueDate != nil && input.DueDate.Format(dateLayout) < domain.Today(h.clock.Now()).Format(dateLayout) {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, lang, map[string]string{
				"due_date": "The due_date must be today or later",
			}),
		)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create task", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.WithMessage("Task created successfully", mapper.ToTaskItem(task, h.clock.Now())))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	taskID, ok := parseID(c, lang, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.respondInvalidPayload(c, lang, err)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		h.respondInvalidPayload(c, lang, err)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		h.respondInvalidPayload(c, lang, err)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), userID, taskID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrCategoryNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
			)
		default:
			zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.WithMessage("Task updated successfully", mapper.ToTaskItem(task, h.clock.Now())))
}

// UpdateTaskStatus handles PATCH /tasks/:id/status. Any transition between
// the three states is allowed; the completed_at timestamp follows the
// destination state.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	taskID, ok := parseID(c, lang, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondInvalidStatus(c, lang)
		return
	}

	status := domain.TaskStatus(req.Status)
	if !status.Valid() {
		h.respondInvalidStatus(c, lang)
		return
	}

	task, err := h.taskService.SetStatus(c.Request.Context(), userID, taskID, status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidStatus):
			h.respondInvalidStatus(c, lang)
		default:
			zap.L().Error("failed to update task status", zap.Uint64("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.WithMessage("Task status updated successfully", mapper.ToTaskItem(task, h.clock.Now())))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	taskID, ok := parseID(c, lang, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), userID, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Message("Task deleted successfully"))
}

func (h *TaskHandler) respondTaskPage(c *gin.Context, page domain.TaskPage) {
	now := h.clock.Now()
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    mapper.ToTaskItems(page.Tasks, now),
		Meta:    mapper.ToListMeta(page),
	})
}

func (h *TaskHandler) respondInvalidPayload(c *gin.Context, lang string, err error) {
	if fields := validation.FieldErrors(err); len(fields) > 0 {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, lang, fields),
		)
		return
	}

	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
	)
}

func (h *TaskHandler) respondInvalidStatus(c *gin.Context, lang string) {
	c.JSON(
		http.StatusUnprocessableEntity,
		apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgInvalidStatus, lang, map[string]string{
			"status": "The status must be one of: pending, in_progress, completed",
		}),
	)
}

// parseTaskFilter reads the filter query parameters. Enum-valued filters are
// passed through verbatim: a bogus status simply matches nothing, like the
// enum column would. Malformed ids and dates come back as field errors.
func parseTaskFilter(c *gin.Context) (domain.TaskFilter, map[string]string) {
	var filter domain.TaskFilter
	fields := make(map[string]string)

	if value, ok := c.GetQuery("status"); ok {
		status := domain.TaskStatus(value)
		filter.Status = &status
	}
	if value, ok := c.GetQuery("priority"); ok {
		priority := domain.TaskPriority(value)
		filter.Priority = &priority
	}
	if value, ok := c.GetQuery("category_id"); ok {
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil || id == 0 {
			fields["category_id"] = "The category_id must be a positive integer"
		} else {
			filter.CategoryID = &id
		}
	}
	if value, ok := c.GetQuery("due_date"); ok {
		date, err := time.Parse(dateLayout, value)
		if err != nil {
			fields["due_date"] = "The due_date must be a date in 2006-01-02 format"
		} else {
			filter.DueOn = &date
		}
	}
	filter.Search = c.Query("search")

	return filter, fields
}

func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseID(c *gin.Context, lang, msgKey string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, msgKey, lang),
		)
		return 0, false
	}
	return id, true
}
