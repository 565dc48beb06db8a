package tests

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zulian026/TaskNest/internal/adapter/http/dto"
)

// testNow is the pinned clock for handler tests: a Wednesday.
var testNow = time.Date(2026, 3, 11, 14, 30, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// authAs injects the authenticated user id the way AuthMiddleware would,
// without requiring a real token.
func authAs(userID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

// taskListResponse mirrors the list envelope for decoding in assertions.
type taskListResponse struct {
	Success bool           `json:"success"`
	Data    []dto.TaskItem `json:"data"`
	Meta    dto.ListMeta   `json:"meta"`
}

type taskResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    dto.TaskItem `json:"data"`
}

type categoryListResponse struct {
	Success bool               `json:"success"`
	Data    []dto.CategoryItem `json:"data"`
}

type categoryResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    dto.CategoryItem `json:"data"`
}

type authResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    dto.AuthResponse `json:"data"`
}

type userResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    dto.UserItem `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
