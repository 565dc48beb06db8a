package http

import (
	"github.com/gin-gonic/gin"

	"github.com/zulian026/TaskNest/internal/adapter/http/handlers"
	"github.com/zulian026/TaskNest/internal/adapter/http/middleware"
	"github.com/zulian026/TaskNest/internal/core/ports"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	GitHub   *handlers.GitHubHandler
	Task     *handlers.TaskHandler
	Category *handlers.CategoryHandler
	Profile  *handlers.ProfileHandler
}

func RegisterRoutes(r *gin.Engine, verifier ports.TokenVerifier, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/register", h.Auth.Register)
		api.POST("/login", h.Auth.Login)

		api.GET("/auth/github/redirect", h.GitHub.Redirect)
		api.GET("/auth/github/callback", h.GitHub.Callback)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(verifier))
	{
		authed.POST("/logout", h.Auth.Logout)
		authed.GET("/user", h.Auth.CurrentUser)
		authed.POST("/auth/github/unlink", h.GitHub.Unlink)

		authed.GET("/tasks", h.Task.ListTasks)
		authed.POST("/tasks", h.Task.CreateTask)
		// The static filter segment must be registered alongside /tasks/:id;
		// gin routes /tasks/filter/... to the more specific pattern.
		authed.GET("/tasks/filter/:name", h.Task.FilterTasks)
		authed.GET("/tasks/:id", h.Task.GetTask)
		authed.PUT("/tasks/:id", h.Task.UpdateTask)
		authed.PATCH("/tasks/:id/status", h.Task.UpdateTaskStatus)
		authed.DELETE("/tasks/:id", h.Task.DeleteTask)

		authed.GET("/categories", h.Category.ListCategories)
		authed.POST("/categories", h.Category.CreateCategory)
		authed.GET("/categories/:id", h.Category.GetCategory)
		authed.PUT("/categories/:id", h.Category.UpdateCategory)
		authed.DELETE("/categories/:id", h.Category.DeleteCategory)

		authed.GET("/profile", h.Profile.ShowProfile)
		authed.PUT("/profile", h.Profile.UpdateProfile)
		authed.POST("/profile/avatar", h.Profile.UpdateAvatar)
		authed.DELETE("/profile/avatar", h.Profile.DeleteAvatar)
	}
}
