package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/zulian026/TaskNest/internal/adapter/db"
	httpadapter "github.com/zulian026/TaskNest/internal/adapter/http"
	"github.com/zulian026/TaskNest/internal/adapter/http/handlers"
	httpmiddleware "github.com/zulian026/TaskNest/internal/adapter/http/middleware"
	"github.com/zulian026/TaskNest/internal/app/service"
	"github.com/zulian026/TaskNest/internal/config"
	"github.com/zulian026/TaskNest/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	clock := service.SystemClock

	taskRepository := dbadapter.NewTaskRepository(db)
	categoryRepository := dbadapter.NewCategoryRepository(db)
	userRepository := dbadapter.NewUserRepository(db)

	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.TokenTTL, clock)
	taskService := service.NewTaskService(taskRepository, categoryRepository, clock)
	categoryService := service.NewCategoryService(categoryRepository)
	profileService := service.NewProfileService(userRepository, cfg.AvatarDir)
	githubService := service.NewGitHubService(userRepository, authService, service.GitHubConfig{
		ClientID:     cfg.GitHubClientID,
		ClientSecret: cfg.GitHubClientSecret,
		RedirectURL:  cfg.GitHubRedirectURL,
		FrontendURL:  cfg.FrontendURL,
	})

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, authService, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Auth:     handlers.NewAuthHandler(authService),
		GitHub:   handlers.NewGitHubHandler(githubService),
		Task:     handlers.NewTaskHandler(taskService, clock),
		Category: handlers.NewCategoryHandler(categoryService, clock),
		Profile:  handlers.NewProfileHandler(profileService),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
