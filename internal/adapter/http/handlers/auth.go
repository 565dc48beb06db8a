package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zulian026/TaskNest/internal/adapter/http/dto"
	"github.com/zulian026/TaskNest/internal/adapter/http/mapper"
	"github.com/zulian026/TaskNest/internal/adapter/http/middleware"
	"github.com/zulian026/TaskNest/internal/adapter/http/validation"
	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
	"github.com/zulian026/TaskNest/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, lang, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgEmailTaken, lang, map[string]string{
					"email": "The email has already been taken",
				}),
			)
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegister, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.WithMessage("Registered successfully", mapper.ToAuthResponse(result)))
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, lang, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
		case errors.Is(err, domain.ErrPasswordLoginUnavailable):
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgPasswordLoginUnavailable, lang),
			)
		default:
			zap.L().Error("failed to log user in", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.WithMessage("Logged in successfully", mapper.ToAuthResponse(result)))
}

// Logout exists for API parity. Tokens are stateless, so the client simply
// discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Message("Logged out successfully"))
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	user, err := h.authService.User(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to fetch current user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailProfile, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.OK(mapper.ToUserItem(user)))
}

func respondBindingError(c *gin.Context, lang string, err error) {
	if fields := validation.FieldErrors(err); len(fields) > 0 {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, lang, fields),
		)
		return
	}

	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgValidationFailed, lang),
	)
}
