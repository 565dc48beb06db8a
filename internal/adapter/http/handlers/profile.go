package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zulian026/TaskNest/internal/adapter/http/dto"
	"github.com/zulian026/TaskNest/internal/adapter/http/mapper"
	"github.com/zulian026/TaskNest/internal/adapter/http/middleware"
	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
	"github.com/zulian026/TaskNest/pkg/apierrors"
)

// maxAvatarSize caps avatar uploads at 2 MiB.
const maxAvatarSize = 2 << 20

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) ShowProfile(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	user, err := h.profileService.Show(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to fetch profile", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailProfile, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.OK(mapper.ToUserItem(user)))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, lang, err)
		return
	}

	user, err := h.profileService.Update(c.Request.Context(), userID, domain.UpdateProfileInput{
		Name:            req.Name,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			// Wrong current password rejects the whole update; nothing is
			// partially applied.
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgPasswordMismatch, lang, map[string]string{
					"current_password": "Current password does not match",
				}),
			)
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgEmailTaken, lang, map[string]string{
					"email": "The email has already been taken",
				}),
			)
		default:
			zap.L().Error("failed to update profile", zap.Uint64("user_id", userID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailProfile, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.WithMessage("Profile updated successfully", mapper.ToUserItem(user)))
}

func (h *ProfileHandler) UpdateAvatar(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	fileHeader, err := c.FormFile("avatar")
	if err != nil || fileHeader.Size > maxAvatarSize {
		h.respondInvalidAvatar(c, lang)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondInvalidAvatar(c, lang)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxAvatarSize+1))
	if err != nil || len(content) > maxAvatarSize {
		h.respondInvalidAvatar(c, lang)
		return
	}

	user, err := h.profileService.UpdateAvatar(c.Request.Context(), userID, domain.AvatarUpload{
		Filename: fileHeader.Filename,
		Content:  content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedAvatar) {
			h.respondInvalidAvatar(c, lang)
			return
		}

		zap.L().Error("failed to update avatar", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAvatar, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.WithMessage("Avatar updated successfully", mapper.ToUserItem(user)))
}

func (h *ProfileHandler) DeleteAvatar(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	if err := h.profileService.DeleteAvatar(c.Request.Context(), userID); err != nil {
		zap.L().Error("failed to delete avatar", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAvatar, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Message("Avatar deleted successfully"))
}

func (h *ProfileHandler) respondInvalidAvatar(c *gin.Context, lang string) {
	c.JSON(
		http.StatusUnprocessableEntity,
		apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgInvalidAvatar, lang, map[string]string{
			"avatar": "Avatar must be a jpeg, jpg, png or gif image up to 2 MB",
		}),
	)
}
