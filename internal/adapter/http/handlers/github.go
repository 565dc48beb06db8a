package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zulian026/TaskNest/internal/adapter/http/dto"
	"github.com/zulian026/TaskNest/internal/adapter/http/middleware"
	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
	"github.com/zulian026/TaskNest/pkg/apierrors"
)

const (
	stateCookie       = "github_oauth_state"
	stateCookieMaxAge = 600
)

type GitHubHandler struct {
	githubService ports.GitHubService
}

func NewGitHubHandler(githubService ports.GitHubService) *GitHubHandler {
	return &GitHubHandler{githubService: githubService}
}

// Redirect returns the GitHub authorization URL for the frontend to navigate
// to. The state nonce is pinned in a short-lived cookie and checked on the
// way back.
func (h *GitHubHandler) Redirect(c *gin.Context) {
	lang := middleware.GetLang(c)

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		zap.L().Error("failed to generate oauth state", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGitHub, lang),
		)
		return
	}
	state := hex.EncodeToString(buf)

	c.SetCookie(stateCookie, state, stateCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: gin.H{"url": h.githubService.AuthURL(state)}})
}

// Callback finishes the OAuth flow and redirects the browser to the frontend,
// carrying either a token or an error message.
func (h *GitHubHandler) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		c.Redirect(http.StatusFound, h.githubService.FailureRedirect("GitHub login failed: invalid state"))
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, h.githubService.FailureRedirect("GitHub login failed: missing code"))
		return
	}

	target, err := h.githubService.Callback(c.Request.Context(), code)
	if err != nil {
		zap.L().Error("github oauth callback failed", zap.Error(err))
		c.Redirect(http.StatusFound, h.githubService.FailureRedirect("GitHub login failed"))
		return
	}

	c.Redirect(http.StatusFound, target)
}

func (h *GitHubHandler) Unlink(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	if err := h.githubService.Unlink(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrPasswordRequired) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgPasswordRequired, lang),
			)
			return
		}

		zap.L().Error("failed to unlink github", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGitHub, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Message("GitHub account disconnected successfully"))
}
