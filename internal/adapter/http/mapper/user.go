package mapper

import (
	"time"

	"github.com/zulian026/TaskNest/internal/adapter/http/dto"
	"github.com/zulian026/TaskNest/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Provider:  string(user.Provider),
		HasGitHub: user.GitHubID != nil,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}

	if user.Avatar != nil {
		value := *user.Avatar
		item.Avatar = &value
	}

	return item
}

func ToAuthResponse(result domain.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{User: ToUserItem(result.User), Token: result.Token}
}
