package ports

import (
	"context"

	"github.com/zulian026/TaskNest/internal/core/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, userID uint64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByGitHubID(ctx context.Context, githubID string) (domain.User, error)
	Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	Update(ctx context.Context, userID uint64, input domain.UpdateUserInput) (domain.User, error)
	LinkGitHub(ctx context.Context, userID uint64, githubID string, avatar *string) (domain.User, error)
	UnlinkGitHub(ctx context.Context, userID uint64) (domain.User, error)
}

// TokenVerifier is the slice of the auth service the request middleware needs.
type TokenVerifier interface {
	VerifyToken(token string) (uint64, error)
}

type AuthService interface {
	TokenVerifier

	Register(ctx context.Context, input domain.RegisterInput) (domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (domain.AuthResult, error)
	User(ctx context.Context, userID uint64) (domain.User, error)
	IssueToken(user domain.User) (string, error)
}

type ProfileService interface {
	Show(ctx context.Context, userID uint64) (domain.User, error)
	Update(ctx context.Context, userID uint64, input domain.UpdateProfileInput) (domain.User, error)
	UpdateAvatar(ctx context.Context, userID uint64, upload domain.AvatarUpload) (domain.User, error)
	DeleteAvatar(ctx context.Context, userID uint64) error
}

type GitHubService interface {
	// AuthURL returns the GitHub authorization URL for the given state.
	AuthURL(state string) string
	// Callback exchanges the OAuth code, links or creates the user, and
	// returns the frontend URL to redirect the browser to.
	Callback(ctx context.Context, code string) (string, error)
	// FailureRedirect builds the frontend login URL carrying an error message.
	FailureRedirect(reason string) string
	Unlink(ctx context.Context, userID uint64) error
}
