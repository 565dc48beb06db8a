package domain

import "time"

type AuthProvider string

const (
	ProviderEmail  AuthProvider = "email"
	ProviderGitHub AuthProvider = "github"
)

// User owns categories and tasks. PasswordHash is nil for accounts created
// through GitHub that never set a password; such accounts cannot log in with
// a password and cannot unlink GitHub until one is set.
type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash *string
	Avatar       *string
	Provider     AuthProvider
	GitHubID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

type CreateUserInput struct {
	Name         string
	Email        string
	PasswordHash *string
	Avatar       *string
	Provider     AuthProvider
	GitHubID     *string
}

// UpdateUserInput is the allow-listed profile mutation. PasswordHash is set
// by the profile service only after the current-password check passes.
type UpdateUserInput struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Avatar       *string
	AvatarSet    bool
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult pairs an authenticated user with a freshly issued bearer token.
type AuthResult struct {
	User  User
	Token string
}

// UpdateProfileInput is the profile edit payload. A password change requires
// CurrentPassword to match the stored hash.
type UpdateProfileInput struct {
	Name            string
	Email           string
	CurrentPassword *string
	NewPassword     *string
}

type AvatarUpload struct {
	Filename string
	Content  []byte
}

// GitHubAccount is the subset of a GitHub profile the callback consumes.
type GitHubAccount struct {
	ID        string
	Login     string
	Name      string
	Email     string
	AvatarURL string
}
