package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"

	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
)

const githubAPIBase = "https://api.github.com"

var errGitHubEmailMissing = errors.New("github account has no usable email")

// tokenIssuer is the slice of the auth service the OAuth callback needs.
type tokenIssuer interface {
	IssueToken(user domain.User) (string, error)
}

type GitHubConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	FrontendURL  string
}

type GitHubService struct {
	userRepository ports.UserRepository
	tokens         tokenIssuer
	oauth          *oauth2.Config
	frontendURL    string
	apiBase        string
}

func NewGitHubService(userRepository ports.UserRepository, tokens tokenIssuer, cfg GitHubConfig) *GitHubService {
	return &GitHubService{
		userRepository: userRepository,
		tokens:         tokens,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     oauthgithub.Endpoint,
		},
		frontendURL: cfg.FrontendURL,
		apiBase:     githubAPIBase,
	}
}

func (s *GitHubService) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// Callback completes the authorization-code flow: it exchanges the code,
// fetches the GitHub profile, links it to an existing account (matched by
// GitHub id, then by email) or creates a new one, and returns the frontend
// redirect URL carrying a fresh bearer token.
func (s *GitHubService) Callback(ctx context.Context, code string) (string, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", err
	}

	account, err := s.fetchAccount(ctx, token)
	if err != nil {
		return "", err
	}

	user, err := s.findOrCreateUser(ctx, account)
	if err != nil {
		return "", err
	}

	bearer, err := s.tokens.IssueToken(user)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(map[string]any{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"avatar": user.Avatar,
	})
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("token", bearer)
	query.Set("user", base64.StdEncoding.EncodeToString(payload))
	return fmt.Sprintf("%s/auth/callback?%s", s.frontendURL, query.Encode()), nil
}

func (s *GitHubService) FailureRedirect(reason string) string {
	return fmt.Sprintf("%s/login?error=%s", s.frontendURL, url.QueryEscape(reason))
}

// Unlink disconnects GitHub from the account. A password must already be set,
// otherwise the user would be locked out.
func (s *GitHubService) Unlink(ctx context.Context, userID uint64) error {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.HasPassword() {
		return domain.ErrPasswordRequired
	}

	_, err = s.userRepository.UnlinkGitHub(ctx, userID)
	return err
}

func (s *GitHubService) findOrCreateUser(ctx context.Context, account domain.GitHubAccount) (domain.User, error) {
	if user, err := s.userRepository.GetByGitHubID(ctx, account.ID); err == nil {
		return s.userRepository.LinkGitHub(ctx, user.ID, account.ID, optional(account.AvatarURL))
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	if user, err := s.userRepository.GetByEmail(ctx, account.Email); err == nil {
		return s.userRepository.LinkGitHub(ctx, user.ID, account.ID, optional(account.AvatarURL))
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	name := account.Name
	if name == "" {
		name = account.Login
	}

	githubID := account.ID
	return s.userRepository.Create(ctx, domain.CreateUserInput{
		Name:     name,
		Email:    account.Email,
		Avatar:   optional(account.AvatarURL),
		Provider: domain.ProviderGitHub,
		GitHubID: &githubID,
	})
}

func (s *GitHubService) fetchAccount(ctx context.Context, token *oauth2.Token) (domain.GitHubAccount, error) {
	client := s.oauth.Client(ctx, token)

	var profile struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := s.getJSON(ctx, client, "/user", &profile); err != nil {
		return domain.GitHubAccount{}, err
	}

	email := profile.Email
	if email == "" {
		// The public profile email can be hidden; fall back to the primary
		// verified address from the emails endpoint.
		var emails []struct {
			Email    string `json:"email"`
			Primary  bool   `json:"primary"`
			Verified bool   `json:"verified"`
		}
		if err := s.getJSON(ctx, client, "/user/emails", &emails); err != nil {
			return domain.GitHubAccount{}, err
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				email = e.Email
				break
			}
		}
	}
	if email == "" {
		return domain.GitHubAccount{}, errGitHubEmailMissing
	}

	return domain.GitHubAccount{
		ID:        strconv.FormatInt(profile.ID, 10),
		Login:     profile.Login,
		Name:      profile.Name,
		Email:     email,
		AvatarURL: profile.AvatarURL,
	}, nil
}

func (s *GitHubService) getJSON(ctx context.Context, client *http.Client, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBase+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

var _ ports.GitHubService = (*GitHubService)(nil)
