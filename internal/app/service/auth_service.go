package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	secret         []byte
	tokenTTL       time.Duration
	clock          ports.Clock
}

func NewAuthService(userRepository ports.UserRepository, secret string, tokenTTL time.Duration, clock ports.Clock) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		secret:         []byte(secret),
		tokenTTL:       tokenTTL,
		clock:          clock,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.AuthResult, error) {
	if _, err := s.userRepository.GetByEmail(ctx, input.Email); err == nil {
		return domain.AuthResult{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResult{}, err
	}
	hashed := string(hash)

	user, err := s.userRepository.Create(ctx, domain.CreateUserInput{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: &hashed,
		Provider:     domain.ProviderEmail,
	})
	if err != nil {
		return domain.AuthResult{}, err
	}

	return s.result(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.AuthResult{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResult{}, err
	}

	// GitHub-only accounts have no password hash; password login for them is
	// rejected outright rather than compared against an empty hash.
	if !user.HasPassword() {
		return domain.AuthResult{}, domain.ErrPasswordLoginUnavailable
	}

	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return domain.AuthResult{}, domain.ErrInvalidCredentials
	}

	return s.result(user)
}

func (s *AuthService) User(ctx context.Context, userID uint64) (domain.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

func (s *AuthService) IssueToken(user domain.User) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AuthService) VerifyToken(token string) (uint64, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return 0, err
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, jwt.ErrTokenInvalidSubject
	}
	return strconv.ParseUint(claims.Subject, 10, 64)
}

func (s *AuthService) result(user domain.User) (domain.AuthResult, error) {
	token, err := s.IssueToken(user)
	if err != nil {
		return domain.AuthResult{}, err
	}
	return domain.AuthResult{User: user, Token: token}, nil
}

var _ ports.AuthService = (*AuthService)(nil)
