package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
)

// allowed avatar extensions, matching the upload validation.
var avatarExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

type ProfileService struct {
	userRepository ports.UserRepository
	avatarDir      string
}

func NewProfileService(userRepository ports.UserRepository, avatarDir string) *ProfileService {
	return &ProfileService{userRepository: userRepository, avatarDir: avatarDir}
}

func (s *ProfileService) Show(ctx context.Context, userID uint64) (domain.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

func (s *ProfileService) Update(ctx context.Context, userID uint64, input domain.UpdateProfileInput) (domain.User, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if input.Email != user.Email {
		if other, err := s.userRepository.GetByEmail(ctx, input.Email); err == nil && other.ID != userID {
			return domain.User{}, domain.ErrEmailTaken
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, err
		}
	}

	update := domain.UpdateUserInput{Name: &input.Name, Email: &input.Email}

	if input.NewPassword != nil && *input.NewPassword != "" {
		if input.CurrentPassword == nil || !user.HasPassword() {
			return domain.User{}, domain.ErrPasswordMismatch
		}
		if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(*input.CurrentPassword)) != nil {
			return domain.User{}, domain.ErrPasswordMismatch
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	return s.userRepository.Update(ctx, userID, update)
}

// UpdateAvatar stores the uploaded image under a fresh uuid name and removes
// the previous file, if any.
func (s *ProfileService) UpdateAvatar(ctx context.Context, userID uint64, upload domain.AvatarUpload) (domain.User, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !avatarExtensions[ext] {
		return domain.User{}, domain.ErrUnsupportedAvatar
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if err := os.MkdirAll(s.avatarDir, 0o755); err != nil {
		return domain.User{}, err
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(s.avatarDir, name), upload.Content, 0o644); err != nil {
		return domain.User{}, err
	}

	s.removeStoredAvatar(user)

	path := "avatars/" + name
	updated, err := s.userRepository.Update(ctx, userID, domain.UpdateUserInput{Avatar: &path, AvatarSet: true})
	if err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

func (s *ProfileService) DeleteAvatar(ctx context.Context, userID uint64) error {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	s.removeStoredAvatar(user)

	_, err = s.userRepository.Update(ctx, userID, domain.UpdateUserInput{AvatarSet: true})
	return err
}

// removeStoredAvatar deletes the user's avatar file when it lives in the
// local store. GitHub avatar URLs are left alone.
func (s *ProfileService) removeStoredAvatar(user domain.User) {
	if user.Avatar == nil || !strings.HasPrefix(*user.Avatar, "avatars/") {
		return
	}
	path := filepath.Join(s.avatarDir, strings.TrimPrefix(*user.Avatar, "avatars/"))
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		zap.L().Warn("failed to remove old avatar", zap.String("path", path), zap.Error(err))
	}
}

var _ ports.ProfileService = (*ProfileService)(nil)
