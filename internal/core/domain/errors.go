package domain

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUnknownFilter    = errors.New("unknown task filter")
	ErrInvalidStatus    = errors.New("invalid task status")

	ErrEmailTaken               = errors.New("email already registered")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrPasswordLoginUnavailable = errors.New("password login unavailable for this account")
	ErrPasswordMismatch         = errors.New("current password does not match")
	ErrPasswordRequired         = errors.New("a password must be set first")
	ErrUnsupportedAvatar        = errors.New("unsupported avatar file type")
)
