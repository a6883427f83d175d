package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"bigmanpc/api/internal/models"
	"bigmanpc/api/internal/security"
)

type UserService struct {
	users UserStore
	log   zerolog.Logger
}

func NewUserService(users UserStore, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) List(ctx context.Context) ([]models.AdminUser, error) {
	return s.users.List(ctx)
}

type CreateUserInput struct {
	Username string
	Password string
	Email    string
	FullName string
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (int64, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return 0, &ValidationError{Message: "Username and password are required"}
	}

	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrUsernameTaken
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return 0, err
	}

	return s.users.Create(ctx, models.AdminUser{
		Username:     username,
		PasswordHash: hash,
		Email:        strings.TrimSpace(input.Email),
		FullName:     strings.TrimSpace(input.FullName),
	})
}

type UpdateUserInput struct {
	UserID   int64
	Email    string
	FullName string
	IsActive bool
}

func (s *UserService) UpdateProfile(ctx context.Context, input UpdateUserInput) error {
	return s.users.UpdateProfile(ctx, input.UserID,
		strings.TrimSpace(input.Email), strings.TrimSpace(input.FullName), input.IsActive)
}

type ChangePasswordInput struct {
	UserID          int64
	CurrentPassword string
	NewPassword     string
}

// ChangePassword requires proof of the current password even though the
// caller already holds a valid token.
func (s *UserService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return &ValidationError{Message: "Current password and new password are required"}
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	if !security.VerifyPassword(input.CurrentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := security.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, user.ID, hash)
}
