package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"bigmanpc/api/internal/config"
	"bigmanpc/api/internal/models"
	"bigmanpc/api/internal/repository"
	"bigmanpc/api/internal/security"
)

// UserStore is satisfied by repository.AdminUserRepository.
type UserStore interface {
	FindActiveByUsername(ctx context.Context, username string) (models.AdminUser, error)
	GetByID(ctx context.Context, id int64) (models.AdminUser, error)
	List(ctx context.Context) ([]models.AdminUser, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user models.AdminUser) (int64, error)
	UpdateProfile(ctx context.Context, id int64, email, fullName string, isActive bool) error
	UpdatePassword(ctx context.Context, id int64, passwordHash []byte) error
	TouchLastLogin(ctx context.Context, id int64) error
}

type AuthService struct {
	users UserStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users UserStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, cfg: cfg, log: log}
}

type LoginResult struct {
	Token string
	User  models.AdminUser
}

// Login authenticates an admin and issues a session token. Every failure
// mode (unknown username, suspended account, wrong password) collapses to
// ErrInvalidCredentials so responses cannot confirm account existence.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, &ValidationError{Message: "Username and password are required"}
	}

	user, err := s.users.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("last_login update failed")
	}

	token, err := security.GenerateToken(s.cfg.Security.TokenSecret, user.ID, user.Username, s.cfg.Security.TokenTTL)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, User: user}, nil
}

// Verify checks a session token and returns its claims. Tokens are
// stateless: there is no revocation, only expiry.
func (s *AuthService) Verify(token string) (*security.SessionClaims, error) {
	return security.VerifyToken(token, s.cfg.Security.TokenSecret, s.cfg.Security.LegacyTokens)
}
