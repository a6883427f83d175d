package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"bigmanpc/api/internal/config"
	"bigmanpc/api/internal/models"
	"bigmanpc/api/internal/repository"
	"bigmanpc/api/internal/security"
)

type fakeUserStore struct {
	users      map[int64]models.AdminUser
	lastLogins map[int64]int
	nextID     int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:      make(map[int64]models.AdminUser),
		lastLogins: make(map[int64]int),
		nextID:     1,
	}
}

func (f *fakeUserStore) addUser(username, password string, active bool) models.AdminUser {
	hash, _ := security.HashPassword(password)
	user := models.AdminUser{
		ID:           f.nextID,
		Username:     username,
		PasswordHash: hash,
		IsActive:     active,
	}
	f.users[user.ID] = user
	f.nextID++
	return user
}

func (f *fakeUserStore) FindActiveByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	for _, u := range f.users {
		if u.Username == username && u.IsActive {
			return u, nil
		}
	}
	return models.AdminUser{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (models.AdminUser, error) {
	u, ok := f.users[id]
	if !ok {
		return models.AdminUser{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]models.AdminUser, error) {
	var out []models.AdminUser
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Create(ctx context.Context, user models.AdminUser) (int64, error) {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, id int64, email, fullName string, isActive bool) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Email, u.FullName, u.IsActive = email, fullName, isActive
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, id int64, passwordHash []byte) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) TouchLastLogin(ctx context.Context, id int64) error {
	f.lastLogins[id]++
	return nil
}

func testAuthConfig() *config.AppConfig {
	return &config.AppConfig{
		Security: config.SecurityConfig{
			TokenSecret: "test-secret",
			TokenTTL:    24 * time.Hour,
		},
	}
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeUserStore()
	user := store.addUser("admin", "hunter22", true)
	svc := NewAuthService(store, testAuthConfig(), zerolog.Nop())

	result, err := svc.Login(context.Background(), "admin", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.User.ID != user.ID {
		t.Errorf("User.ID = %d, want %d", result.User.ID, user.ID)
	}
	if store.lastLogins[user.ID] != 1 {
		t.Errorf("last_login touches = %d, want 1", store.lastLogins[user.ID])
	}

	claims, err := svc.Verify(result.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginFailureIsGeneric(t *testing.T) {
	store := newFakeUserStore()
	store.addUser("admin", "hunter22", true)
	store.addUser("ghost", "hunter22", false)
	svc := NewAuthService(store, testAuthConfig(), zerolog.Nop())

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "nobody", "hunter22"},
		{"inactive user", "ghost", "hunter22"},
		{"wrong password", "admin", "wrong"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.username, tc.password)
			if err != ErrInvalidCredentials {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testAuthConfig(), zerolog.Nop())

	_, err := svc.Login(context.Background(), "", "")
	if _, ok := AsValidation(err); !ok {
		t.Errorf("err = %v, want ValidationError", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	cfg := testAuthConfig()
	cfg.Security.TokenTTL = -time.Minute
	store := newFakeUserStore()
	store.addUser("admin", "hunter22", true)
	svc := NewAuthService(store, cfg, zerolog.Nop())

	result, err := svc.Login(context.Background(), "admin", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.Verify(result.Token); err == nil {
		t.Error("expired token verified")
	}
}

func TestVerifyLegacyTokenGate(t *testing.T) {
	legacy := security.GenerateLegacyToken(5, "admin", time.Hour)

	svc := NewAuthService(newFakeUserStore(), testAuthConfig(), zerolog.Nop())
	if _, err := svc.Verify(legacy); err == nil {
		t.Error("legacy token accepted without compat flag")
	}

	cfg := testAuthConfig()
	cfg.Security.LegacyTokens = true
	svc = NewAuthService(newFakeUserStore(), cfg, zerolog.Nop())
	claims, err := svc.Verify(legacy)
	if err != nil {
		t.Fatalf("legacy token rejected with compat flag: %v", err)
	}
	if claims.UserID != 5 {
		t.Errorf("claims.UserID = %d, want 5", claims.UserID)
	}
}

func TestUserCreateDuplicate(t *testing.T) {
	store := newFakeUserStore()
	store.addUser("admin", "hunter22", true)
	svc := NewUserService(store, zerolog.Nop())

	_, err := svc.Create(context.Background(), CreateUserInput{Username: "admin", Password: "pw"})
	if err != ErrUsernameTaken {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}

	_, err = svc.Create(context.Background(), CreateUserInput{Username: "", Password: ""})
	if _, ok := AsValidation(err); !ok {
		t.Errorf("err = %v, want ValidationError", err)
	}

	id, err := svc.Create(context.Background(), CreateUserInput{Username: "second", Password: "pw2"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == 0 {
		t.Error("expected generated id")
	}
}

func TestChangePassword(t *testing.T) {
	store := newFakeUserStore()
	user := store.addUser("admin", "oldpw", true)
	svc := NewUserService(store, zerolog.Nop())

	err := svc.ChangePassword(context.Background(), ChangePasswordInput{
		UserID: user.ID, CurrentPassword: "wrong", NewPassword: "newpw",
	})
	if err != ErrWrongPassword {
		t.Errorf("err = %v, want ErrWrongPassword", err)
	}

	err = svc.ChangePassword(context.Background(), ChangePasswordInput{
		UserID: user.ID, CurrentPassword: "oldpw", NewPassword: "newpw",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if !security.VerifyPassword("newpw", store.users[user.ID].PasswordHash) {
		t.Error("new password not stored")
	}
}
