package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bigmanpc/api/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

const adminUserColumns = `id, username, password, email, full_name, is_active, last_login, created_at`

type AdminUserRepository struct {
	pool *pgxpool.Pool
}

func NewAdminUserRepository(pool *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{pool: pool}
}

func scanAdminUser(row pgx.Row) (models.AdminUser, error) {
	var u models.AdminUser
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Email,
		&u.FullName,
		&u.IsActive,
		&u.LastLogin,
		&u.CreatedAt,
	)
	return u, err
}

// FindActiveByUsername only matches active accounts; login treats a
// suspended account the same as an absent one.
func (r *AdminUserRepository) FindActiveByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE username = $1 AND is_active`

	u, err := scanAdminUser(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.AdminUser{}, ErrUserNotFound
		}
		return models.AdminUser{}, err
	}
	return u, nil
}

func (r *AdminUserRepository) GetByID(ctx context.Context, id int64) (models.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE id = $1`

	u, err := scanAdminUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.AdminUser{}, ErrUserNotFound
		}
		return models.AdminUser{}, err
	}
	return u, nil
}

func (r *AdminUserRepository) List(ctx context.Context) ([]models.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.AdminUser
	for rows.Next() {
		u, err := scanAdminUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *AdminUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM admin_users WHERE username = $1)`, username,
	).Scan(&exists)
	return exists, err
}

func (r *AdminUserRepository) Create(ctx context.Context, user models.AdminUser) (int64, error) {
	const query = `
		INSERT INTO admin_users (username, password, email, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.FullName,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AdminUserRepository) UpdateProfile(ctx context.Context, id int64, email, fullName string, isActive bool) error {
	const query = `UPDATE admin_users SET email = $2, full_name = $3, is_active = $4 WHERE id = $1`

	cmd, err := r.pool.Exec(ctx, query, id, email, fullName, isActive)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *AdminUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash []byte) error {
	const query = `UPDATE admin_users SET password = $2 WHERE id = $1`

	cmd, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *AdminUserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE admin_users SET last_login = NOW() WHERE id = $1`, id)
	return err
}
