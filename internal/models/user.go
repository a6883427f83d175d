package models

import "time"

// AdminUser is a back-office account. Accounts are provisioned through the
// protected /users endpoints; shoppers never have one.
type AdminUser struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash []byte     `json:"-"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
}
