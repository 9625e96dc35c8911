package models

import (
	"database/sql"
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64          `json:"id" db:"id"`                       // Primary key
	FirstName    string         `json:"first_name" db:"first_name"`      // Given name
	LastName     string         `json:"last_name" db:"last_name"`        // Family name
	Email        string         `json:"email" db:"email"`                // Unique email address
	Phone        string         `json:"phone" db:"phone"`                // Unique 10-digit mobile number
	Gender       string         `json:"gender" db:"gender"`              // Self-declared gender
	DateOfBirth  sql.NullTime   `json:"date_of_birth" db:"date_of_birth"` // Optional date of birth
	PasswordHash string         `json:"-" db:"password_hash"`            // Bcrypt hash, never serialized
	APIToken     sql.NullString `json:"-" db:"api_token"`                // Optional long-lived API token
	IsActive     bool           `json:"is_active" db:"is_active"`        // False when the account is deactivated
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`      // Registration timestamp
	LastLogin    sql.NullTime   `json:"last_login" db:"last_login"`      // Timestamp of the last successful login
}

// FullName returns the display name stored in the session principal.
func (u *UserDB) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Principal is the request-scoped authenticated identity populated by the
// auth middleware and consumed by handlers.
type Principal struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
