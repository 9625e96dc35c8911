package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
)

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `
	id, first_name, last_name, email, phone, gender, date_of_birth,
	password_hash, api_token, is_active, created_at, last_login
`

// GetByEmail returns the user with the given email, or nil when none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByPhone returns the user with the given phone number, or nil when none exists.
func (r *UserReadRepository) GetByPhone(ctx context.Context, phone string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, phone)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{phone},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByAPIToken returns the user holding the given API token, or nil when
// the token is unknown.
func (r *UserReadRepository) GetByAPIToken(ctx context.Context, token string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE api_token = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, token)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{"<redacted>"},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil when none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its id. The password must already be
// hashed; the raw password never reaches this layer.
func (r *UserWriteRepository) Save(
	ctx context.Context,
	firstName, lastName, email, phone, gender string,
	dateOfBirth sql.NullTime,
	passwordHash string,
) (int64, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, phone, gender, date_of_birth, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	args := []any{firstName, lastName, email, phone, gender, dateOfBirth, passwordHash}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{firstName, lastName, email, phone, gender, dateOfBirth},
		"result", id,
		"error", err,
	)

	return id, err
}

// UpdateLastLogin stamps the user's last successful login.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	query := `UPDATE users SET last_login = NOW() WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, userID)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// SetAPIToken stores a freshly minted API token on the user row.
func (r *UserWriteRepository) SetAPIToken(ctx context.Context, userID int64, token string) error {
	query := `UPDATE users SET api_token = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, token, userID)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{"<redacted>", userID},
		"error", err,
	)

	return err
}
