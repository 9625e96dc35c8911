package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/purlyedit/vastu-vision/internal/logger"
)

// SessionTokenRepository manages remember-me token rows.
type SessionTokenRepository struct {
	db *sqlx.DB
}

func NewSessionTokenRepository(db *sqlx.DB) *SessionTokenRepository {
	return &SessionTokenRepository{db: db}
}

// Save inserts a remember-me token for the user.
func (r *SessionTokenRepository) Save(
	ctx context.Context,
	userID int64,
	token, ipAddress, userAgent string,
	expiresAt time.Time,
) error {
	query := `
		INSERT INTO user_sessions (user_id, session_token, ip_address, user_agent, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query, userID, token, ipAddress, userAgent, expiresAt)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{userID, "<redacted>", ipAddress, userAgent, expiresAt},
		"error", err,
	)

	return err
}

// DeleteByToken removes a remember-me token, typically on logout.
func (r *SessionTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	query := `DELETE FROM user_sessions WHERE session_token = $1`

	_, err := r.db.ExecContext(ctx, query, token)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{"<redacted>"},
		"error", err,
	)

	return err
}

// DeleteExpired clears rows past their expiry. Intended for periodic
// housekeeping.
func (r *SessionTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM user_sessions WHERE expires_at < NOW()`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
