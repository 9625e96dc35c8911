package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/purlyedit/vastu-vision/internal/logger"
)

// ActivityLogRepository appends to the audit trail. Rows are never updated
// or deleted.
type ActivityLogRepository struct {
	db *sqlx.DB
}

func NewActivityLogRepository(db *sqlx.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Append records one audit entry.
func (r *ActivityLogRepository) Append(ctx context.Context, userID int64, action, description, ipAddress string) error {
	query := `
		INSERT INTO activity_log (user_id, action, description, ip_address)
		VALUES ($1, $2, $3, $4)
	`
	args := []any{userID, action, description, ipAddress}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	return err
}
