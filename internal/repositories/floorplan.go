package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
)

// FloorPlanWriteRepository persists floor plan metadata rows.
type FloorPlanWriteRepository struct {
	db *sqlx.DB
}

func NewFloorPlanWriteRepository(db *sqlx.DB) *FloorPlanWriteRepository {
	return &FloorPlanWriteRepository{db: db}
}

// Save inserts a metadata row for a stored floor plan and returns its id.
func (r *FloorPlanWriteRepository) Save(
	ctx context.Context,
	userID int64,
	fileName, storedPath, mimeType string,
	sizeBytes int64,
) (int64, error) {
	query := `
		INSERT INTO floor_plans (user_id, file_name, stored_path, mime_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	args := []any{userID, fileName, storedPath, mimeType, sizeBytes}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// FloorPlanReadRepository handles floor plan read operations.
type FloorPlanReadRepository struct {
	db *sqlx.DB
}

func NewFloorPlanReadRepository(db *sqlx.DB) *FloorPlanReadRepository {
	return &FloorPlanReadRepository{db: db}
}

// ListRecentByUserID returns the user's most recent floor plans, newest
// first, capped at limit.
func (r *FloorPlanReadRepository) ListRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.FloorPlanDB, error) {
	query := `
		SELECT id, user_id, file_name, stored_path, mime_type, size_bytes, uploaded_at
		FROM floor_plans
		WHERE user_id = $1
		ORDER BY uploaded_at DESC
		LIMIT $2
	`

	var plans []models.FloorPlanDB
	err := r.db.SelectContext(ctx, &plans, query, userID, limit)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{userID, limit},
		"result", len(plans),
		"error", err,
	)

	return plans, err
}
