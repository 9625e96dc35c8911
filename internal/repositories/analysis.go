package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
)

// AnalysisResultWriteRepository persists genuine analysis reports. Fallback
// placeholders are never written here.
type AnalysisResultWriteRepository struct {
	db *sqlx.DB
}

func NewAnalysisResultWriteRepository(db *sqlx.DB) *AnalysisResultWriteRepository {
	return &AnalysisResultWriteRepository{db: db}
}

// Save inserts one analysis result row and returns its id.
func (r *AnalysisResultWriteRepository) Save(
	ctx context.Context,
	userID int64,
	spaceID sql.NullInt64,
	report models.AnalysisReport,
) (int64, error) {
	query := `
		INSERT INTO analysis_results
			(user_id, space_id, overall_score, energy_flow_score, room_placement_score, directional_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	args := []any{
		userID, spaceID,
		report.VastuScore, report.EnergyFlowScore,
		report.RoomPlacementScore, report.DirectionalScore,
	}

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

// AnalysisResultReadRepository handles analysis read operations.
type AnalysisResultReadRepository struct {
	db *sqlx.DB
}

func NewAnalysisResultReadRepository(db *sqlx.DB) *AnalysisResultReadRepository {
	return &AnalysisResultReadRepository{db: db}
}

// ListRecentByUserID returns the user's most recent analyses, newest first,
// capped at limit.
func (r *AnalysisResultReadRepository) ListRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.AnalysisResultDB, error) {
	query := `
		SELECT id, user_id, space_id, overall_score, energy_flow_score,
		       room_placement_score, directional_score, created_at
		FROM analysis_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var results []models.AnalysisResultDB
	err := r.db.SelectContext(ctx, &results, query, userID, limit)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{userID, limit},
		"result", len(results),
		"error", err,
	)

	return results, err
}
