package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
)

// SpaceWriteRepository persists a space and its rooms as one atomic unit.
type SpaceWriteRepository struct {
	db *sqlx.DB
}

func NewSpaceWriteRepository(db *sqlx.DB) *SpaceWriteRepository {
	return &SpaceWriteRepository{db: db}
}

// Save inserts the space row, one room row per entry in input order and the
// audit row inside a single read-committed transaction. Any failure rolls
// the whole unit back, so no partial space is ever observable.
func (r *SpaceWriteRepository) Save(
	ctx context.Context,
	userID int64,
	plotSize, roomType, orientation string,
	floorNumber int,
	rooms []models.RoomInput,
	ipAddress string,
) (spaceID int64, err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return 0, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				logger.Log.Errorw("rollback failed", "error", rbErr)
			}
		}
	}()

	spaceQuery := `
		INSERT INTO spaces (user_id, plot_size, room_type, orientation, floor_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err = tx.GetContext(ctx, &spaceID, spaceQuery, userID, plotSize, roomType, orientation, floorNumber)

	logger.Log.Infow("query executed",
		"query", collapse(spaceQuery),
		"args", []any{userID, plotSize, roomType, orientation, floorNumber},
		"result", spaceID,
		"error", err,
	)
	if err != nil {
		return 0, err
	}

	roomQuery := `INSERT INTO rooms (space_id, room_name, room_zone) VALUES ($1, $2, $3)`
	for _, room := range rooms {
		if _, err = tx.ExecContext(ctx, roomQuery, spaceID, room.Name, room.Zone); err != nil {
			logger.Log.Errorw("failed to insert room",
				"space_id", spaceID,
				"room", room.Name,
				"zone", room.Zone,
				"error", err,
			)
			return 0, err
		}
	}

	auditQuery := `
		INSERT INTO activity_log (user_id, action, description, ip_address)
		VALUES ($1, $2, $3, $4)
	`
	description := fmt.Sprintf("Created space with %d rooms", len(rooms))
	if _, err = tx.ExecContext(ctx, auditQuery, userID, models.ActionSpaceCreated, description, ipAddress); err != nil {
		logger.Log.Errorw("failed to insert audit row", "user_id", userID, "error", err)
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return 0, err
	}

	return spaceID, nil
}

// SpaceReadRepository handles space read operations.
type SpaceReadRepository struct {
	db *sqlx.DB
}

func NewSpaceReadRepository(db *sqlx.DB) *SpaceReadRepository {
	return &SpaceReadRepository{db: db}
}

// GetByUserID returns all spaces owned by the user, newest first, each with
// its full room set.
func (r *SpaceReadRepository) GetByUserID(ctx context.Context, userID int64) ([]models.SpaceWithRooms, error) {
	spaceQuery := `
		SELECT s.id, s.user_id, s.plot_size, s.room_type, s.orientation, s.floor_number, s.created_at
		FROM spaces s
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
	`

	var spaceRows []models.SpaceDB
	err := r.db.SelectContext(ctx, &spaceRows, spaceQuery, userID)

	logger.Log.Infow("query executed",
		"query", collapse(spaceQuery),
		"args", []any{userID},
		"result", len(spaceRows),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	roomQuery := `
		SELECT id, space_id, room_name, room_zone
		FROM rooms
		WHERE space_id = $1
	`

	spaces := make([]models.SpaceWithRooms, 0, len(spaceRows))
	for _, s := range spaceRows {
		var rooms []models.RoomDB
		if err := r.db.SelectContext(ctx, &rooms, roomQuery, s.ID); err != nil {
			logger.Log.Errorw("failed to load rooms", "space_id", s.ID, "error", err)
			return nil, err
		}
		spaces = append(spaces, models.SpaceWithRooms{
			SpaceDB:   s,
			RoomCount: len(rooms),
			Rooms:     rooms,
		})
	}

	return spaces, nil
}
