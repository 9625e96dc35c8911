package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

// ErrUserNotFound is returned when an authenticated user id no longer
// resolves to a row.
var ErrUserNotFound = errors.New("user not found")

// SpaceWriter persists a space with its rooms atomically.
type SpaceWriter interface {
	Save(ctx context.Context, userID int64, plotSize, roomType, orientation string, floorNumber int, rooms []models.RoomInput, ipAddress string) (int64, error)
}

// SpaceReader reads a user's spaces with their rooms.
type SpaceReader interface {
	GetByUserID(ctx context.Context, userID int64) ([]models.SpaceWithRooms, error)
}

// FloorPlanReader reads a user's recent floor plans.
type FloorPlanReader interface {
	ListRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.FloorPlanDB, error)
}

// AnalysisReader reads a user's recent analyses.
type AnalysisReader interface {
	ListRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.AnalysisResultDB, error)
}

// Limits for the user-data aggregation.
const (
	RecentFloorPlanLimit = 10
	RecentAnalysisLimit  = 5
)

// SpaceService handles space persistence and the user-data aggregation.
type SpaceService struct {
	writer      SpaceWriter
	reader      SpaceReader
	users       UserReader
	floorPlans  FloorPlanReader
	analyses    AnalysisReader
	kafkaWriter KafkaWriter
}

// NewSpaceService creates a new SpaceService.
func NewSpaceService(
	writer SpaceWriter,
	reader SpaceReader,
	users UserReader,
	floorPlans FloorPlanReader,
	analyses AnalysisReader,
	kafkaWriter KafkaWriter,
) *SpaceService {
	return &SpaceService{
		writer:      writer,
		reader:      reader,
		users:       users,
		floorPlans:  floorPlans,
		analyses:    analyses,
		kafkaWriter: kafkaWriter,
	}
}

// SaveSpace validates the submission and persists the space, its rooms and
// the audit row as one transaction. Nothing is written when validation
// fails.
func (svc *SpaceService) SaveSpace(
	ctx context.Context,
	userID int64,
	plotSize, roomType, orientation string,
	floorNumber int,
	rooms []models.RoomInput,
	ipAddress string,
) (int64, error) {
	if err := validation.ValidateSpace(plotSize, roomType, orientation, floorNumber, rooms); err != nil {
		return 0, err
	}

	spaceID, err := svc.writer.Save(ctx, userID, plotSize, roomType, orientation, floorNumber, rooms, ipAddress)
	if err != nil {
		logger.Log.Errorw("failed to save space", "user_id", userID, "error", err)
		return 0, err
	}

	publishActivityEvent(ctx, svc.kafkaWriter, models.ActivityEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		UserID:      userID,
		Action:      models.ActionSpaceCreated,
		Description: fmt.Sprintf("Created space with %d rooms", len(rooms)),
		IPAddress:   ipAddress,
	})

	return spaceID, nil
}

// UserData is the aggregation returned to the dashboard.
type UserData struct {
	User       *models.UserDB            `json:"user"`
	Spaces     []models.SpaceWithRooms   `json:"spaces"`
	FloorPlans []models.FloorPlanDB      `json:"floor_plans"`
	Analyses   []models.AnalysisResultDB `json:"analyses"`
}

// GetUserData returns the user's profile, spaces with nested rooms, recent
// floor plans and recent analyses. Read-only: calling it twice without
// intervening writes returns identical results.
func (svc *SpaceService) GetUserData(ctx context.Context, userID int64) (*UserData, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	spaces, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get spaces", "user_id", userID, "error", err)
		return nil, err
	}

	floorPlans, err := svc.floorPlans.ListRecentByUserID(ctx, userID, RecentFloorPlanLimit)
	if err != nil {
		logger.Log.Errorw("failed to get floor plans", "user_id", userID, "error", err)
		return nil, err
	}

	analyses, err := svc.analyses.ListRecentByUserID(ctx, userID, RecentAnalysisLimit)
	if err != nil {
		logger.Log.Errorw("failed to get analyses", "user_id", userID, "error", err)
		return nil, err
	}

	return &UserData{
		User:       user,
		Spaces:     spaces,
		FloorPlans: floorPlans,
		Analyses:   analyses,
	}, nil
}
