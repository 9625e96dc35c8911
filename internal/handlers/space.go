package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/middlewares"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

// SpaceSaver defines the interface that the space service must implement.
type SpaceSaver interface {
	SaveSpace(ctx context.Context, userID int64, plotSize, roomType, orientation string, floorNumber int, rooms []models.RoomInput, ipAddress string) (int64, error)
}

// SpaceRoom is one room entry in a space submission.
type SpaceRoom struct {
	// Room name
	// required: true
	// example: Living Room
	Name string `json:"name"`

	// One of the eight compass directions or "center"
	// required: true
	// example: north
	Zone string `json:"zone"`
}

// SpaceRequest represents the JSON body for saving a space
// swagger:model SpaceRequest
type SpaceRequest struct {
	// Plot size, free text with unit
	// required: true
	// example: 30x40 ft
	PlotSize string `json:"plotSize"`

	// Space type
	// required: true
	// example: apartment
	RoomType string `json:"roomType"`

	// Facing direction
	// required: true
	// example: east
	Orientation string `json:"orientation"`

	// Floor number, 0 for ground floor
	// example: 2
	FloorNumber int `json:"floorNumber"`

	// Rooms, at least one
	// required: true
	Rooms []SpaceRoom `json:"rooms"`
}

// SpaceResponse represents a successful space save response
// swagger:model SpaceResponse
type SpaceResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SpaceID int64  `json:"space_id"`
}

// SpaceErrorResponse represents an error response for space save
// swagger:model SpaceErrorResponse
type SpaceErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewSpaceHandler returns an HTTP handler that saves a space with its rooms
// as one atomic unit.
// @Summary Save a space
// @Description Persists a space and its rooms transactionally. Nothing is written when any room is malformed.
// @Tags space
// @Accept json
// @Produce json
// @Param spaceRequest body handlers.SpaceRequest true "Space submission"
// @Success 200 {object} handlers.SpaceResponse "Space saved"
// @Failure 400 {object} handlers.SpaceErrorResponse "Validation failure"
// @Failure 401 {object} handlers.SpaceErrorResponse "Unauthenticated"
// @Router /space [post]
// @Security BearerAuth
func NewSpaceHandler(svc SpaceSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal, ok := principalFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SpaceErrorResponse{Message: "Please login first"})
			return
		}

		var req SpaceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SpaceErrorResponse{Message: "Invalid request body"})
			return
		}

		rooms := make([]models.RoomInput, 0, len(req.Rooms))
		for _, room := range req.Rooms {
			rooms = append(rooms, models.RoomInput{Name: room.Name, Zone: room.Zone})
		}

		spaceID, err := svc.SaveSpace(r.Context(), principal.UserID, req.PlotSize, req.RoomType, req.Orientation, req.FloorNumber, rooms, middlewares.ClientIP(r))
		if err != nil {
			if validation.IsValidation(err) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SpaceErrorResponse{Message: err.Error()})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SpaceErrorResponse{Message: "Server error. Please try again later."})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SpaceResponse{
			Success: true,
			Message: "Space saved successfully!",
			SpaceID: spaceID,
		})
	}
}
