package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/services"
)

// UserDataProvider defines the interface that the space service must implement.
type UserDataProvider interface {
	GetUserData(ctx context.Context, userID int64) (*services.UserData, error)
}

// UserDataResponse aggregates the dashboard payload for the current user
// swagger:model UserDataResponse
type UserDataResponse struct {
	Success    bool                      `json:"success"`
	User       *models.UserDB            `json:"user"`
	Spaces     []models.SpaceWithRooms   `json:"spaces"`
	FloorPlans []models.FloorPlanDB      `json:"floor_plans"`
	Analyses   []models.AnalysisResultDB `json:"analyses"`
}

// NewUserDataHandler returns an HTTP handler serving the aggregated profile,
// spaces, recent floor plans and recent analyses of the authenticated user.
// @Summary Get user data
// @Description Returns the user profile together with saved spaces, recent floor plans and recent analyses
// @Tags user
// @Produce json
// @Success 200 {object} handlers.UserDataResponse "Aggregated user data"
// @Failure 401 {object} handlers.UploadErrorResponse "Unauthenticated"
// @Failure 500 {object} handlers.UploadErrorResponse "Server error"
// @Router /user-data [get]
// @Security BearerAuth
func NewUserDataHandler(svc UserDataProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal, ok := principalFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Please login first"})
			return
		}

		data, err := svc.GetUserData(r.Context(), principal.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Server error. Please try again later."})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserDataResponse{
			Success:    true,
			User:       data.User,
			Spaces:     data.Spaces,
			FloorPlans: data.FloorPlans,
			Analyses:   data.Analyses,
		})
	}
}
