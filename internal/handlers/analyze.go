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

// SpaceAnalyzer defines the interface that the analysis service must implement.
type SpaceAnalyzer interface {
	AnalyzeSpace(ctx context.Context, userID int64, spaceID *int64, desc models.SpaceDescription, ipAddress string) (*models.AnalysisOutcome, error)
}

// AnalyzeRequest represents a structured space analysis request
// swagger:model AnalyzeRequest
type AnalyzeRequest struct {
	SpaceID     *int64             `json:"space_id,omitempty"` // Optional saved space reference
	PlotSize    string             `json:"plot_size"`          // Plot size label
	RoomType    string             `json:"room_type"`          // Property type
	Orientation string             `json:"orientation"`        // Facing direction
	FloorNumber int                `json:"floor_number"`       // Floor, 0 to 100
	Rooms       []models.RoomInput `json:"rooms"`              // Rooms with their zones
}

// AnalyzeResponse represents the analysis result returned to the client.
// Degraded is true when the placeholder report was substituted.
// swagger:model AnalyzeResponse
type AnalyzeResponse struct {
	Success            bool                    `json:"success"`
	Source             string                  `json:"source"`
	Degraded           bool                    `json:"degraded"`
	VastuScore         float64                 `json:"vastu_score"`
	EnergyFlowScore    float64                 `json:"energy_flow_score"`
	RoomPlacementScore float64                 `json:"room_placement_score"`
	DirectionalScore   float64                 `json:"directional_score"`
	Recommendations    []models.Recommendation `json:"recommendations"`
}

// NewAnalyzeHandler returns an HTTP handler scoring a structured space
// description. The response is always a well-formed report: when the
// external analyzer is unavailable the placeholder is returned with the
// degraded flag set.
// @Summary Analyze a space
// @Description Scores a structured space description against Vastu principles
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body handlers.AnalyzeRequest true "Space description"
// @Success 200 {object} handlers.AnalyzeResponse "Analysis report"
// @Failure 400 {object} handlers.UploadErrorResponse "Validation failure"
// @Failure 401 {object} handlers.UploadErrorResponse "Unauthenticated"
// @Router /analyze [post]
// @Security BearerAuth
func NewAnalyzeHandler(svc SpaceAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal, ok := principalFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Please login first"})
			return
		}

		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Invalid request body"})
			return
		}

		outcome, err := svc.AnalyzeSpace(r.Context(), principal.UserID, req.SpaceID, models.SpaceDescription{
			PlotSize:    req.PlotSize,
			RoomType:    req.RoomType,
			Orientation: req.Orientation,
			FloorNumber: req.FloorNumber,
			Rooms:       req.Rooms,
		}, middlewares.ClientIP(r))
		if err != nil {
			if validation.IsValidation(err) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UploadErrorResponse{Message: err.Error()})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Server error. Please try again later."})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(analyzeResponseFromOutcome(outcome))
	}
}

func analyzeResponseFromOutcome(outcome *models.AnalysisOutcome) AnalyzeResponse {
	return AnalyzeResponse{
		Success:            true,
		Source:             outcome.Source,
		Degraded:           outcome.Degraded(),
		VastuScore:         outcome.Report.VastuScore,
		EnergyFlowScore:    outcome.Report.EnergyFlowScore,
		RoomPlacementScore: outcome.Report.RoomPlacementScore,
		DirectionalScore:   outcome.Report.DirectionalScore,
		Recommendations:    outcome.Report.Recommendations,
	}
}
