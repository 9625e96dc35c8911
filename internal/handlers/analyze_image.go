package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/middlewares"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

// ImageAnalyzer defines the interface that the analysis service must implement.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, userID int64, fileName string, content []byte, ipAddress string) (*models.AnalysisOutcome, error)
}

// NewAnalyzeImageHandler returns an HTTP handler scoring a floor plan image.
// The multipart field is "file".
// @Summary Analyze a floor plan image
// @Description Scores an uploaded floor plan image (jpeg or png, max 5 MiB)
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Floor plan image"
// @Success 200 {object} handlers.AnalyzeResponse "Analysis report"
// @Failure 400 {object} handlers.UploadErrorResponse "Validation failure"
// @Failure 401 {object} handlers.UploadErrorResponse "Unauthenticated"
// @Router /analyze/image [post]
// @Security BearerAuth
func NewAnalyzeImageHandler(svc ImageAnalyzer, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal, ok := principalFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Please login first"})
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "No image uploaded"})
			return
		}

		f, fh, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "No image uploaded"})
			return
		}
		defer f.Close()

		content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "File upload error for: " + fh.Filename})
			return
		}

		outcome, err := svc.AnalyzeImage(r.Context(), principal.UserID, fh.Filename, content, middlewares.ClientIP(r))
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
