package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/middlewares"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/services"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

// FloorPlanStorer defines the interface that the upload service must implement.
type FloorPlanStorer interface {
	StoreFloorPlans(ctx context.Context, userID int64, files []services.FileUpload, ipAddress string) ([]models.UploadedFile, error)
}

// UploadResponse represents a successful upload response
// swagger:model UploadResponse
type UploadResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Files   []models.UploadedFile `json:"files"`
}

// UploadErrorResponse represents an error response for uploads
// swagger:model UploadErrorResponse
type UploadErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewUploadHandler returns an HTTP handler for floor plan uploads. The
// multipart field is "files"; the whole batch is validated before any file
// is stored.
// @Summary Upload floor plans
// @Description Stores floor plan files (jpeg, png or pdf, max 5 MiB each) and their metadata
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Floor plan files"
// @Success 200 {object} handlers.UploadResponse "Files stored"
// @Failure 400 {object} handlers.UploadErrorResponse "Validation failure"
// @Failure 401 {object} handlers.UploadErrorResponse "Unauthenticated"
// @Router /upload [post]
// @Security BearerAuth
func NewUploadHandler(svc FloorPlanStorer, maxUploadBytes int64) http.HandlerFunc {
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
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "No files uploaded"})
			return
		}

		headers := r.MultipartForm.File["files"]
		files := make([]services.FileUpload, 0, len(headers))
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UploadErrorResponse{Message: "File upload error for: " + fh.Filename})
				return
			}
			// Read one byte past the limit so oversized files are caught
			// without buffering them whole.
			content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
			f.Close()
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UploadErrorResponse{Message: "File upload error for: " + fh.Filename})
				return
			}
			files = append(files, services.FileUpload{
				Name:    fh.Filename,
				Size:    fh.Size,
				Content: content,
			})
		}

		uploaded, err := svc.StoreFloorPlans(r.Context(), principal.UserID, files, middlewares.ClientIP(r))
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
		json.NewEncoder(w).Encode(UploadResponse{
			Success: true,
			Message: "Files uploaded successfully!",
			Files:   uploaded,
		})
	}
}
