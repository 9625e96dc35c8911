package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

// BlobStore persists floor plan binaries.
type BlobStore interface {
	Save(ctx context.Context, storedName string, content []byte) error
	Remove(ctx context.Context, storedName string) error
}

// FloorPlanWriter persists floor plan metadata rows.
type FloorPlanWriter interface {
	Save(ctx context.Context, userID int64, fileName, storedPath, mimeType string, sizeBytes int64) (int64, error)
}

// FileUpload is one file of an upload batch.
type FileUpload struct {
	Name    string // Client-supplied name, used for display only
	Size    int64  // Declared size
	Content []byte
}

// UploadService validates and stores floor plan batches.
type UploadService struct {
	store       BlobStore
	writer      FloorPlanWriter
	activity    ActivityAppender
	kafkaWriter KafkaWriter

	maxSizeBytes int64
	allowedTypes []string
	baseURL      string
}

// NewUploadService creates a new UploadService.
func NewUploadService(
	store BlobStore,
	writer FloorPlanWriter,
	activity ActivityAppender,
	kafkaWriter KafkaWriter,
	maxSizeBytes int64,
	allowedTypes []string,
	baseURL string,
) *UploadService {
	return &UploadService{
		store:        store,
		writer:       writer,
		activity:     activity,
		kafkaWriter:  kafkaWriter,
		maxSizeBytes: maxSizeBytes,
		allowedTypes: allowedTypes,
		baseURL:      baseURL,
	}
}

// StoreFloorPlans validates the whole batch before any blob is written, then
// stores each file and its metadata row. Validation uses the sniffed content
// type, never the client-declared one. A persistence failure mid-batch stops
// processing of the remaining files; already-stored files are kept.
func (svc *UploadService) StoreFloorPlans(ctx context.Context, userID int64, files []FileUpload, ipAddress string) ([]models.UploadedFile, error) {
	if len(files) == 0 {
		return nil, &validation.Error{Message: "No files uploaded"}
	}

	// Whole-batch validation before the first write.
	sniffed := make([]string, len(files))
	for i, f := range files {
		if f.Size > svc.maxSizeBytes || int64(len(f.Content)) > svc.maxSizeBytes {
			return nil, &validation.Error{Message: fmt.Sprintf("File too large: %s (Max: 5MB)", f.Name)}
		}

		mtype := mimetype.Detect(f.Content)
		if !svc.allowed(mtype) {
			return nil, &validation.Error{Message: fmt.Sprintf("Invalid file type for: %s", f.Name)}
		}
		sniffed[i] = normalizeMime(mtype.String())
	}

	uploaded := make([]models.UploadedFile, 0, len(files))
	for i, f := range files {
		storedName := storedFileName(f.Name)

		if err := svc.store.Save(ctx, storedName, f.Content); err != nil {
			logger.Log.Errorw("failed to save blob", "file", f.Name, "error", err)
			return nil, err
		}

		id, err := svc.writer.Save(ctx, userID, f.Name, storedName, sniffed[i], int64(len(f.Content)))
		if err != nil {
			logger.Log.Errorw("failed to save floor plan metadata", "file", f.Name, "error", err)
			// Keep blob store and metadata consistent for this file.
			if rmErr := svc.store.Remove(ctx, storedName); rmErr != nil {
				logger.Log.Errorw("failed to remove orphaned blob", "stored_name", storedName, "error", rmErr)
			}
			return nil, err
		}

		uploaded = append(uploaded, models.UploadedFile{
			ID:   id,
			Name: f.Name,
			Size: int64(len(f.Content)),
			Type: sniffed[i],
			URL:  svc.baseURL + "/uploads/" + storedName,
		})
	}

	description := fmt.Sprintf("Uploaded %d floor plan(s)", len(uploaded))
	if err := svc.activity.Append(ctx, userID, models.ActionFloorPlanUpload, description, ipAddress); err != nil {
		logger.Log.Errorw("failed to append upload audit row", "user_id", userID, "error", err)
	}

	publishActivityEvent(ctx, svc.kafkaWriter, models.ActivityEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		UserID:      userID,
		Action:      models.ActionFloorPlanUpload,
		Description: description,
		IPAddress:   ipAddress,
	})

	return uploaded, nil
}

func (svc *UploadService) allowed(mtype *mimetype.MIME) bool {
	for _, t := range svc.allowedTypes {
		if mtype.Is(t) {
			return true
		}
	}
	return false
}

// normalizeMime strips parameters like charset from a sniffed type.
func normalizeMime(m string) string {
	if idx := strings.IndexByte(m, ';'); idx >= 0 {
		m = m[:idx]
	}
	return strings.TrimSpace(m)
}

// storedFileName builds a collision-resistant name from a random component
// and the current time. The client-supplied name contributes only its
// extension, so it can never traverse paths or overwrite another blob.
func storedFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s_%d%s", random, time.Now().Unix(), ext)
}
