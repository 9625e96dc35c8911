package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
	"github.com/purlyedit/vastu-vision/internal/validation"
)

// AnalysisGateway talks to the external scoring service.
type AnalysisGateway interface {
	AnalyzeSpace(ctx context.Context, desc models.SpaceDescription) (*models.AnalysisReport, error)
	AnalyzeImage(ctx context.Context, fileName string, content []byte) (*models.AnalysisReport, error)
}

// AnalysisCache caches genuine reports per space.
type AnalysisCache interface {
	GetReportForSpace(ctx context.Context, spaceID int64) (*models.AnalysisReport, error)
	SetReportForSpace(ctx context.Context, spaceID int64, report models.AnalysisReport) error
}

// AnalysisWriter persists genuine reports.
type AnalysisWriter interface {
	Save(ctx context.Context, userID int64, spaceID sql.NullInt64, report models.AnalysisReport) (int64, error)
}

// AnalysisMetrics counts analysis outcomes.
type AnalysisMetrics interface {
	RecordAnalysisSuccess()
	RecordAnalysisFallback()
}

// imageAnalysisTypes are the content types accepted for image analysis.
var imageAnalysisTypes = []string{"image/jpeg", "image/png"}

// AnalysisService relays analyses to the external collaborator with an
// explicit degraded mode: when the collaborator is unreachable or returns
// malformed output, the fixed placeholder report is substituted and marked
// as such, and the user flow continues. Placeholder reports are never
// persisted or cached.
type AnalysisService struct {
	gateway     AnalysisGateway
	cache       AnalysisCache
	writer      AnalysisWriter
	activity    ActivityAppender
	metrics     AnalysisMetrics
	kafkaWriter KafkaWriter

	maxImageBytes int64
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(
	gateway AnalysisGateway,
	cache AnalysisCache,
	writer AnalysisWriter,
	activity ActivityAppender,
	metrics AnalysisMetrics,
	kafkaWriter KafkaWriter,
	maxImageBytes int64,
) *AnalysisService {
	return &AnalysisService{
		gateway:       gateway,
		cache:         cache,
		writer:        writer,
		activity:      activity,
		metrics:       metrics,
		kafkaWriter:   kafkaWriter,
		maxImageBytes: maxImageBytes,
	}
}

// AnalyzeSpace scores a structured space description. When spaceID is
// non-nil a cached report for that space is served without an external
// call, and a fresh genuine report is cached under it.
func (svc *AnalysisService) AnalyzeSpace(
	ctx context.Context,
	userID int64,
	spaceID *int64,
	desc models.SpaceDescription,
	ipAddress string,
) (*models.AnalysisOutcome, error) {
	if err := validation.ValidateSpace(desc.PlotSize, desc.RoomType, desc.Orientation, desc.FloorNumber, desc.Rooms); err != nil {
		return nil, err
	}

	if spaceID != nil && svc.cache != nil {
		if cached, err := svc.cache.GetReportForSpace(ctx, *spaceID); err == nil {
			return &models.AnalysisOutcome{Source: models.SourceCache, Report: *cached}, nil
		}
	}

	report, err := svc.gateway.AnalyzeSpace(ctx, desc)
	if err != nil {
		svc.metrics.RecordAnalysisFallback()
		logger.Log.Warnw("analysis degraded to placeholder", "user_id", userID, "error", err)
		return &models.AnalysisOutcome{Source: models.SourceFallback, Report: models.FallbackReport()}, nil
	}
	svc.metrics.RecordAnalysisSuccess()

	svc.recordReport(ctx, userID, spaceID, *report, ipAddress, "Analyzed space")

	return &models.AnalysisOutcome{Source: models.SourceService, Report: *report}, nil
}

// AnalyzeImage scores a floor plan image.
func (svc *AnalysisService) AnalyzeImage(
	ctx context.Context,
	userID int64,
	fileName string,
	content []byte,
	ipAddress string,
) (*models.AnalysisOutcome, error) {
	if len(content) == 0 {
		return nil, &validation.Error{Message: "No image uploaded"}
	}
	if int64(len(content)) > svc.maxImageBytes {
		return nil, &validation.Error{Message: fmt.Sprintf("File too large: %s (Max: 5MB)", fileName)}
	}
	mtype := mimetype.Detect(content)
	supported := false
	for _, t := range imageAnalysisTypes {
		if mtype.Is(t) {
			supported = true
			break
		}
	}
	if !supported {
		return nil, &validation.Error{Message: fmt.Sprintf("Invalid file type for: %s", fileName)}
	}

	report, err := svc.gateway.AnalyzeImage(ctx, fileName, content)
	if err != nil {
		svc.metrics.RecordAnalysisFallback()
		logger.Log.Warnw("image analysis degraded to placeholder", "user_id", userID, "error", err)
		return &models.AnalysisOutcome{Source: models.SourceFallback, Report: models.FallbackReport()}, nil
	}
	svc.metrics.RecordAnalysisSuccess()

	svc.recordReport(ctx, userID, nil, *report, ipAddress, "Analyzed floor plan image")

	return &models.AnalysisOutcome{Source: models.SourceService, Report: *report}, nil
}

// recordReport persists and caches a genuine report. Failures here are
// logged but do not fail the analysis the user already has.
func (svc *AnalysisService) recordReport(
	ctx context.Context,
	userID int64,
	spaceID *int64,
	report models.AnalysisReport,
	ipAddress, description string,
) {
	var spaceRef sql.NullInt64
	if spaceID != nil {
		spaceRef = sql.NullInt64{Int64: *spaceID, Valid: true}
	}

	if _, err := svc.writer.Save(ctx, userID, spaceRef, report); err != nil {
		logger.Log.Errorw("failed to persist analysis result", "user_id", userID, "error", err)
	}

	if spaceID != nil && svc.cache != nil {
		if err := svc.cache.SetReportForSpace(ctx, *spaceID, report); err != nil {
			logger.Log.Errorw("failed to cache analysis result", "space_id", *spaceID, "error", err)
		}
	}

	if err := svc.activity.Append(ctx, userID, models.ActionAnalysis, description, ipAddress); err != nil {
		logger.Log.Errorw("failed to append analysis audit row", "user_id", userID, "error", err)
	}

	publishActivityEvent(ctx, svc.kafkaWriter, models.ActivityEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		UserID:      userID,
		Action:      models.ActionAnalysis,
		Description: description,
		IPAddress:   ipAddress,
	})
}
