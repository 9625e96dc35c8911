package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/purlyedit/vastu-vision/internal/logger"
	"github.com/purlyedit/vastu-vision/internal/models"
)

// AnalysisCacheRepository caches the latest genuine report per space in
// Redis, so repeat analyses of an unchanged space skip the external call.
type AnalysisCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached reports
}

// NewAnalysisCacheRepository creates a new repository instance with the
// given TTL.
func NewAnalysisCacheRepository(client *redis.Client, expiration time.Duration) *AnalysisCacheRepository {
	return &AnalysisCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func analysisCacheKey(spaceID int64) string {
	return fmt.Sprintf("analysis:space:%d", spaceID)
}

// GetReportForSpace fetches the cached report for a space.
func (r *AnalysisCacheRepository) GetReportForSpace(ctx context.Context, spaceID int64) (*models.AnalysisReport, error) {
	key := analysisCacheKey(spaceID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache read",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("analysis report not found in cache for space %d", spaceID)
		}
		return nil, err
	}

	var report models.AnalysisReport
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		logger.Log.Errorw("failed to decode cached report", "key", key, "error", err)
		return nil, err
	}

	return &report, nil
}

// SetReportForSpace caches a report for a space with the configured TTL.
func (r *AnalysisCacheRepository) SetReportForSpace(ctx context.Context, spaceID int64, report models.AnalysisReport) error {
	key := analysisCacheKey(spaceID)

	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
