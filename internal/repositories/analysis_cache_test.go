package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/purlyedit/vastu-vision/internal/models"
)

func TestAnalysisCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewAnalysisCacheRepository(rdb, 2*time.Second)

	report := models.AnalysisReport{
		VastuScore:         85,
		EnergyFlowScore:    82,
		RoomPlacementScore: 88,
		DirectionalScore:   84,
		Recommendations: []models.Recommendation{
			{Element: "Water", Score: 81, Message: "Place a water feature in the northeast"},
		},
	}

	t.Run("Set and Get report", func(t *testing.T) {
		err := repo.SetReportForSpace(ctx, 11, report)
		assert.NoError(t, err)

		got, err := repo.GetReportForSpace(ctx, 11)
		assert.NoError(t, err)
		assert.Equal(t, report, *got)
	})

	t.Run("Get missing space returns error", func(t *testing.T) {
		_, err := repo.GetReportForSpace(ctx, 999)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in cache")
	})

	t.Run("Cached report expires", func(t *testing.T) {
		err := repo.SetReportForSpace(ctx, 12, report)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetReportForSpace(ctx, 12)
		assert.Error(t, err)
	})
}
