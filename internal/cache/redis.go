package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"microbot/internal/utils"
)

var (
	redisClient *redis.Client
	enabled     bool
)

const latestTelemetryTTL = 10 * time.Minute

// Initialize sets up the Redis connection if REDIS_URL is provided. Without it
// the cache is disabled and every lookup falls through to the repository.
func Initialize(redisURL string) {
	if redisURL == "" {
		utils.Logger.Info("Redis URL not provided, telemetry cache disabled")
		enabled = false
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		utils.Logger.Warnf("Failed to parse Redis URL: %v, telemetry cache disabled", err)
		enabled = false
		return
	}

	redisClient = redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		utils.Logger.Warnf("Failed to connect to Redis: %v, telemetry cache disabled", err)
		enabled = false
		return
	}

	enabled = true
	utils.Logger.Info("Redis telemetry cache initialized")
}

// Close closes the Redis connection.
func Close() {
	if redisClient != nil {
		redisClient.Close()
	}
}

func latestTelemetryKey(robotID string) string {
	return "telemetry:latest:" + robotID
}

// SetLatestTelemetry stores the most recent telemetry record for a robot.
func SetLatestTelemetry(ctx context.Context, robotID string, record interface{}) error {
	if !enabled {
		return nil
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return redisClient.Set(ctx, latestTelemetryKey(robotID), data, latestTelemetryTTL).Err()
}

// GetLatestTelemetry retrieves the most recent cached record for a robot.
// Returns redis.Nil when the cache is disabled or the key is absent.
func GetLatestTelemetry(ctx context.Context, robotID string, dest interface{}) error {
	if !enabled {
		return redis.Nil
	}

	data, err := redisClient.Get(ctx, latestTelemetryKey(robotID)).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// DeleteLatestTelemetry drops a robot's cached record.
func DeleteLatestTelemetry(ctx context.Context, robotID string) error {
	if !enabled {
		return nil
	}
	return redisClient.Del(ctx, latestTelemetryKey(robotID)).Err()
}
