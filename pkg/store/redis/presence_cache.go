package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fieldtrack/internal/model"

	"github.com/go-redis/redis/v8"
)

const presenceKeyPrefix = "presence:job:" // presence:job:{job_id}

// PresenceCache stores presence snapshots in Redis with a TTL.
// Snapshots are derived data, rebuilt from the event log on every miss:
// losing the whole cache loses nothing.
type PresenceCache struct {
	redis *redis.Client
}

// NewPresenceCache creates a presence cache
func NewPresenceCache(redisClient *RedisClient) *PresenceCache {
	return &PresenceCache{redis: redisClient.GetClient()}
}

// Get returns the cached snapshot for a job, or nil on a miss
func (c *PresenceCache) Get(ctx context.Context, jobID string) (*model.PresenceSnapshot, error) {
	data, err := c.redis.Get(ctx, presenceKeyPrefix+jobID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get presence snapshot: %w", err)
	}

	var snapshot model.PresenceSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presence snapshot: %w", err)
	}
	return &snapshot, nil
}

// Set stores the snapshot with a TTL
func (c *PresenceCache) Set(ctx context.Context, snapshot *model.PresenceSnapshot, ttl time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal presence snapshot: %w", err)
	}
	if err := c.redis.Set(ctx, presenceKeyPrefix+snapshot.JobID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set presence snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot for a job
func (c *PresenceCache) Invalidate(ctx context.Context, jobID string) error {
	if err := c.redis.Del(ctx, presenceKeyPrefix+jobID).Err(); err != nil {
		return fmt.Errorf("failed to invalidate presence snapshot: %w", err)
	}
	return nil
}
