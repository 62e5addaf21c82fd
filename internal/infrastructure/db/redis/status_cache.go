package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hrkit/vacation-api/internal/core/domain"
)

const (
	statusKey = "vacations:statuses"
	statusTTL = time.Hour
)

// StatusCache caches the vacations_status reference rows, which change only
// by migration. Key: vacations:statuses, JSON-encoded, 1h TTL.
type StatusCache struct {
	client *redis.Client
}

// NewStatusCache creates a StatusCache wrapping the given Redis client.
func NewStatusCache(client *redis.Client) *StatusCache {
	return &StatusCache{client: client}
}

// Get returns the cached definitions, or (nil, nil) on a miss.
func (c *StatusCache) Get(ctx context.Context) ([]domain.StatusDefinition, error) {
	raw, err := c.client.Get(ctx, statusKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("status cache get: %w", err)
	}

	var statuses []domain.StatusDefinition
	if err := json.Unmarshal(raw, &statuses); err != nil {
		return nil, fmt.Errorf("status cache decode: %w", err)
	}
	return statuses, nil
}

// Set stores the definitions (expires after statusTTL).
func (c *StatusCache) Set(ctx context.Context, statuses []domain.StatusDefinition) error {
	raw, err := json.Marshal(statuses)
	if err != nil {
		return fmt.Errorf("status cache encode: %w", err)
	}
	return c.client.Set(ctx, statusKey, raw, statusTTL).Err()
}
