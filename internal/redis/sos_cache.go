package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Dipanshu93198/DRS/internal/domain"
)

// SOSCache holds a short-lived snapshot of the active reports so the
// cluster and nearby endpoints don't hammer postgres on every poll from
// the map view. A cache miss returns (nil, nil); callers fall back to
// storage.
type SOSCache struct {
	client *goredis.Client
	key    string
}

func NewSOSCache(r *Redis) *SOSCache {
	return &SOSCache{
		client: r.Client,
		key:    "sos:active",
	}
}

func (c *SOSCache) GetActive(ctx context.Context) ([]domain.SOSReport, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var reports []domain.SOSReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

func (c *SOSCache) SetActive(ctx context.Context, reports []domain.SOSReport, ttl time.Duration) error {
	b, err := json.Marshal(reports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *SOSCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
