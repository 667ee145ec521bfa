package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"sightmap/internal/domain"
)

// MarkerCache holds the latest active-marker set so refreshes landing
// inside the cache TTL skip the database. A miss returns (nil, false, nil),
// never an error the caller must branch on.
type MarkerCache struct {
	client *goredis.Client
	key    string
}

func NewMarkerCache(r *Redis) *MarkerCache {
	return &MarkerCache{
		client: r.Client,
		key:    "markers:active",
	}
}

func (c *MarkerCache) GetActive(ctx context.Context) ([]domain.Marker, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var markers []domain.Marker
	if err := json.Unmarshal(data, &markers); err != nil {
		return nil, false, err
	}

	return markers, true, nil
}

func (c *MarkerCache) SetActive(ctx context.Context, markers []domain.Marker, ttl time.Duration) error {
	b, err := json.Marshal(markers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *MarkerCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
