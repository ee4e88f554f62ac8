package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/platform/obs"
	"cocagne-delivery-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisRouteCache is a Redis-backed cache for directions results keyed by
// the ordered waypoint sequence. A tournée's waypoint order is part of the
// key, so reordering a route never serves stale geometry.
type RedisRouteCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisRouteCache{Client: client, TTL: ttl}
}

// Key builds the cache key for a waypoint sequence.
func Key(waypoints []domain.Coordinates) string {
	parts := make([]string, 0, len(waypoints))
	for _, w := range waypoints {
		parts = append(parts, w.WaypointString())
	}
	return "route:" + strings.Join(parts, "|")
}

// Get fetches a cached route result. The second return value reports a hit.
func (c *RedisRouteCache) Get(
	ctx context.Context,
	waypoints []domain.Coordinates,
) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if c.Client == nil {
		return ports.RouteResult{}, false, errors.New("route cache: client is nil")
	}
	if len(waypoints) == 0 {
		return ports.RouteResult{}, false, nil
	}

	raw, err := c.Client.Get(ctx, Key(waypoints)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	var result ports.RouteResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: decode entry: %w", err)
	}

	return result, true, nil
}

// Put stores a route result for a waypoint sequence.
func (c *RedisRouteCache) Put(
	ctx context.Context,
	waypoints []domain.Coordinates,
	result ports.RouteResult,
) error {
	if c.Client == nil {
		return errors.New("route cache: client is nil")
	}
	if len(waypoints) == 0 {
		return errors.New("put route cache: empty waypoint list")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("put route cache: encode entry: %w", err)
	}

	if err := c.Client.Set(ctx, Key(waypoints), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("put route cache: %w", err)
	}

	return nil
}
