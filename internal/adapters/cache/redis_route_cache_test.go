package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
)

func testCache(t *testing.T) (*RedisRouteCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisRouteCache(client, time.Hour), srv
}

func testWaypoints() []domain.Coordinates {
	return []domain.Coordinates{
		{Lat: 46.664, Lng: 5.574},
		{Lat: 46.675, Lng: 5.551},
	}
}

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()
	waypoints := testWaypoints()

	if _, hit, err := c.Get(ctx, waypoints); err != nil || hit {
		t.Fatalf("cold cache: hit=%v err=%v", hit, err)
	}

	stored := ports.RouteResult{
		Legs: []ports.RouteLeg{
			{
				DistanceMeters:  1500,
				DurationSeconds: 450,
				Steps:           []ports.RouteLegStep{{Instruction: "Tourner à droite", Distance: "300 m", Duration: "1 min"}},
			},
		},
	}
	if err := c.Put(ctx, waypoints, stored); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, hit, err := c.Get(ctx, waypoints)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !hit {
		t.Fatalf("expected a cache hit after put")
	}
	if len(got.Legs) != 1 || got.Legs[0].DistanceMeters != 1500 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Legs[0].Steps[0].Instruction != "Tourner à droite" {
		t.Fatalf("step instruction lost: %+v", got.Legs[0].Steps)
	}
}

func TestRedisRouteCacheKeyIsOrderSensitive(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()
	waypoints := testWaypoints()

	if err := c.Put(ctx, waypoints, ports.RouteResult{Legs: []ports.RouteLeg{{DistanceMeters: 1}}}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	reversed := []domain.Coordinates{waypoints[1], waypoints[0]}
	if _, hit, err := c.Get(ctx, reversed); err != nil || hit {
		t.Fatalf("reversed waypoints must miss: hit=%v err=%v", hit, err)
	}
}

func TestRedisRouteCacheExpiry(t *testing.T) {
	c, srv := testCache(t)
	ctx := context.Background()
	waypoints := testWaypoints()

	if err := c.Put(ctx, waypoints, ports.RouteResult{Legs: []ports.RouteLeg{{DistanceMeters: 1}}}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	srv.FastForward(2 * time.Hour)

	if _, hit, err := c.Get(ctx, waypoints); err != nil || hit {
		t.Fatalf("expired entry must miss: hit=%v err=%v", hit, err)
	}
}
