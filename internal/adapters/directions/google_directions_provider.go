package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"cocagne-delivery-service/internal/adapters/cache"
	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/platform/obs"
	"cocagne-delivery-service/internal/ports"
)

// GoogleDirectionsProvider implements DirectionsProvider using the Google
// Directions API.
//
// It coordinates:
//   - Waypoint serialization in visiting order (optimizeWaypoints stays off)
//   - Persistent route caching in Redis
//   - A single external API call per miss; provider failures are not retried,
//     the caller downgrades them to a "no route" state
//
// The provider is safe for concurrent use.
type GoogleDirectionsProvider struct {
	session    *http.Client
	apiKey     string
	baseURL    string
	mode       string
	routeCache *cache.RedisRouteCache
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value int    `json:"value"`
				Text  string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Value int    `json:"value"`
				Text  string `json:"text"`
			} `json:"duration"`
			Steps []struct {
				HTMLInstructions string `json:"html_instructions"`
				Distance         struct {
					Text string `json:"text"`
				} `json:"distance"`
				Duration struct {
					Text string `json:"text"`
				} `json:"duration"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

func NewGoogleDirectionsProvider(apiKey string, routeCache *cache.RedisRouteCache) (*GoogleDirectionsProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google directions api key is empty")
	}

	provider := &GoogleDirectionsProvider{
		session:    &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    "https://maps.googleapis.com/maps/api/directions/json",
		mode:       "driving",
		routeCache: routeCache,
	}

	return provider, nil
}

// GetRoute computes a driving route through the waypoints in the given order.
func (g *GoogleDirectionsProvider) GetRoute(
	ctx context.Context,
	waypoints []domain.Coordinates,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "directions.GetRoute")(&err)

	if len(waypoints) < 2 {
		return ports.RouteResult{}, errors.New("get route: at least two waypoints are required")
	}

	// Check persistent route cache before issuing the external API call.
	if g.routeCache != nil {
		cached, hit, err := g.routeCache.Get(ctx, waypoints)
		if err != nil {
			log.Printf("route cache read failed: %v", err)
		} else if hit {
			return cached, nil
		}
	}

	req, err := g.newRequest(ctx, waypoints)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: %w", err)
	}

	resp, err := g.session.Do(req)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return ports.RouteResult{}, fmt.Errorf(
			"get route: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: decode directions response: %w", err)
	}

	// Any non-OK provider status (ZERO_RESULTS, NOT_FOUND, ...) means
	// "no route available", never a crash.
	if decoded.Status != "OK" || len(decoded.Routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf("get route: provider status %q: %w", decoded.Status, ports.ErrNoRoute)
	}

	result := ports.RouteResult{
		Legs: make([]ports.RouteLeg, 0, len(decoded.Routes[0].Legs)),
	}
	for _, leg := range decoded.Routes[0].Legs {
		out := ports.RouteLeg{
			DistanceMeters:  leg.Distance.Value,
			DurationSeconds: leg.Duration.Value,
			Steps:           make([]ports.RouteLegStep, 0, len(leg.Steps)),
		}
		for _, s := range leg.Steps {
			out.Steps = append(out.Steps, ports.RouteLegStep{
				Instruction: s.HTMLInstructions,
				Distance:    s.Distance.Text,
				Duration:    s.Duration.Text,
			})
		}
		result.Legs = append(result.Legs, out)
	}

	if g.routeCache != nil {
		if err := g.routeCache.Put(ctx, waypoints, result); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return result, nil
}

// newRequest builds the directions request: first waypoint is the origin,
// last is the destination, intermediates ride along in order. No
// "optimize:" prefix is ever added to the waypoints parameter.
func (g *GoogleDirectionsProvider) newRequest(
	ctx context.Context,
	waypoints []domain.Coordinates,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	origin := waypoints[0]
	destination := waypoints[len(waypoints)-1]
	intermediates := waypoints[1 : len(waypoints)-1]

	q := req.URL.Query()
	q.Set("origin", origin.WaypointString())
	q.Set("destination", destination.WaypointString())
	if len(intermediates) > 0 {
		parts := make([]string, 0, len(intermediates))
		for _, w := range intermediates {
			parts = append(parts, w.WaypointString())
		}
		q.Set("waypoints", strings.Join(parts, "|"))
	}
	q.Set("mode", g.mode)
	q.Set("key", g.apiKey)
	req.URL.RawQuery = q.Encode()

	return req, nil
}
