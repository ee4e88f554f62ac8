package ports

import (
	"context"
	"errors"

	"cocagne-delivery-service/internal/domain"
)

// ErrNoRoute is returned when the routing provider cannot produce a route
// for the requested waypoints (non-OK provider status). Callers downgrade
// it to an empty route state rather than an error.
var ErrNoRoute = errors.New("no route available")

// A single leg between two consecutive waypoints.
type RouteLeg struct {
	DistanceMeters  int
	DurationSeconds int
	Steps           []RouteLegStep
}

// A provider-native step within a leg. Instruction may contain HTML markup
// exactly as returned by the provider.
type RouteLegStep struct {
	Instruction string
	Distance    string
	Duration    string
}

// Raw routing result for one waypoint sequence.
type RouteResult struct {
	Legs []RouteLeg
}

// Contract for computing a driving route through an ordered waypoint list.
type DirectionsProvider interface {
	// GetRoute submits the waypoints as a single directions request:
	// first point origin, last point destination, intermediates in the
	// given order with no reordering/optimization. The delivery sequence
	// always wins over shortest-path optimization.
	GetRoute(ctx context.Context, waypoints []domain.Coordinates) (RouteResult, error)
}
