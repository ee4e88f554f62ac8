package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
)

// BuildRouteSummary derives the ordered waypoint list from resolved depots
// and asks the routing provider for a single directions computation.
//
// Fewer than two usable coordinates skip the provider entirely. Provider
// failures (including ErrNoRoute) downgrade to the empty "no route" state;
// they are never surfaced as errors and never retried.
func BuildRouteSummary(
	ctx context.Context,
	depots []*domain.Depot,
	provider ports.DirectionsProvider,
) domain.RouteSummary {
	waypoints := make([]domain.Coordinates, 0, len(depots))
	for _, d := range depots {
		if d.HasCoordinates() {
			waypoints = append(waypoints, *d.Coordonnes)
		}
	}

	if len(waypoints) < 2 {
		return domain.EmptyRouteSummary(waypoints)
	}

	result, err := provider.GetRoute(ctx, waypoints)
	if err != nil {
		if !errors.Is(err, ports.ErrNoRoute) {
			log.Printf("route computation failed: %v", err)
		}
		return domain.EmptyRouteSummary(waypoints)
	}

	summary := domain.RouteSummary{
		Routable:  true,
		Waypoints: waypoints,
		Steps:     make([]domain.RouteStep, 0, 16),
	}
	for _, leg := range result.Legs {
		summary.TotalDistanceMeters += leg.DistanceMeters
		summary.TotalDurationSeconds += leg.DurationSeconds
		for _, s := range leg.Steps {
			summary.Steps = append(summary.Steps, domain.RouteStep{
				Instruction: StripHTML(s.Instruction),
				Distance:    s.Distance,
				Duration:    s.Duration,
			})
		}
	}
	summary.TotalDistance = FormatDistance(summary.TotalDistanceMeters)
	summary.TotalDuration = FormatDuration(summary.TotalDurationSeconds)

	return summary
}

// A tournée together with its order-resolved depots.
type ResolvedTournee struct {
	Tournee *domain.Tournee
	Depots  []*domain.Depot
}

// ListTourneesWithDepots returns every tournée with its depots resolved in
// reference order, the way the tournée board displays them.
func ListTourneesWithDepots(
	ctx context.Context,
	tournees ports.TourneeRepository,
	depots ports.DepotRepository,
) ([]ResolvedTournee, error) {
	list, err := tournees.ListTournees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournees: %w", err)
	}

	out := make([]ResolvedTournee, 0, len(list))
	for _, t := range list {
		out = append(out, ResolvedTournee{
			Tournee: t,
			Depots:  ResolveDepots(ctx, t.PointsDepots, depots),
		})
	}

	return out, nil
}

// TourneeRoute runs the full resolution pipeline for one tournée: resolve
// depots in order, derive coordinates, compute the route summary.
//
// An unknown tournée id yields an empty result, not an error; only a data
// source failure on the tournée document itself is surfaced.
func TourneeRoute(
	ctx context.Context,
	tourneeID string,
	tournees ports.TourneeRepository,
	depots ports.DepotRepository,
	provider ports.DirectionsProvider,
) ([]*domain.Depot, domain.RouteSummary, error) {
	t, err := tournees.GetTournee(ctx, tourneeID)
	if errors.Is(err, domain.ErrTourneeNotFound) {
		return []*domain.Depot{}, domain.EmptyRouteSummary(nil), nil
	}
	if err != nil {
		return nil, domain.RouteSummary{}, fmt.Errorf("tournee route: %w", err)
	}

	resolved := ResolveDepots(ctx, t.PointsDepots, depots)
	summary := BuildRouteSummary(ctx, resolved, provider)

	return resolved, summary, nil
}
