package domain

// A single turn-by-turn instruction within a computed route.
// Instruction text has HTML markup stripped; Distance and Duration keep the
// provider's human-readable leg texts.
type RouteStep struct {
	Instruction string
	Distance    string
	Duration    string
}

// RouteSummary aggregates the external routing provider's answer for one
// tournée: totals in provider-native units plus formatted strings, and the
// ordered step list. It is immutable display data and contains no side effects.
type RouteSummary struct {
	Routable             bool
	Waypoints            []Coordinates
	TotalDistanceMeters  int
	TotalDistance        string
	TotalDurationSeconds int
	TotalDuration        string
	Steps                []RouteStep
}

// EmptyRouteSummary is the "no route" state: fewer than two resolvable
// coordinates, an unknown tournée, or a provider failure all collapse to it.
func EmptyRouteSummary(waypoints []Coordinates) RouteSummary {
	return RouteSummary{
		Routable:  false,
		Waypoints: waypoints,
		Steps:     []RouteStep{},
	}
}
