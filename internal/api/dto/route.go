package dto

type RouteStepResponse struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}

type RouteSummaryResponse struct {
	Routable             bool                  `json:"routable"`
	Waypoints            []CoordinatesResponse `json:"waypoints"`
	TotalDistanceMeters  int                   `json:"total_distance_meters"`
	TotalDistance        string                `json:"total_distance"`
	TotalDurationSeconds int                   `json:"total_duration_seconds"`
	TotalDuration        string                `json:"total_duration"`
	Steps                []RouteStepResponse   `json:"steps"`
}

type TourneeRouteResponse struct {
	TourneeID string               `json:"tournee_id"`
	Depots    []DepotResponse      `json:"depots"`
	Summary   RouteSummaryResponse `json:"summary"`
}

type SelectRouteRequest struct {
	TourneeID string `json:"tournee_id"`
}

type SelectionResponse struct {
	TourneeID string                `json:"tournee_id,omitempty"`
	Status    string                `json:"status"`
	Depots    []DepotResponse       `json:"depots,omitempty"`
	Summary   *RouteSummaryResponse `json:"summary,omitempty"`
}
