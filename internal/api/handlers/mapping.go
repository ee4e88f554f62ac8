package handlers

import (
	"cocagne-delivery-service/internal/api/dto"
	"cocagne-delivery-service/internal/domain"
)

func toDepotResponse(d *domain.Depot) dto.DepotResponse {
	out := dto.DepotResponse{
		ID:           d.ID,
		Lieu:         d.Lieu,
		Adresse:      d.Adresse,
		Horaires:     d.Horaires,
		NumerosDepot: d.NumerosDepot,
	}
	if d.HasCoordinates() {
		out.Coordonnes = &dto.CoordinatesResponse{
			Lat: d.Coordonnes.Lat,
			Lng: d.Coordonnes.Lng,
		}
	}
	return out
}

func toDepotResponses(depots []*domain.Depot) []dto.DepotResponse {
	out := make([]dto.DepotResponse, 0, len(depots))
	for _, d := range depots {
		out = append(out, toDepotResponse(d))
	}
	return out
}

func toPanierResponse(p *domain.Panier) dto.PanierResponse {
	return dto.PanierResponse{
		ID:           p.ID,
		ClientID:     p.ClientID,
		Type:         p.Type,
		Composition:  p.Composition,
		PointsDepots: p.PointsDepots,
		TourneeID:    p.TourneeID,
		Statut:       p.Statut,
	}
}

func toPanierResponses(paniers []*domain.Panier) []dto.PanierResponse {
	out := make([]dto.PanierResponse, 0, len(paniers))
	for _, p := range paniers {
		out = append(out, toPanierResponse(p))
	}
	return out
}

func toNotificationResponse(n *domain.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:       n.ID,
		Titre:    n.Titre,
		Message:  n.Message,
		Date:     n.Date,
		Type:     n.Type,
		PanierID: n.PanierID,
		DepotID:  n.DepotID,
		Lu:       n.Lu,
		UserID:   n.UserID,
	}
}

func toRouteSummaryResponse(s domain.RouteSummary) dto.RouteSummaryResponse {
	out := dto.RouteSummaryResponse{
		Routable:             s.Routable,
		Waypoints:            make([]dto.CoordinatesResponse, 0, len(s.Waypoints)),
		TotalDistanceMeters:  s.TotalDistanceMeters,
		TotalDistance:        s.TotalDistance,
		TotalDurationSeconds: s.TotalDurationSeconds,
		TotalDuration:        s.TotalDuration,
		Steps:                make([]dto.RouteStepResponse, 0, len(s.Steps)),
	}
	for _, w := range s.Waypoints {
		out.Waypoints = append(out.Waypoints, dto.CoordinatesResponse{Lat: w.Lat, Lng: w.Lng})
	}
	for _, step := range s.Steps {
		out.Steps = append(out.Steps, dto.RouteStepResponse{
			Instruction: step.Instruction,
			Distance:    step.Distance,
			Duration:    step.Duration,
		})
	}
	return out
}
