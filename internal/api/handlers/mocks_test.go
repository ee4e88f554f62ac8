package handlers

import (
	"context"
	"sync"

	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
)

type stubTournees struct {
	tournees map[string]*domain.Tournee
}

func (s *stubTournees) ListTournees(ctx context.Context) ([]*domain.Tournee, error) {
	out := make([]*domain.Tournee, 0, len(s.tournees))
	for _, t := range s.tournees {
		out = append(out, t)
	}
	return out, nil
}

func (s *stubTournees) GetTournee(ctx context.Context, id string) (*domain.Tournee, error) {
	t, ok := s.tournees[id]
	if !ok {
		return nil, domain.ErrTourneeNotFound
	}
	return t, nil
}

type stubDepots struct {
	depots map[string]*domain.Depot
}

func (s *stubDepots) ListDepots(ctx context.Context) ([]*domain.Depot, error) {
	out := make([]*domain.Depot, 0, len(s.depots))
	for _, d := range s.depots {
		out = append(out, d)
	}
	return out, nil
}

func (s *stubDepots) GetDepot(ctx context.Context, id string) (*domain.Depot, error) {
	d, ok := s.depots[id]
	if !ok {
		return nil, domain.ErrDepotNotFound
	}
	return d, nil
}

type stubPaniers struct {
	mu      sync.Mutex
	paniers []*domain.Panier
	statuts map[string]string
}

func (s *stubPaniers) ListPaniers(ctx context.Context) ([]*domain.Panier, error) {
	return s.paniers, nil
}

func (s *stubPaniers) ListPaniersByDepot(ctx context.Context, depotID string) ([]*domain.Panier, error) {
	out := make([]*domain.Panier, 0, len(s.paniers))
	for _, p := range s.paniers {
		if p.ServesDepot(depotID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPaniers) GetPanier(ctx context.Context, id string) (*domain.Panier, error) {
	for _, p := range s.paniers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPanierNotFound
}

func (s *stubPaniers) SetStatut(ctx context.Context, id string, statut string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.statuts == nil {
		s.statuts = make(map[string]string)
	}
	s.statuts[id] = statut
	return nil
}

type stubNotifications struct {
	mu      sync.Mutex
	created []*domain.Notification
}

func (s *stubNotifications) ListNotificationsByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	out := make([]*domain.Notification, 0, len(s.created))
	for _, n := range s.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *stubNotifications) CreateNotification(ctx context.Context, n *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, n)
	return nil
}

func (s *stubNotifications) MarkLu(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.created {
		if n.ID == id {
			n.Lu = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

type stubProvider struct {
	result ports.RouteResult
	err    error
}

func (s *stubProvider) GetRoute(ctx context.Context, waypoints []domain.Coordinates) (ports.RouteResult, error) {
	if s.err != nil {
		return ports.RouteResult{}, s.err
	}
	return s.result, nil
}
