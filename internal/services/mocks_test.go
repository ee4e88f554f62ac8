package services

import (
	"context"
	"sync"
	"time"

	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
)

type fakeTourneeRepo struct {
	tournees map[string]*domain.Tournee
	err      error
}

func (f *fakeTourneeRepo) ListTournees(ctx context.Context) ([]*domain.Tournee, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Tournee, 0, len(f.tournees))
	for _, t := range f.tournees {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTourneeRepo) GetTournee(ctx context.Context, id string) (*domain.Tournee, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.tournees[id]
	if !ok {
		return nil, domain.ErrTourneeNotFound
	}
	return t, nil
}

// fakeDepotRepo serves depots with an optional per-depot delay, so tests can
// force fetches to complete out of reference order.
type fakeDepotRepo struct {
	depots map[string]*domain.Depot
	delays map[string]time.Duration
	errs   map[string]error
}

func (f *fakeDepotRepo) ListDepots(ctx context.Context) ([]*domain.Depot, error) {
	out := make([]*domain.Depot, 0, len(f.depots))
	for _, d := range f.depots {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDepotRepo) GetDepot(ctx context.Context, id string) (*domain.Depot, error) {
	if d, ok := f.delays[id]; ok {
		time.Sleep(d)
	}
	if err, ok := f.errs[id]; ok {
		return nil, err
	}
	depot, ok := f.depots[id]
	if !ok {
		return nil, domain.ErrDepotNotFound
	}
	return depot, nil
}

type fakePanierRepo struct {
	mu      sync.Mutex
	paniers []*domain.Panier
	statuts map[string]string
	err     error
}

func (f *fakePanierRepo) ListPaniers(ctx context.Context) ([]*domain.Panier, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.paniers, nil
}

func (f *fakePanierRepo) ListPaniersByDepot(ctx context.Context, depotID string) ([]*domain.Panier, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Panier, 0, len(f.paniers))
	for _, p := range f.paniers {
		if p.ServesDepot(depotID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePanierRepo) GetPanier(ctx context.Context, id string) (*domain.Panier, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.paniers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPanierNotFound
}

func (f *fakePanierRepo) SetStatut(ctx context.Context, id string, statut string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statuts == nil {
		f.statuts = make(map[string]string)
	}
	f.statuts[id] = statut
	return nil
}

type fakeNotificationRepo struct {
	mu        sync.Mutex
	created   []*domain.Notification
	read      []string
	createErr error
}

func (f *fakeNotificationRepo) ListNotificationsByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	out := make([]*domain.Notification, 0, len(f.created))
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CreateNotification(ctx context.Context, n *domain.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) MarkLu(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.created {
		if n.ID == id {
			n.Lu = true
			f.read = append(f.read, id)
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

type fakePushSender struct {
	mu   sync.Mutex
	sent []ports.PushMessage
	err  error
}

func (f *fakePushSender) Send(ctx context.Context, msg ports.PushMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.err
}

func coords(lat, lng float64) *domain.Coordinates {
	return &domain.Coordinates{Lat: lat, Lng: lng}
}
