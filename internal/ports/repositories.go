package ports

import (
	"context"

	"cocagne-delivery-service/internal/domain"
)

// Port: a boundary for reading Tournee documents from the data source.
// Tournées are read-only during a delivery run.
type TourneeRepository interface {
	// Retrieve all tournées.
	ListTournees(ctx context.Context) ([]*domain.Tournee, error)
	// Retrieve a single tournée. Returns domain.ErrTourneeNotFound for
	// unknown ids.
	GetTournee(ctx context.Context, id string) (*domain.Tournee, error)
}

// Port: a boundary for reading Depot documents.
type DepotRepository interface {
	// Retrieve all depots, insertion order as returned by the store.
	ListDepots(ctx context.Context) ([]*domain.Depot, error)
	// Retrieve a single depot. Returns domain.ErrDepotNotFound for
	// dangling references.
	GetDepot(ctx context.Context, id string) (*domain.Depot, error)
}

// Port: a boundary for reading and mutating Panier documents.
type PanierRepository interface {
	// Retrieve all paniers.
	ListPaniers(ctx context.Context) ([]*domain.Panier, error)
	// Retrieve paniers whose associated depot set contains depotID,
	// preserving the query result order.
	ListPaniersByDepot(ctx context.Context, depotID string) ([]*domain.Panier, error)
	// Retrieve a single panier. Returns domain.ErrPanierNotFound for
	// unknown ids.
	GetPanier(ctx context.Context, id string) (*domain.Panier, error)
	// Set the panier's delivery status. Plain field write, no transaction:
	// concurrent drivers race with last-write-wins semantics.
	SetStatut(ctx context.Context, id string, statut string) error
}

// Port: a boundary for Notification documents.
type NotificationRepository interface {
	// Retrieve all notifications owned by userID.
	ListNotificationsByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	// Persist a new notification.
	CreateNotification(ctx context.Context, n *domain.Notification) error
	// Flip the read flag. Returns domain.ErrNotificationNotFound for
	// unknown ids.
	MarkLu(ctx context.Context, id string) error
}
