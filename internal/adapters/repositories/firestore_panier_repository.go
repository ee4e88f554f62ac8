package repositories

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cocagne-delivery-service/internal/domain"
)

// Firestore-backed implementation of the PanierRepository port.
type FirestorePanierRepository struct{ Client *firestore.Client }

func NewFirestorePanierRepository(client *firestore.Client) *FirestorePanierRepository {
	return &FirestorePanierRepository{Client: client}
}

type panierDoc struct {
	ClientID     string   `firestore:"clientId"`
	Type         string   `firestore:"type"`
	Composition  []string `firestore:"composition"`
	PointsDepots []string `firestore:"points_depots"`
	TourneeID    string   `firestore:"tourneeId"`
	Statut       string   `firestore:"statut"`
}

func (d panierDoc) toDomain(id string) *domain.Panier {
	return &domain.Panier{
		ID:           id,
		ClientID:     d.ClientID,
		Type:         d.Type,
		Composition:  d.Composition,
		PointsDepots: d.PointsDepots,
		TourneeID:    d.TourneeID,
		Statut:       d.Statut,
	}
}

func (r *FirestorePanierRepository) collect(iter *firestore.DocumentIterator, op string) ([]*domain.Panier, error) {
	defer iter.Stop()

	paniers := make([]*domain.Panier, 0, 32)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: iterate documents: %w", op, err)
		}

		var doc panierDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode document %q: %w", op, snap.Ref.ID, err)
		}
		paniers = append(paniers, doc.toDomain(snap.Ref.ID))
	}

	return paniers, nil
}

func (r *FirestorePanierRepository) ListPaniers(ctx context.Context) ([]*domain.Panier, error) {
	if r.Client == nil {
		return nil, errors.New("panier repository: client is nil")
	}
	return r.collect(r.Client.Collection(CollectionPaniers).Documents(ctx), "list paniers")
}

func (r *FirestorePanierRepository) ListPaniersByDepot(ctx context.Context, depotID string) ([]*domain.Panier, error) {
	if r.Client == nil {
		return nil, errors.New("panier repository: client is nil")
	}

	iter := r.Client.Collection(CollectionPaniers).
		Where("points_depots", "array-contains", depotID).
		Documents(ctx)
	return r.collect(iter, fmt.Sprintf("list paniers for depot %q", depotID))
}

func (r *FirestorePanierRepository) GetPanier(ctx context.Context, id string) (*domain.Panier, error) {
	if r.Client == nil {
		return nil, errors.New("panier repository: client is nil")
	}

	snap, err := r.Client.Collection(CollectionPaniers).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrPanierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get panier %q: %w", id, err)
	}

	var doc panierDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("get panier %q: decode document: %w", id, err)
	}

	return doc.toDomain(snap.Ref.ID), nil
}

// SetStatut flips the delivery status with a plain field update. No
// transaction or precondition: concurrent writers are last-write-wins.
func (r *FirestorePanierRepository) SetStatut(ctx context.Context, id string, statut string) error {
	if r.Client == nil {
		return errors.New("panier repository: client is nil")
	}

	_, err := r.Client.Collection(CollectionPaniers).Doc(id).Update(ctx, []firestore.Update{
		{Path: "statut", Value: statut},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrPanierNotFound
	}
	if err != nil {
		return fmt.Errorf("set statut for panier %q: %w", id, err)
	}

	return nil
}
