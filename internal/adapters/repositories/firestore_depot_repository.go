package repositories

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/genproto/googleapis/type/latlng"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cocagne-delivery-service/internal/domain"
)

// Firestore-backed implementation of the DepotRepository port.
type FirestoreDepotRepository struct{ Client *firestore.Client }

func NewFirestoreDepotRepository(client *firestore.Client) *FirestoreDepotRepository {
	return &FirestoreDepotRepository{Client: client}
}

type depotDoc struct {
	Lieu         string         `firestore:"lieu"`
	Adresse      string         `firestore:"adresse"`
	Horaires     string         `firestore:"horaires"`
	Coordonnes   *latlng.LatLng `firestore:"coordonnes"`
	NumerosDepot []string       `firestore:"numeros_depot"`
}

func (d depotDoc) toDomain(id string) *domain.Depot {
	depot := &domain.Depot{
		ID:           id,
		Lieu:         d.Lieu,
		Adresse:      d.Adresse,
		Horaires:     d.Horaires,
		NumerosDepot: d.NumerosDepot,
	}
	if d.Coordonnes != nil {
		depot.Coordonnes = &domain.Coordinates{
			Lat: d.Coordonnes.Latitude,
			Lng: d.Coordonnes.Longitude,
		}
	}
	return depot
}

func (r *FirestoreDepotRepository) ListDepots(ctx context.Context) ([]*domain.Depot, error) {
	if r.Client == nil {
		return nil, errors.New("depot repository: client is nil")
	}

	iter := r.Client.Collection(CollectionDepots).Documents(ctx)
	defer iter.Stop()

	depots := make([]*domain.Depot, 0, 64)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list depots: iterate documents: %w", err)
		}

		var doc depotDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("list depots: decode document %q: %w", snap.Ref.ID, err)
		}
		depots = append(depots, doc.toDomain(snap.Ref.ID))
	}

	return depots, nil
}

func (r *FirestoreDepotRepository) GetDepot(ctx context.Context, id string) (*domain.Depot, error) {
	if r.Client == nil {
		return nil, errors.New("depot repository: client is nil")
	}

	snap, err := r.Client.Collection(CollectionDepots).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrDepotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get depot %q: %w", id, err)
	}

	var doc depotDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("get depot %q: decode document: %w", id, err)
	}

	return doc.toDomain(snap.Ref.ID), nil
}
