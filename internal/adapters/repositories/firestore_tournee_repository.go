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

// Firestore-backed implementation of the TourneeRepository port.
type FirestoreTourneeRepository struct{ Client *firestore.Client }

func NewFirestoreTourneeRepository(client *firestore.Client) *FirestoreTourneeRepository {
	return &FirestoreTourneeRepository{Client: client}
}

type tourneeDoc struct {
	Nom          string   `firestore:"nom"`
	PointsDepots []string `firestore:"points_depots"`
}

func (d tourneeDoc) toDomain(id string) *domain.Tournee {
	return &domain.Tournee{
		ID:           id,
		Nom:          d.Nom,
		PointsDepots: d.PointsDepots,
	}
}

func (r *FirestoreTourneeRepository) ListTournees(ctx context.Context) ([]*domain.Tournee, error) {
	if r.Client == nil {
		return nil, errors.New("tournee repository: client is nil")
	}

	iter := r.Client.Collection(CollectionTournees).Documents(ctx)
	defer iter.Stop()

	tournees := make([]*domain.Tournee, 0, 16)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list tournees: iterate documents: %w", err)
		}

		var doc tourneeDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("list tournees: decode document %q: %w", snap.Ref.ID, err)
		}
		tournees = append(tournees, doc.toDomain(snap.Ref.ID))
	}

	return tournees, nil
}

func (r *FirestoreTourneeRepository) GetTournee(ctx context.Context, id string) (*domain.Tournee, error) {
	if r.Client == nil {
		return nil, errors.New("tournee repository: client is nil")
	}

	snap, err := r.Client.Collection(CollectionTournees).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrTourneeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tournee %q: %w", id, err)
	}

	var doc tourneeDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("get tournee %q: decode document: %w", id, err)
	}

	return doc.toDomain(snap.Ref.ID), nil
}
