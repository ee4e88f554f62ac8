package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cocagne-delivery-service/internal/domain"
)

// Firestore-backed implementation of the NotificationRepository port.
type FirestoreNotificationRepository struct{ Client *firestore.Client }

func NewFirestoreNotificationRepository(client *firestore.Client) *FirestoreNotificationRepository {
	return &FirestoreNotificationRepository{Client: client}
}

type notificationDoc struct {
	Titre    string    `firestore:"titre"`
	Message  string    `firestore:"message"`
	Date     time.Time `firestore:"date"`
	Type     string    `firestore:"type"`
	PanierID string    `firestore:"panierId"`
	DepotID  string    `firestore:"depotId"`
	Lu       bool      `firestore:"lu"`
	UserID   string    `firestore:"userId"`
}

func (d notificationDoc) toDomain(id string) *domain.Notification {
	return &domain.Notification{
		ID:       id,
		Titre:    d.Titre,
		Message:  d.Message,
		Date:     d.Date,
		Type:     d.Type,
		PanierID: d.PanierID,
		DepotID:  d.DepotID,
		Lu:       d.Lu,
		UserID:   d.UserID,
	}
}

// ListNotificationsByUser filters on userId only. Date ordering happens in
// memory at the service layer, which keeps the query free of a composite
// index requirement.
func (r *FirestoreNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	if r.Client == nil {
		return nil, errors.New("notification repository: client is nil")
	}

	iter := r.Client.Collection(CollectionNotifications).
		Where("userId", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	notifications := make([]*domain.Notification, 0, 32)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list notifications for user %q: iterate documents: %w", userID, err)
		}

		var doc notificationDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("list notifications for user %q: decode document %q: %w", userID, snap.Ref.ID, err)
		}
		notifications = append(notifications, doc.toDomain(snap.Ref.ID))
	}

	return notifications, nil
}

func (r *FirestoreNotificationRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	if r.Client == nil {
		return errors.New("notification repository: client is nil")
	}
	if n == nil || n.ID == "" {
		return errors.New("create notification: missing id")
	}

	doc := notificationDoc{
		Titre:    n.Titre,
		Message:  n.Message,
		Date:     n.Date,
		Type:     n.Type,
		PanierID: n.PanierID,
		DepotID:  n.DepotID,
		Lu:       n.Lu,
		UserID:   n.UserID,
	}

	if _, err := r.Client.Collection(CollectionNotifications).Doc(n.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("create notification %q: %w", n.ID, err)
	}

	return nil
}

func (r *FirestoreNotificationRepository) MarkLu(ctx context.Context, id string) error {
	if r.Client == nil {
		return errors.New("notification repository: client is nil")
	}

	_, err := r.Client.Collection(CollectionNotifications).Doc(id).Update(ctx, []firestore.Update{
		{Path: "lu", Value: true},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotificationNotFound
	}
	if err != nil {
		return fmt.Errorf("mark notification %q as read: %w", id, err)
	}

	return nil
}
