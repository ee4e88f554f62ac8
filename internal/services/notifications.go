package services

import (
	"context"
	"fmt"
	"sort"

	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
)

// ListNotifications returns a user's notifications, newest first. Sorting
// happens here rather than in the query so the store only needs the plain
// userId filter.
func ListNotifications(
	ctx context.Context,
	userID string,
	repo ports.NotificationRepository,
) ([]*domain.Notification, error) {
	list, err := repo.ListNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})

	return list, nil
}

// MarkAllLu flips the read flag on every unread notification of a user and
// returns how many were updated.
func MarkAllLu(
	ctx context.Context,
	userID string,
	repo ports.NotificationRepository,
) (int, error) {
	list, err := repo.ListNotificationsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	updated := 0
	for _, n := range list {
		if n.Lu {
			continue
		}
		if err := repo.MarkLu(ctx, n.ID); err != nil {
			return updated, fmt.Errorf("mark all notifications read: notification %q: %w", n.ID, err)
		}
		updated++
	}

	return updated, nil
}
