package services

import (
	"context"
	"testing"
	"time"

	"cocagne-delivery-service/internal/domain"
)

func TestListNotificationsNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	repo := &fakeNotificationRepo{
		created: []*domain.Notification{
			{ID: "n1", UserID: "u1", Date: base},
			{ID: "n2", UserID: "u1", Date: base.Add(2 * time.Hour)},
			{ID: "n3", UserID: "u2", Date: base.Add(time.Hour)},
			{ID: "n4", UserID: "u1", Date: base.Add(time.Hour)},
		},
	}

	list, err := ListNotifications(context.Background(), "u1", repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(list) != 3 {
		t.Fatalf("expected 3 notifications for u1, got %d", len(list))
	}
	for i, want := range []string{"n2", "n4", "n1"} {
		if list[i].ID != want {
			t.Fatalf("position %d = %q, want %q", i, list[i].ID, want)
		}
	}
}

func TestMarkAllLu(t *testing.T) {
	repo := &fakeNotificationRepo{
		created: []*domain.Notification{
			{ID: "n1", UserID: "u1"},
			{ID: "n2", UserID: "u1", Lu: true},
			{ID: "n3", UserID: "u1"},
			{ID: "n4", UserID: "u2"},
		},
	}

	updated, err := MarkAllLu(context.Background(), "u1", repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != 2 {
		t.Fatalf("updated = %d, want 2", updated)
	}
	for _, n := range repo.created {
		if n.UserID == "u1" && !n.Lu {
			t.Fatalf("notification %s still unread", n.ID)
		}
	}
	if repo.created[3].Lu {
		t.Fatalf("another user's notification was touched")
	}
}
