package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"cocagne-delivery-service/internal/api/dto"
	"cocagne-delivery-service/internal/domain"
)

func notificationRouter(repo *stubNotifications) *mux.Router {
	h := &NotificationHandler{Notifications: repo}
	r := mux.NewRouter()
	r.HandleFunc("/notifications", h.List).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{id}/read", h.MarkRead).Methods(http.MethodPost)
	r.HandleFunc("/notifications/read-all", h.MarkAllRead).Methods(http.MethodPost)
	return r
}

func notificationFixtures() *stubNotifications {
	base := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	return &stubNotifications{created: []*domain.Notification{
		{ID: "n1", UserID: "u1", Date: base},
		{ID: "n2", UserID: "u1", Date: base.Add(time.Hour)},
		{ID: "n3", UserID: "u2", Date: base},
	}}
}

func TestListNotificationsEndpoint(t *testing.T) {
	router := notificationRouter(notificationFixtures())

	req := httptest.NewRequest(http.MethodGet, "/notifications?user_id=u1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ListNotificationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(res.Notifications))
	}
	if res.Notifications[0].ID != "n2" {
		t.Fatalf("newest first: got %q", res.Notifications[0].ID)
	}
}

func TestListNotificationsRequiresUser(t *testing.T) {
	router := notificationRouter(notificationFixtures())

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMarkRead(t *testing.T) {
	repo := notificationFixtures()
	router := notificationRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/notifications/n1/read", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !repo.created[0].Lu {
		t.Fatalf("n1 should be read")
	}

	req = httptest.NewRequest(http.MethodPost, "/notifications/ghost/read", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for unknown id", rec.Code)
	}
}

func TestMarkAllRead(t *testing.T) {
	repo := notificationFixtures()
	router := notificationRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/notifications/read-all?user_id=u1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.MarkAllReadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Updated != 2 {
		t.Fatalf("updated = %d, want 2", res.Updated)
	}
	if repo.created[2].Lu {
		t.Fatalf("u2's notification must stay unread")
	}
}
