package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"cocagne-delivery-service/internal/api/dto"
	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
	"cocagne-delivery-service/internal/services"
)

// NotificationHandler exposes a driver's notification feed and read flags.
type NotificationHandler struct {
	Notifications ports.NotificationRepository
}

// List returns a user's notifications, newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, r, http.StatusBadRequest, "user_id is required")
		return
	}

	list, err := services.ListNotifications(r.Context(), userID, h.Notifications)
	if err != nil {
		log.Printf("list notifications failed: user=%s err=%v", userID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListNotificationsResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(list)),
	}
	for _, n := range list {
		res.Notifications = append(res.Notifications, toNotificationResponse(n))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// MarkRead flips one notification's read flag.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.Notifications.MarkLu(r.Context(), id)
	if errors.Is(err, domain.ErrNotificationNotFound) {
		writeError(w, r, http.StatusNotFound, "notification not found")
		return
	}
	if err != nil {
		log.Printf("mark notification read failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]bool{"lu": true})
}

// MarkAllRead flips every unread notification of a user.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, r, http.StatusBadRequest, "user_id is required")
		return
	}

	updated, err := services.MarkAllLu(r.Context(), userID, h.Notifications)
	if err != nil {
		log.Printf("mark all notifications read failed: user=%s err=%v", userID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}
