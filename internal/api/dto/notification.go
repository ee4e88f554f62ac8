package dto

import "time"

type NotificationResponse struct {
	ID       string    `json:"id"`
	Titre    string    `json:"titre"`
	Message  string    `json:"message"`
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	PanierID string    `json:"panier_id,omitempty"`
	DepotID  string    `json:"depot_id,omitempty"`
	Lu       bool      `json:"lu"`
	UserID   string    `json:"user_id"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}
