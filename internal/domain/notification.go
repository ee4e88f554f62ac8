package domain

import (
	"errors"
	"time"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification categories.
const (
	NotificationLivraison = "livraison"
)

// A Notification records a delivery event for a driver. Created once as a
// side effect of a panier status transition; only the read flag is ever
// updated afterwards.
type Notification struct {
	ID       string
	Titre    string
	Message  string
	Date     time.Time
	Type     string
	PanierID string
	DepotID  string
	Lu       bool
	UserID   string
}
