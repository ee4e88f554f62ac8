package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
)

type DeliverPanierRequest struct {
	PanierID string
	DepotID  string
	UserID   string
}

// DeliverPanier marks a panier as delivered at a depot.
//
// The persisted writes are the source of truth: the status flip and the
// notification record must both succeed for the delivery to count. The
// push that follows is fire-and-forget; its failure is logged and never
// rolls anything back.
func DeliverPanier(
	ctx context.Context,
	req DeliverPanierRequest,
	paniers ports.PanierRepository,
	depots ports.DepotRepository,
	notifications ports.NotificationRepository,
	sender ports.PushSender,
) (*domain.Notification, error) {
	panier, err := paniers.GetPanier(ctx, req.PanierID)
	if err != nil {
		return nil, fmt.Errorf("deliver panier: %w", err)
	}

	depot, err := depots.GetDepot(ctx, req.DepotID)
	if err != nil {
		return nil, fmt.Errorf("deliver panier: %w", err)
	}

	if err := paniers.SetStatut(ctx, panier.ID, domain.StatutLivre); err != nil {
		return nil, fmt.Errorf("deliver panier: %w", err)
	}

	notification := &domain.Notification{
		ID:    uuid.NewString(),
		Titre: "Panier livré",
		Message: fmt.Sprintf(
			"Le panier %s du client %s a été livré au dépôt %s.",
			panier.Type, panier.ClientID, depot.Lieu,
		),
		Date:     time.Now().UTC(),
		Type:     domain.NotificationLivraison,
		PanierID: panier.ID,
		DepotID:  depot.ID,
		Lu:       false,
		UserID:   req.UserID,
	}

	if err := notifications.CreateNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("deliver panier: %w", err)
	}

	if sender != nil {
		msg := ports.PushMessage{
			Title: notification.Titre,
			Body:  notification.Message,
			Data: map[string]string{
				"type":     domain.NotificationLivraison,
				"panierId": panier.ID,
				"depotId":  depot.ID,
			},
		}
		if err := sender.Send(ctx, msg); err != nil {
			log.Printf("push delivery failed: panier=%s depot=%s err=%v", panier.ID, depot.ID, err)
		}
	}

	return notification, nil
}
