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

// PanierHandler exposes the delivery transition and the recap board.
type PanierHandler struct {
	Paniers       ports.PanierRepository
	Depots        ports.DepotRepository
	Notifications ports.NotificationRepository
	Push          ports.PushSender
}

// Livraison flips a panier to "livré", records the notification and fires
// the best-effort push.
func (h *PanierHandler) Livraison(w http.ResponseWriter, r *http.Request) {
	panierID := mux.Vars(r)["id"]

	var req dto.LivraisonRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.DepotID) == "" {
		writeError(w, r, http.StatusBadRequest, "depot_id is required")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, r, http.StatusBadRequest, "user_id is required")
		return
	}

	notification, err := services.DeliverPanier(r.Context(), services.DeliverPanierRequest{
		PanierID: panierID,
		DepotID:  req.DepotID,
		UserID:   req.UserID,
	}, h.Paniers, h.Depots, h.Notifications, h.Push)
	if errors.Is(err, domain.ErrPanierNotFound) {
		writeError(w, r, http.StatusNotFound, "panier not found")
		return
	}
	if errors.Is(err, domain.ErrDepotNotFound) {
		writeError(w, r, http.StatusNotFound, "depot not found")
		return
	}
	if err != nil {
		log.Printf("livraison failed: panier=%s err=%v", panierID, err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LivraisonResponse{
		PanierID:     panierID,
		Statut:       domain.StatutLivre,
		Notification: toNotificationResponse(notification),
	})
}

// Recap returns all paniers grouped by tournée.
func (h *PanierHandler) Recap(w http.ResponseWriter, r *http.Request) {
	groups, err := services.GroupPaniersByTournee(r.Context(), h.Paniers)
	if err != nil {
		log.Printf("recap paniers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RecapPaniersResponse{Groups: make([]dto.PanierGroupResponse, 0, len(groups))}
	for _, g := range groups {
		res.Groups = append(res.Groups, dto.PanierGroupResponse{
			TourneeID: g.TourneeID,
			Paniers:   toPanierResponses(g.Paniers),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
