package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"cocagne-delivery-service/internal/api/dto"
	"cocagne-delivery-service/internal/ports"
	"cocagne-delivery-service/internal/services"
)

// TourneeHandler exposes the tournée board and per-tournée route endpoints.
type TourneeHandler struct {
	Tournees ports.TourneeRepository
	Depots   ports.DepotRepository
	Provider ports.DirectionsProvider
}

// List returns every tournée with its depots resolved in visiting order.
func (h *TourneeHandler) List(w http.ResponseWriter, r *http.Request) {
	resolved, err := services.ListTourneesWithDepots(r.Context(), h.Tournees, h.Depots)
	if err != nil {
		log.Printf("list tournees failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTourneesResponse{Tournees: make([]dto.TourneeResponse, 0, len(resolved))}
	for _, rt := range resolved {
		res.Tournees = append(res.Tournees, dto.TourneeResponse{
			ID:     rt.Tournee.ID,
			Nom:    rt.Tournee.Nom,
			Depots: toDepotResponses(rt.Depots),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Route runs the depot/route resolution pipeline for one tournée. An
// unknown id yields an empty, non-routable result rather than an error.
func (h *TourneeHandler) Route(w http.ResponseWriter, r *http.Request) {
	tourneeID := mux.Vars(r)["id"]

	depots, summary, err := services.TourneeRoute(r.Context(), tourneeID, h.Tournees, h.Depots, h.Provider)
	if err != nil {
		log.Printf("tournee route failed: tournee=%s err=%v", tourneeID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TourneeRouteResponse{
		TourneeID: tourneeID,
		Depots:    toDepotResponses(depots),
		Summary:   toRouteSummaryResponse(summary),
	}

	writeJSON(w, r, http.StatusOK, res)
}
