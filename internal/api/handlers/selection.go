package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"cocagne-delivery-service/internal/api/dto"
	"cocagne-delivery-service/internal/ports"
	"cocagne-delivery-service/internal/services"
)

// SelectionHandler drives the "selected tournée" state machine. Selecting a
// tournée starts the resolution pipeline in the background under a fresh
// generation token; results of superseded selections are discarded.
type SelectionHandler struct {
	Selection *services.RouteSelection
	Tournees  ports.TourneeRepository
	Depots    ports.DepotRepository
	Provider  ports.DirectionsProvider

	// Timeout bounds the background computation once the request that
	// started it has returned.
	Timeout time.Duration
}

// Select starts a route computation for the requested tournée.
func (h *SelectionHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectRouteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	tourneeID := strings.TrimSpace(req.TourneeID)
	if tourneeID == "" {
		writeError(w, r, http.StatusBadRequest, "tournee_id is required")
		return
	}

	gen := h.Selection.Begin(tourneeID)

	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		depots, summary, err := services.TourneeRoute(ctx, tourneeID, h.Tournees, h.Depots, h.Provider)
		if err != nil {
			log.Printf("selection compute failed: tournee=%s gen=%d err=%v", tourneeID, gen, err)
			h.Selection.Fail(gen)
			return
		}

		if !h.Selection.Publish(gen, depots, summary) {
			log.Printf("selection result discarded: tournee=%s gen=%d (stale)", tourneeID, gen)
		}
	}()

	writeJSON(w, r, http.StatusAccepted, h.snapshotResponse())
}

// Current reports the selection state: none, loading, ready or error.
func (h *SelectionHandler) Current(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.snapshotResponse())
}

func (h *SelectionHandler) snapshotResponse() dto.SelectionResponse {
	snap := h.Selection.Snapshot()

	res := dto.SelectionResponse{
		TourneeID: snap.TourneeID,
		Status:    string(snap.Status),
	}
	if snap.Status == services.SelectionReady {
		res.Depots = toDepotResponses(snap.Depots)
		summary := toRouteSummaryResponse(snap.Summary)
		res.Summary = &summary
	}
	return res
}
