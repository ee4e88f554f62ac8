package handlers

import (
	"errors"
	"log"
	"net/http"

	"cocagne-delivery-service/internal/api/dto"
	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
	"cocagne-delivery-service/internal/services"
)

// ScanHandler resolves scanned QR payloads: either a bare depot code to be
// trim-matched against registered codes, or the structured JSON variant
// carrying a depot or panier id.
type ScanHandler struct {
	Depots  ports.DepotRepository
	Paniers ports.PanierRepository

	// DevMode enables the known-codes diagnostic dump on scan misses.
	DevMode bool
}

func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req dto.ScanRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if payload, ok := services.DecodeScanPayload(req.Code); ok {
		h.scanStructured(w, r, payload)
		return
	}

	depot, err := services.MatchDepot(r.Context(), req.Code, h.Depots)
	if errors.Is(err, services.ErrNoMatch) {
		h.writeMiss(w, r)
		return
	}
	if err != nil {
		log.Printf("scan match failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondDepot(w, r, depot)
}

func (h *ScanHandler) scanStructured(w http.ResponseWriter, r *http.Request, payload services.ScanPayload) {
	if payload.PanierID != "" {
		panier, err := h.Paniers.GetPanier(r.Context(), payload.PanierID)
		if errors.Is(err, domain.ErrPanierNotFound) {
			h.writeMiss(w, r)
			return
		}
		if err != nil {
			log.Printf("scan panier lookup failed: panier=%s err=%v", payload.PanierID, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		res := toPanierResponse(panier)
		writeJSON(w, r, http.StatusOK, dto.ScanResponse{Panier: &res})
		return
	}

	depot, err := h.Depots.GetDepot(r.Context(), payload.DepotID)
	if errors.Is(err, domain.ErrDepotNotFound) {
		h.writeMiss(w, r)
		return
	}
	if err != nil {
		log.Printf("scan depot lookup failed: depot=%s err=%v", payload.DepotID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondDepot(w, r, depot)
}

// respondDepot answers a successful match with the depot and its paniers.
func (h *ScanHandler) respondDepot(w http.ResponseWriter, r *http.Request, depot *domain.Depot) {
	paniers, err := h.Paniers.ListPaniersByDepot(r.Context(), depot.ID)
	if err != nil {
		log.Printf("scan panier list failed: depot=%s err=%v", depot.ID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	depotRes := toDepotResponse(depot)
	writeJSON(w, r, http.StatusOK, dto.ScanResponse{
		Depot:   &depotRes,
		Paniers: toPanierResponses(paniers),
	})
}

func (h *ScanHandler) writeMiss(w http.ResponseWriter, r *http.Request) {
	res := dto.ScanMissResponse{Error: "no match"}

	if h.DevMode {
		codes, err := services.KnownDepotCodes(r.Context(), h.Depots)
		if err != nil {
			log.Printf("known codes dump failed: %v", err)
		} else {
			res.KnownCodes = codes
		}
	}

	writeJSON(w, r, http.StatusNotFound, res)
}
