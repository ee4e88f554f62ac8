package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
)

// ErrNoMatch is returned when a scanned code matches no registered depot code.
var ErrNoMatch = errors.New("no depot matches scanned code")

// MatchDepot resolves a scanned or typed code to a depot.
//
// The code is trimmed and then compared as an opaque string against each
// depot's registered codes, themselves trimmed: "  12 " matches "12" but
// "012" never matches "12". First match wins; matching is case-sensitive.
func MatchDepot(
	ctx context.Context,
	raw string,
	repo ports.DepotRepository,
) (*domain.Depot, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return nil, ErrNoMatch
	}

	depots, err := repo.ListDepots(ctx)
	if err != nil {
		return nil, fmt.Errorf("match depot: list depots: %w", err)
	}

	for _, d := range depots {
		for _, registered := range d.NumerosDepot {
			if strings.TrimSpace(registered) == code {
				return d, nil
			}
		}
	}

	return nil, ErrNoMatch
}

// KnownDepotCodes lists every registered code with its depot, for the
// development-only diagnostic dump on scan misses.
func KnownDepotCodes(ctx context.Context, repo ports.DepotRepository) ([]string, error) {
	depots, err := repo.ListDepots(ctx)
	if err != nil {
		return nil, fmt.Errorf("known depot codes: list depots: %w", err)
	}

	codes := make([]string, 0, len(depots))
	for _, d := range depots {
		for _, registered := range d.NumerosDepot {
			codes = append(codes, fmt.Sprintf("%s=%s", d.Lieu, strings.TrimSpace(registered)))
		}
	}

	return codes, nil
}

// ScanPayload is the structured QR variant: a JSON object carrying either a
// depot id or a panier id.
type ScanPayload struct {
	DepotID  string `json:"depot"`
	PanierID string `json:"panierId"`
}

// DecodeScanPayload parses the structured QR payload. Plain (non-JSON)
// codes return ok=false and go through MatchDepot instead.
func DecodeScanPayload(raw string) (ScanPayload, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return ScanPayload{}, false
	}

	var payload ScanPayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return ScanPayload{}, false
	}
	if payload.DepotID == "" && payload.PanierID == "" {
		return ScanPayload{}, false
	}

	return payload, true
}
