package services

import (
	"context"
	"fmt"

	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
)

// Paniers of one tournée, as shown on the recap board.
type PanierGroup struct {
	TourneeID string
	Paniers   []*domain.Panier
}

// GroupPaniersByTournee fetches all paniers and groups them by tournée,
// preserving first-seen group order and insertion order within a group.
func GroupPaniersByTournee(
	ctx context.Context,
	repo ports.PanierRepository,
) ([]PanierGroup, error) {
	paniers, err := repo.ListPaniers(ctx)
	if err != nil {
		return nil, fmt.Errorf("group paniers: %w", err)
	}

	index := make(map[string]int, 8)
	groups := make([]PanierGroup, 0, 8)
	for _, p := range paniers {
		i, ok := index[p.TourneeID]
		if !ok {
			i = len(groups)
			index[p.TourneeID] = i
			groups = append(groups, PanierGroup{TourneeID: p.TourneeID})
		}
		groups[i].Paniers = append(groups[i].Paniers, p)
	}

	return groups, nil
}
