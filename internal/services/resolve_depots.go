package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
)

// ResolveDepots fetches the depots referenced by a tournée, concurrently,
// and returns them in the original reference order.
//
// Each reference fans out into its own indexed slot; completion order never
// leaks into the result. Dangling references and individual fetch failures
// are dropped silently, so the result is always a subsequence of depotIDs.
func ResolveDepots(
	ctx context.Context,
	depotIDs []string,
	repo ports.DepotRepository,
) []*domain.Depot {
	if len(depotIDs) == 0 {
		return []*domain.Depot{}
	}

	slots := make([]*domain.Depot, len(depotIDs))

	sem := make(chan struct{}, 5)
	var wg sync.WaitGroup

	for i, id := range depotIDs {
		wg.Add(1)
		go func(slot int, depotID string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			depot, err := repo.GetDepot(ctx, depotID)
			if err != nil {
				if !errors.Is(err, domain.ErrDepotNotFound) {
					log.Printf("depot fetch failed: depot=%s err=%v", depotID, err)
				}
				return
			}
			slots[slot] = depot
		}(i, id)
	}

	wg.Wait()

	// Compact while keeping reference order.
	depots := make([]*domain.Depot, 0, len(depotIDs))
	for _, d := range slots {
		if d != nil {
			depots = append(depots, d)
		}
	}

	return depots
}
