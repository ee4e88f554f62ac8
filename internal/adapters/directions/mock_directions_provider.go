package directions

import (
	"context"
	"sync"

	"cocagne-delivery-service/internal/domain"
	"cocagne-delivery-service/internal/ports"
)

// MockDirectionsProvider serves canned route results in tests and records
// how many requests it received.
type MockDirectionsProvider struct {
	Result ports.RouteResult
	Err    error

	mu    sync.Mutex
	calls [][]domain.Coordinates
}

func (p *MockDirectionsProvider) GetRoute(ctx context.Context, waypoints []domain.Coordinates) (ports.RouteResult, error) {
	p.mu.Lock()
	snapshot := make([]domain.Coordinates, len(waypoints))
	copy(snapshot, waypoints)
	p.calls = append(p.calls, snapshot)
	p.mu.Unlock()

	if p.Err != nil {
		return ports.RouteResult{}, p.Err
	}
	return p.Result, nil
}

// Calls returns the waypoint lists of every request seen so far.
func (p *MockDirectionsProvider) Calls() [][]domain.Coordinates {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]domain.Coordinates, len(p.calls))
	copy(out, p.calls)
	return out
}
