package services

import (
	"sync"

	"cocagne-delivery-service/internal/domain"
)

type SelectionStatus string

const (
	SelectionNone    SelectionStatus = "none"
	SelectionLoading SelectionStatus = "loading"
	SelectionReady   SelectionStatus = "ready"
	SelectionError   SelectionStatus = "error"
)

// RouteSelection tracks the driver's currently selected tournée and the
// latest route computation for it.
//
// Every selection bumps a generation token; a computation that finishes for
// a stale generation is discarded, so reselecting a tournée mid-fetch can
// never overwrite fresh state with outdated data.
type RouteSelection struct {
	mu      sync.Mutex
	gen     uint64
	tournee string
	status  SelectionStatus
	depots  []*domain.Depot
	summary domain.RouteSummary
}

// Point-in-time view of the selection state.
type SelectionSnapshot struct {
	TourneeID string
	Status    SelectionStatus
	Depots    []*domain.Depot
	Summary   domain.RouteSummary
}

func NewRouteSelection() *RouteSelection {
	return &RouteSelection{status: SelectionNone}
}

// Begin records a new selection and returns its generation token. Any
// in-flight computation for a previous generation becomes stale.
func (s *RouteSelection) Begin(tourneeID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.tournee = tourneeID
	s.status = SelectionLoading
	s.depots = nil
	s.summary = domain.RouteSummary{}

	return s.gen
}

// Publish installs a finished computation. It reports false, and changes
// nothing, when gen is no longer the current generation.
func (s *RouteSelection) Publish(gen uint64, depots []*domain.Depot, summary domain.RouteSummary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}

	s.status = SelectionReady
	s.depots = depots
	s.summary = summary

	return true
}

// Fail marks the current selection as failed unless gen is stale.
func (s *RouteSelection) Fail(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}

	s.status = SelectionError
	s.depots = nil
	s.summary = domain.RouteSummary{}

	return true
}

func (s *RouteSelection) Snapshot() SelectionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SelectionSnapshot{
		TourneeID: s.tournee,
		Status:    s.status,
		Depots:    s.depots,
		Summary:   s.summary,
	}
}
