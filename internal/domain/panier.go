package domain

import "errors"

var ErrPanierNotFound = errors.New("panier not found")

// Panier delivery statuses. The observed lifecycle is one-directional:
// a panier moves from "en attente" to "livré" exactly once per delivery run.
const (
	StatutEnAttente = "en attente"
	StatutLivre     = "livré"
)

// A Panier is a basket prepared for a client, dropped at one or more depots
// during a tournée.
type Panier struct {
	ID           string
	ClientID     string
	Type         string
	Composition  []string
	PointsDepots []string
	TourneeID    string
	Statut       string
}

// Livre reports whether the panier has already been delivered.
func (p *Panier) Livre() bool { return p.Statut == StatutLivre }

// ServesDepot reports whether the panier is associated with the given depot.
func (p *Panier) ServesDepot(depotID string) bool {
	for _, id := range p.PointsDepots {
		if id == depotID {
			return true
		}
	}
	return false
}
