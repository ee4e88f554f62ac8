package domain

import "errors"

var ErrTourneeNotFound = errors.New("tournee not found")
var ErrDepotNotFound = errors.New("depot not found")

// A Tournee is a delivery round: an ordered sequence of depot stops.
// PointsDepots holds depot document ids in visiting order; that order is
// semantically significant and must survive resolution.
type Tournee struct {
	ID           string
	Nom          string
	PointsDepots []string
}

// A Depot is a fixed drop-off location. NumerosDepot is the set of codes
// printed on the depot's QR labels; membership tests trim whitespace but
// otherwise compare codes as opaque strings.
type Depot struct {
	ID           string
	Lieu         string
	Adresse      string
	Horaires     string
	Coordonnes   *Coordinates
	NumerosDepot []string
}

// HasCoordinates reports whether the depot carries a usable position.
func (d *Depot) HasCoordinates() bool {
	return d.Coordonnes != nil && d.Coordonnes.Valid()
}
