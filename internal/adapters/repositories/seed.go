package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// Seed fixtures mirror the document shapes of the production collections.
// Coordinates are plain lat/lng pairs in the JSON file and become GeoPoints
// on write.
type DepotSeed struct {
	ID           string     `json:"id"`
	Lieu         string     `json:"lieu"`
	Adresse      string     `json:"adresse"`
	Horaires     string     `json:"horaires"`
	Coordonnes   *CoordSeed `json:"coordonnes"`
	NumerosDepot []string   `json:"numeros_depot"`
}

type CoordSeed struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TourneeSeed struct {
	ID           string   `json:"id"`
	Nom          string   `json:"nom"`
	PointsDepots []string `json:"points_depots"`
}

type PanierSeed struct {
	ID           string   `json:"id"`
	ClientID     string   `json:"clientId"`
	Type         string   `json:"type"`
	Composition  []string `json:"composition"`
	PointsDepots []string `json:"points_depots"`
	TourneeID    string   `json:"tourneeId"`
	Statut       string   `json:"statut"`
}

type seedFile struct {
	PointsDepots []DepotSeed   `json:"points_depots"`
	Tournees     []TourneeSeed `json:"tournees"`
	Paniers      []PanierSeed  `json:"paniers"`
}

// SeedFromJSON loads the fixture at jsonPath and upserts its documents into
// the tournees, points_depots and paniers collections. Existing documents
// with the same IDs are overwritten.
func SeedFromJSON(ctx context.Context, client *firestore.Client, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed: read %q: %w", jsonPath, err)
	}

	var data seedFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed: parse json: %w", err)
	}

	for i, d := range data.PointsDepots {
		if strings.TrimSpace(d.ID) == "" {
			return fmt.Errorf("seed depots: missing id at index %d", i+1)
		}
		doc := depotDoc{
			Lieu:         d.Lieu,
			Adresse:      d.Adresse,
			Horaires:     d.Horaires,
			NumerosDepot: d.NumerosDepot,
		}
		if d.Coordonnes != nil {
			doc.Coordonnes = &latlng.LatLng{Latitude: d.Coordonnes.Lat, Longitude: d.Coordonnes.Lng}
		}
		if _, err := client.Collection(CollectionDepots).Doc(d.ID).Set(ctx, doc); err != nil {
			return fmt.Errorf("seed depots: write %q: %w", d.ID, err)
		}
	}

	for i, t := range data.Tournees {
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("seed tournees: missing id at index %d", i+1)
		}
		doc := tourneeDoc{Nom: t.Nom, PointsDepots: t.PointsDepots}
		if _, err := client.Collection(CollectionTournees).Doc(t.ID).Set(ctx, doc); err != nil {
			return fmt.Errorf("seed tournees: write %q: %w", t.ID, err)
		}
	}

	for i, p := range data.Paniers {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("seed paniers: missing id at index %d", i+1)
		}
		doc := panierDoc{
			ClientID:     p.ClientID,
			Type:         p.Type,
			Composition:  p.Composition,
			PointsDepots: p.PointsDepots,
			TourneeID:    p.TourneeID,
			Statut:       p.Statut,
		}
		if _, err := client.Collection(CollectionPaniers).Doc(p.ID).Set(ctx, doc); err != nil {
			return fmt.Errorf("seed paniers: write %q: %w", p.ID, err)
		}
	}

	return nil
}
