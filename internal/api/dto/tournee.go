package dto

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DepotResponse struct {
	ID           string               `json:"id"`
	Lieu         string               `json:"lieu"`
	Adresse      string               `json:"adresse"`
	Horaires     string               `json:"horaires"`
	Coordonnes   *CoordinatesResponse `json:"coordonnes,omitempty"`
	NumerosDepot []string             `json:"numeros_depot,omitempty"`
}

type TourneeResponse struct {
	ID     string          `json:"id"`
	Nom    string          `json:"nom"`
	Depots []DepotResponse `json:"depots"`
}

type ListTourneesResponse struct {
	Tournees []TourneeResponse `json:"tournees"`
}
