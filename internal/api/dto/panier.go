package dto

type PanierResponse struct {
	ID           string   `json:"id"`
	ClientID     string   `json:"client_id"`
	Type         string   `json:"type"`
	Composition  []string `json:"composition"`
	PointsDepots []string `json:"points_depots"`
	TourneeID    string   `json:"tournee_id"`
	Statut       string   `json:"statut"`
}

type LivraisonRequest struct {
	DepotID string `json:"depot_id"`
	UserID  string `json:"user_id"`
}

type LivraisonResponse struct {
	PanierID     string               `json:"panier_id"`
	Statut       string               `json:"statut"`
	Notification NotificationResponse `json:"notification"`
}

type PanierGroupResponse struct {
	TourneeID string           `json:"tournee_id"`
	Paniers   []PanierResponse `json:"paniers"`
}

type RecapPaniersResponse struct {
	Groups []PanierGroupResponse `json:"groups"`
}
