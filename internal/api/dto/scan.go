package dto

type ScanRequest struct {
	Code string `json:"code"`
}

type ScanResponse struct {
	Depot   *DepotResponse   `json:"depot,omitempty"`
	Panier  *PanierResponse  `json:"panier,omitempty"`
	Paniers []PanierResponse `json:"paniers,omitempty"`
}

// ScanMissResponse reports a failed match. KnownCodes is only populated in
// development builds to troubleshoot exact-match misses.
type ScanMissResponse struct {
	Error      string   `json:"error"`
	KnownCodes []string `json:"known_codes,omitempty"`
}
