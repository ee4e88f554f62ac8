package dto

type GenerateQRRequest struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Response key matches the original QR microservice contract.
type GenerateQRResponse struct {
	QRCode string `json:"qrCode"`
}
