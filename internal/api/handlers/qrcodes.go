package handlers

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"cocagne-delivery-service/internal/api/dto"
)

// QRHandler generates QR code images for depot and panier labels. The
// payload is the JSON object {"<type>": "<id>"} and the response carries a
// PNG data URL, matching the original label-printing contract.
type QRHandler struct {
	// Size is the PNG edge length in pixels.
	Size int
}

const indexPage = `<!DOCTYPE html>
<html lang="fr">
<head>
    <meta charset="UTF-8">
    <title>Serveur QR Code</title>
</head>
<body>
    <h1>Serveur QR Code opérationnel !</h1>
    <p>Utilisez l'API pour générer des QR codes.</p>
</body>
</html>
`

// Index serves a minimal status page.
func (h *QRHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}

// Generate encodes {"depot": id} or {"panier": id} into a QR PNG.
func (h *QRHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateQRRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if req.Type != "depot" && req.Type != "panier" {
		writeError(w, r, http.StatusBadRequest, `type must be "depot" or "panier"`)
		return
	}
	if req.ID == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}

	payload, err := json.Marshal(map[string]string{req.Type: req.ID})
	if err != nil {
		log.Printf("qr payload marshal failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	size := h.Size
	if size <= 0 {
		size = 256
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, size)
	if err != nil {
		log.Printf("qr encode failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "qr generation failed")
		return
	}

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	writeJSON(w, r, http.StatusOK, dto.GenerateQRResponse{QRCode: dataURL})
}
