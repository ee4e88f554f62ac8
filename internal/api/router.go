package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"cocagne-delivery-service/internal/api/handlers"
	"cocagne-delivery-service/internal/ports"
	"cocagne-delivery-service/internal/services"
)

// Deps carries every port the API needs. Push may be nil (no push
// configured); everything else is required.
type Deps struct {
	Tournees      ports.TourneeRepository
	Depots        ports.DepotRepository
	Paniers       ports.PanierRepository
	Notifications ports.NotificationRepository
	Provider      ports.DirectionsProvider
	Push          ports.PushSender

	// DevMode enables the scan-miss diagnostic dump.
	DevMode bool
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	r := mux.NewRouter()

	tourneeHandler := &handlers.TourneeHandler{
		Tournees: deps.Tournees,
		Depots:   deps.Depots,
		Provider: deps.Provider,
	}
	selectionHandler := &handlers.SelectionHandler{
		Selection: services.NewRouteSelection(),
		Tournees:  deps.Tournees,
		Depots:    deps.Depots,
		Provider:  deps.Provider,
	}
	scanHandler := &handlers.ScanHandler{
		Depots:  deps.Depots,
		Paniers: deps.Paniers,
		DevMode: deps.DevMode,
	}
	panierHandler := &handlers.PanierHandler{
		Paniers:       deps.Paniers,
		Depots:        deps.Depots,
		Notifications: deps.Notifications,
		Push:          deps.Push,
	}
	notificationHandler := &handlers.NotificationHandler{Notifications: deps.Notifications}
	qrHandler := &handlers.QRHandler{}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	r.HandleFunc("/tournees", tourneeHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/tournees/{id}/route", tourneeHandler.Route).Methods(http.MethodGet)

	r.HandleFunc("/route/selection", selectionHandler.Select).Methods(http.MethodPost)
	r.HandleFunc("/route/selection", selectionHandler.Current).Methods(http.MethodGet)

	r.HandleFunc("/scan", scanHandler.Scan).Methods(http.MethodPost)

	r.HandleFunc("/paniers/{id}/livraison", panierHandler.Livraison).Methods(http.MethodPost)
	r.HandleFunc("/paniers/recap", panierHandler.Recap).Methods(http.MethodGet)

	r.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{id}/read", notificationHandler.MarkRead).Methods(http.MethodPost)
	r.HandleFunc("/notifications/read-all", notificationHandler.MarkAllRead).Methods(http.MethodPost)

	r.HandleFunc("/generate-qr", qrHandler.Generate).Methods(http.MethodPost)
	r.HandleFunc("/", qrHandler.Index).Methods(http.MethodGet)

	return loggingMiddleware(r)
}
