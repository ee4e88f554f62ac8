package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"cocagne-delivery-service/internal/adapters/cache"
	"cocagne-delivery-service/internal/adapters/directions"
	"cocagne-delivery-service/internal/adapters/push"
	"cocagne-delivery-service/internal/adapters/repositories"
	"cocagne-delivery-service/internal/api"
	"cocagne-delivery-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Firestore, Google Directions, Redis, Expo)
// behind ports and starts the HTTP server. Nothing holds an ambient client:
// every pipeline receives its dependencies explicitly.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "5001")
	environment := getEnv("ENVIRONMENT", "development")

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if strings.TrimSpace(projectID) == "" {
		log.Fatal("FIRESTORE_PROJECT_ID is required")
	}
	credentialsFile := os.Getenv("FIRESTORE_CREDENTIALS_FILE")

	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(mapsKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	ctx := context.Background()

	client, err := repositories.NewClient(ctx, projectID, credentialsFile)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	// Route results are cached in Redis when an address is configured;
	// without one the provider simply calls out every time.
	var routeCache *cache.RedisRouteCache
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping failed: addr=%s err=%v", addr, err)
		}
		routeCache = cache.NewRedisRouteCache(rdb, 24*time.Hour)
	}

	provider, err := directions.NewGoogleDirectionsProvider(mapsKey, routeCache)
	if err != nil {
		log.Fatal(err)
	}

	// Push stays optional: without a recipient token, deliveries still
	// persist their notification record, only the push is skipped.
	var sender ports.PushSender
	if token := os.Getenv("EXPO_PUSH_TOKEN"); strings.TrimSpace(token) != "" {
		sender, err = push.NewExpoPushSender(token)
		if err != nil {
			log.Fatal(err)
		}
	}

	router := api.NewRouter(api.Deps{
		Tournees:      repositories.NewFirestoreTourneeRepository(client),
		Depots:        repositories.NewFirestoreDepotRepository(client),
		Paniers:       repositories.NewFirestorePanierRepository(client),
		Notifications: repositories.NewFirestoreNotificationRepository(client),
		Provider:      provider,
		Push:          sender,
		DevMode:       environment == "development",
	})

	// Timeouts are tuned for cold-cache route computation (external API latency).
	log.Printf("Server listening addr=:%s env=%s", port, environment)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
