package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"cocagne-delivery-service/internal/adapters/repositories"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if strings.TrimSpace(projectID) == "" {
		log.Fatal("FIRESTORE_PROJECT_ID is required")
	}
	credentialsFile := os.Getenv("FIRESTORE_CREDENTIALS_FILE")

	ctx := context.Background()

	client, err := repositories.NewClient(ctx, projectID, credentialsFile)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	seedPath := getEnv("SEED_PATH", "data/seeds/cocagne.json")

	log.Println("Seeding Firestore collections...")
	if err := repositories.SeedFromJSON(ctx, client, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
