package repositories

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// Firestore collection names, as laid out by the cooperative's back office.
const (
	CollectionTournees      = "tournees"
	CollectionDepots        = "points_depots"
	CollectionPaniers       = "paniers"
	CollectionNotifications = "notifications"
)

// NewClient opens a Firestore client for the given project. When
// credentialsFile is empty, application default credentials apply.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("open firestore client for project %q: %w", projectID, err)
	}

	return client, nil
}
