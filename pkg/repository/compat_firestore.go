package repository

import (
	"context"

	"github.com/secmon-lab/flare/pkg/repository/firestore"
	"google.golang.org/api/option"
)

// Firestore is a type alias of the Firestore-backed repository
type Firestore = firestore.Firestore

// NewFirestore creates a new Firestore repository client
func NewFirestore(ctx context.Context, projectID, databaseID string, opts ...option.ClientOption) (*Firestore, error) {
	return firestore.New(ctx, projectID, databaseID, opts...)
}
