package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/interfaces"
	"github.com/secmon-lab/flare/pkg/utils/errutil"
	"google.golang.org/api/option"
)

type Firestore struct {
	db *firestore.Client
	eb *goerr.Builder
}

var _ interfaces.Repository = &Firestore{}

func New(ctx context.Context, projectID, databaseID string, opts ...option.ClientOption) (*Firestore, error) {
	db, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.TV(errutil.ProjectIDKey, projectID),
			goerr.TV(errutil.DatabaseIDKey, databaseID))
	}

	return &Firestore{
		db: db,
		eb: goerr.NewBuilder(
			goerr.V("repository", "firestore"),
			goerr.TV(errutil.ProjectIDKey, projectID),
			goerr.TV(errutil.DatabaseIDKey, databaseID),
		),
	}, nil
}

func (r *Firestore) Close() error {
	return r.db.Close()
}

const (
	collectionUsers     = "users"
	collectionFCMTokens = "fcmTokens"
	collectionCircles   = "circles"
	collectionAlerts    = "alerts"
)
