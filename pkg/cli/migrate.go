package cli

import (
	"context"
	"log/slog"
	"time"

	firestoreadmin "cloud.google.com/go/firestore/apiv1/admin"
	adminpb "cloud.google.com/go/firestore/apiv1/admin/adminpb"
	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/cli/config"
	"github.com/secmon-lab/flare/pkg/utils/errutil"
	"github.com/secmon-lab/flare/pkg/utils/logging"
	"github.com/secmon-lab/flare/pkg/utils/safe"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/iterator"
)

const indexPollInterval = 10 * time.Second

func cmdMigrate() *cli.Command {
	var cfg config.Firestore
	var dryRun bool

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate Firestore indexes used by the alert relay",
		Flags: append(cfg.Flags(),
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Show what would be changed without applying",
				Destination: &dryRun,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			return runMigrate(ctx, &cfg, dryRun)
		},
	}
}

func runMigrate(ctx context.Context, cfg *config.Firestore, dryRun bool) error {
	logger := logging.From(ctx)

	if !cfg.IsConfigured() {
		return goerr.New("firestore-project-id is required")
	}
	projectID := cfg.ProjectID()
	databaseID := cfg.DatabaseID()

	logger.Info("Starting Firestore migration",
		"project_id", projectID,
		"database_id", databaseID,
		"dry_run", dryRun,
	)

	indexConfig := defineFirestoreIndexes()

	opts := []fireconf.Option{fireconf.WithLogger(logger)}
	if dryRun {
		logger.Info("Dry-run mode: showing planned changes without applying")
		opts = append(opts, fireconf.WithDryRun(true))
	}

	client, err := fireconf.NewClient(ctx, projectID, databaseID, opts...)
	if err != nil {
		return goerr.Wrap(err, "failed to create fireconf client",
			goerr.TV(errutil.ProjectIDKey, projectID),
			goerr.TV(errutil.DatabaseIDKey, databaseID),
		)
	}

	if err := client.Migrate(ctx, indexConfig); err != nil {
		return goerr.Wrap(err, "failed to migrate indexes",
			goerr.TV(errutil.ProjectIDKey, projectID),
			goerr.TV(errutil.DatabaseIDKey, databaseID),
			goerr.V("dry_run", dryRun),
		)
	}

	if !dryRun {
		if err := waitForIndexesReady(ctx, projectID, databaseID, indexConfig, logger.With("phase", "wait_ready")); err != nil {
			return goerr.Wrap(err, "indexes did not become ready",
				goerr.TV(errutil.ProjectIDKey, projectID),
				goerr.TV(errutil.DatabaseIDKey, databaseID),
			)
		}
	}

	logger.Info("Migration completed successfully")
	return nil
}

// waitForIndexesReady polls the Firestore Admin API until no managed index is
// still being built.
func waitForIndexesReady(ctx context.Context, projectID, databaseID string, cfg *fireconf.Config, logger *slog.Logger) error {
	adminClient, err := firestoreadmin.NewFirestoreAdminClient(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to create firestore admin client")
	}
	defer safe.Close(ctx, adminClient)

	ticker := time.NewTicker(indexPollInterval)
	defer ticker.Stop()

	for {
		pending := 0

		for _, col := range cfg.Collections {
			parent := "projects/" + projectID + "/databases/" + databaseID + "/collectionGroups/" + col.Name

			it := adminClient.ListIndexes(ctx, &adminpb.ListIndexesRequest{Parent: parent})
			for {
				idx, err := it.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					return goerr.Wrap(err, "failed to list indexes",
						goerr.TV(errutil.CollectionKey, col.Name))
				}

				if state := idx.GetState(); state == adminpb.Index_CREATING || state == adminpb.Index_NEEDS_REPAIR {
					pending++
					logger.Info("Index not yet ready, waiting",
						"collection", col.Name,
						"index", idx.GetName(),
						"state", state.String(),
					)
				}
			}
		}

		if pending == 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// defineFirestoreIndexes declares the index behind the circle member lookup:
// users filtered by circleId, returned in document ID order.
func defineFirestoreIndexes() *fireconf.Config {
	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: "users",
				Indexes: []fireconf.Index{
					{
						QueryScope: fireconf.QueryScopeCollection,
						Fields: []fireconf.IndexField{
							{
								Path:  "circleId",
								Order: fireconf.OrderAscending,
							},
							{
								Path:  "__name__",
								Order: fireconf.OrderAscending,
							},
						},
					},
				},
			},
		},
	}
}
