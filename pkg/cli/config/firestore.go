package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/repository"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

const defaultDatabaseID = "(default)"

type Firestore struct {
	projectID  string
	databaseID string
}

func (c *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID",
			Destination: &c.projectID,
			Category:    "Firestore",
			Sources:     cli.EnvVars("FLARE_FIRESTORE_PROJECT_ID", "GOOGLE_CLOUD_PROJECT"),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Destination: &c.databaseID,
			Category:    "Firestore",
			Sources:     cli.EnvVars("FLARE_FIRESTORE_DATABASE_ID"),
			Value:       defaultDatabaseID,
		},
	}
}

func (c Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", c.projectID),
		slog.String("database_id", c.databaseID),
	)
}

func (c *Firestore) Configure(ctx context.Context, opts ...option.ClientOption) (*repository.Firestore, error) {
	if !c.IsConfigured() {
		return nil, goerr.New("firestore project ID is required", goerr.T(errs.TagValidation))
	}

	return repository.NewFirestore(ctx, c.projectID, c.DatabaseID(), opts...)
}

func (c *Firestore) ProjectID() string {
	return c.projectID
}

// DatabaseID returns the configured database, falling back to "(default)".
func (c *Firestore) DatabaseID() string {
	if c.databaseID == "" {
		return defaultDatabaseID
	}
	return c.databaseID
}

func (c *Firestore) IsConfigured() bool {
	return c.projectID != ""
}
