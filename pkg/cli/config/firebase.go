package config

import (
	"context"
	"log/slog"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/service/messenger"
	"github.com/secmon-lab/flare/pkg/utils/errutil"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

type Firebase struct {
	projectID       string
	credentialsPath string
	dryRun          bool
	batchSize       int
}

func (x *Firebase) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firebase-project-id",
			Usage:       "Firebase project ID for FCM. Detected from credentials when empty",
			Category:    "Firebase",
			Destination: &x.projectID,
			Sources:     cli.EnvVars("FLARE_FIREBASE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firebase-credentials",
			Usage:       "Path to a service account JSON file. Application default credentials are used when empty",
			Category:    "Firebase",
			Destination: &x.credentialsPath,
			Sources:     cli.EnvVars("FLARE_FIREBASE_CREDENTIALS", "GOOGLE_APPLICATION_CREDENTIALS"),
		},
		&cli.BoolFlag{
			Name:        "fcm-dry-run",
			Usage:       "Validate messages with FCM without delivering them",
			Category:    "Firebase",
			Destination: &x.dryRun,
			Sources:     cli.EnvVars("FLARE_FCM_DRY_RUN"),
		},
		&cli.IntFlag{
			Name:        "fcm-batch-size",
			Usage:       "Number of tokens per multicast request (1-500)",
			Category:    "Firebase",
			Destination: &x.batchSize,
			Sources:     cli.EnvVars("FLARE_FCM_BATCH_SIZE"),
			Value:       messenger.MaxMulticastTokens,
		},
	}
}

func (x Firebase) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", x.projectID),
		slog.String("credentials", x.credentialsPath),
		slog.Bool("dry_run", x.dryRun),
		slog.Int("batch_size", x.batchSize),
	)
}

// Configure creates the FCM messenger from a Firebase app.
func (x *Firebase) Configure(ctx context.Context) (*messenger.FCM, error) {
	var opts []option.ClientOption
	if x.credentialsPath != "" {
		if _, err := os.Stat(x.credentialsPath); err != nil {
			return nil, goerr.Wrap(err, "firebase credentials file is not readable",
				goerr.TV(errutil.FilePathKey, x.credentialsPath),
				goerr.T(errs.TagValidation))
		}
		opts = append(opts, option.WithCredentialsFile(x.credentialsPath))
	}

	var cfg *firebase.Config
	if x.projectID != "" {
		cfg = &firebase.Config{ProjectID: x.projectID}
	}

	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize firebase app",
			goerr.TV(errutil.ProjectIDKey, x.projectID))
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create FCM client",
			goerr.TV(errutil.ProjectIDKey, x.projectID))
	}

	return messenger.NewFCM(client,
		messenger.WithDryRun(x.dryRun),
		messenger.WithBatchSize(x.batchSize),
	), nil
}

func (x *Firebase) DryRun() bool {
	return x.dryRun
}
