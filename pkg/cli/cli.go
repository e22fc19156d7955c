package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/cli/config"
	"github.com/secmon-lab/flare/pkg/utils/errutil"
	"github.com/secmon-lab/flare/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const defaultEnvFile = ".env"

func Run(ctx context.Context, args []string) error {
	if err := loadEnvFile(); err != nil {
		logging.Default().Error("failed to load env file", "error", err)
		return err
	}

	var loggerCfg config.Logger
	var closer func()
	app := &cli.Command{
		Name:  "flare",
		Usage: "Relay circle emergency alerts to members' devices",
		Flags: loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			closer = f
			if err != nil {
				return ctx, err
			}

			logging.Default().Debug("base options", "logger", loggerCfg)
			return logging.With(ctx, logging.Default()), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdNotify(),
			cmdDev(),
			cmdMigrate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}

// loadEnvFile reads FLARE_ENV_FILE (default .env) into the environment.
// Variables that are already set win, and a missing file is not an error.
func loadEnvFile() error {
	path := os.Getenv("FLARE_ENV_FILE")
	if path == "" {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to parse env file", goerr.TV(errutil.FilePathKey, path))
	}
	return nil
}
