package cli

import (
	"context"
	"os"

	"github.com/secmon-lab/flare/pkg/cli/config"
	server "github.com/secmon-lab/flare/pkg/controller/http"
	"github.com/secmon-lab/flare/pkg/service/messenger"
	"github.com/secmon-lab/flare/pkg/usecase"
	"github.com/secmon-lab/flare/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdDev() *cli.Command {
	var (
		addr                  string
		tokenFetchConcurrency int
		seedCfg               config.Seed
	)

	flags := joinFlags(
		[]cli.Flag{
			addrFlag(&addr),
			tokenFetchConcurrencyFlag(&tokenFetchConcurrency),
		},
		seedCfg.Flags(),
	)

	return &cli.Command{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "Run server in development mode with in-memory data and console delivery",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.From(ctx).Info("starting development server",
				"addr", addr,
				"seed", seedCfg,
				"tokenFetchConcurrency", tokenFetchConcurrency,
			)

			repo, err := seedCfg.Configure(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(
				usecase.WithRepository(repo),
				usecase.WithMessenger(messenger.NewConsole(os.Stdout)),
				usecase.WithTokenFetchConcurrency(tokenFetchConcurrency),
			)

			logging.From(ctx).Warn("authorization is disabled in development mode")
			return runServer(ctx, addr, server.New(uc, server.WithNoAuthorization(true)))
		},
	}
}
