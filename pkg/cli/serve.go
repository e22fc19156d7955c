package cli

import (
	"context"

	"github.com/secmon-lab/flare/pkg/cli/config"
	server "github.com/secmon-lab/flare/pkg/controller/http"
	"github.com/secmon-lab/flare/pkg/usecase"
	"github.com/secmon-lab/flare/pkg/utils/logging"
	"github.com/secmon-lab/flare/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		addr                  string
		noAuthorization       bool
		idTokenAudience       string
		tokenFetchConcurrency int
		policyCfg             config.Policy
		sentryCfg             config.Sentry
		firestoreCfg          config.Firestore
		firebaseCfg           config.Firebase
	)

	flags := joinFlags(
		[]cli.Flag{
			addrFlag(&addr),
			tokenFetchConcurrencyFlag(&tokenFetchConcurrency),
			&cli.BoolFlag{
				Name:        "no-authorization",
				Aliases:     []string{"no-authz"},
				Usage:       "Disable policy-based authorization checks (development only)",
				Category:    "Security",
				Sources:     cli.EnvVars("FLARE_NO_AUTHORIZATION"),
				Destination: &noAuthorization,
			},
			&cli.StringFlag{
				Name:        "id-token-audience",
				Usage:       "Audience required for Google ID tokens on hook requests (empty accepts any)",
				Category:    "Security",
				Sources:     cli.EnvVars("FLARE_ID_TOKEN_AUDIENCE"),
				Destination: &idTokenAudience,
			},
		},
		policyCfg.Flags(),
		sentryCfg.Flags(),
		firestoreCfg.Flags(),
		firebaseCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run alert trigger server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.From(ctx).Info("starting server",
				"addr", addr,
				"noAuthorization", noAuthorization,
				"idTokenAudience", idTokenAudience,
				"tokenFetchConcurrency", tokenFetchConcurrency,
				"policy", policyCfg,
				"sentry", sentryCfg,
				"firestore", firestoreCfg,
				"firebase", firebaseCfg,
			)

			flush, err := sentryCfg.Configure()
			defer flush()
			if err != nil {
				return err
			}

			policyClient, err := policyCfg.Configure()
			if err != nil {
				return err
			}
			if policyClient == nil && !noAuthorization {
				logging.From(ctx).Warn("no policy is configured, hook requests are not authorized")
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			fcm, err := firebaseCfg.Configure(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(
				usecase.WithRepository(repo),
				usecase.WithMessenger(fcm),
				usecase.WithTokenFetchConcurrency(tokenFetchConcurrency),
			)

			serverOptions := []server.Options{
				server.WithNoAuthorization(noAuthorization),
				server.WithIDTokenAudience(idTokenAudience),
			}
			if policyClient != nil {
				serverOptions = append(serverOptions, server.WithPolicy(policyClient))
			}

			return runServer(ctx, addr, server.New(uc, serverOptions...))
		},
	}
}
