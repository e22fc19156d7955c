package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, flag := range flags {
		result = append(result, flag...)
	}
	return result
}

func addrFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "addr",
		Aliases:     []string{"a"},
		Sources:     cli.EnvVars("FLARE_ADDR"),
		Usage:       "Listen address",
		Value:       "127.0.0.1:8080",
		Destination: dst,
	}
}

func tokenFetchConcurrencyFlag(dst *int) cli.Flag {
	return &cli.IntFlag{
		Name:        "token-fetch-concurrency",
		Usage:       "Number of members whose device tokens are read in parallel (1 reads sequentially)",
		Sources:     cli.EnvVars("FLARE_TOKEN_FETCH_CONCURRENCY"),
		Value:       4,
		Destination: dst,
	}
}

// runServer serves handler on addr until SIGINT/SIGTERM or ctx is done, then
// shuts down gracefully.
func runServer(ctx context.Context, addr string, handler http.Handler) error {
	httpServer := http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		if err != nil {
			return goerr.Wrap(err, "failed to run http server", goerr.V("addr", addr))
		}
		return nil
	case sig := <-sigCh:
		logging.From(ctx).Info("shutting down server", "signal", sig.String())
	case <-ctx.Done():
		logging.From(ctx).Info("shutting down server", "reason", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown http server")
	}
	return nil
}
