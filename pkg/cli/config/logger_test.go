package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/flare/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// runFlags parses args against the flags of one config group.
func runFlags(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: func(ctx context.Context, c *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...))).Required()
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		var cfg config.Logger
		runFlags(t, cfg.Flags(), "--log-level", "verbose", "--log-format", "json")

		closer, err := cfg.Configure()
		gt.Error(t, err)
		closer()
	})

	t.Run("invalid format", func(t *testing.T) {
		var cfg config.Logger
		runFlags(t, cfg.Flags(), "--log-format", "xml")

		closer, err := cfg.Configure()
		gt.Error(t, err)
		closer()
	})

	t.Run("file output", func(t *testing.T) {
		var cfg config.Logger
		path := t.TempDir() + "/flare.log"
		runFlags(t, cfg.Flags(), "--log-format", "json", "--log-output", path)

		closer, err := cfg.Configure()
		gt.NoError(t, err)
		closer()
	})
}
