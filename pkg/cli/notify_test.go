package cli_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/flare/pkg/cli"
	"github.com/secmon-lab/flare/pkg/cli/config"
	"github.com/secmon-lab/flare/pkg/domain/model/notification"
	"github.com/secmon-lab/flare/pkg/service/messenger"
	"github.com/secmon-lab/flare/pkg/usecase"
)

func seededUseCase(t *testing.T) *usecase.UseCases {
	t.Helper()
	ctx := context.Background()

	repo, err := config.NewSeed("config/testdata/seed.yaml").Configure(ctx)
	gt.NoError(t, err).Required()

	return usecase.New(
		usecase.WithRepository(repo),
		usecase.WithMessenger(messenger.NewConsole(io.Discard)),
	)
}

func TestRunNotify(t *testing.T) {
	ctx := context.Background()

	t.Run("relays stored alert and prints summary", func(t *testing.T) {
		var buf bytes.Buffer
		err := cli.RunNotify(ctx, seededUseCase(t), &buf, "circle-1", "alert-1")
		gt.NoError(t, err)

		gt.S(t, buf.String()).
			Contains("Alert alert-1 in circle circle-1").
			Contains("Members:   3 (1 excluded as sender)").
			Contains("Tokens:    2 tokens").
			Contains("Delivered: 2 of 2")
	})

	t.Run("unknown alert", func(t *testing.T) {
		var buf bytes.Buffer
		err := cli.RunNotify(ctx, seededUseCase(t), &buf, "circle-1", "missing")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("no such alert")
		gt.Equal(t, buf.String(), "")
	})
}

func TestDisplaySummary(t *testing.T) {
	t.Run("without tokens", func(t *testing.T) {
		var buf bytes.Buffer
		cli.DisplaySummary(&buf, "circle-1", "alert-1", &notification.Summary{Members: 1, Excluded: 1})
		gt.S(t, buf.String()).
			Contains("Tokens:    0 tokens").
			Contains("nothing to send")
	})

	t.Run("with failures", func(t *testing.T) {
		var buf bytes.Buffer
		cli.DisplaySummary(&buf, "circle-1", "alert-1", &notification.Summary{
			Members: 1200,
			Tokens:  2,
			Report: &notification.Report{
				SuccessCount: 1,
				FailureCount: 1,
				Failures: []notification.Failure{
					{Index: 1, Token: "secret-token-abcd", Error: "registration-token-not-registered"},
				},
				Duration: 1500 * time.Millisecond,
			},
		})

		gt.S(t, buf.String()).
			Contains("Members:   1,200").
			Contains("Delivered: 1 of 2 in 1.5s").
			Contains("Failed:").
			Contains("****abcd: registration-token-not-registered").
			NotContains("secret-token")
	})
}

func TestNotifyCommand(t *testing.T) {
	t.Setenv("FLARE_FIRESTORE_PROJECT_ID", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")

	t.Run("console delivery from seed", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"flare", "--log-quiet", "notify",
			"--circle-id", "circle-1",
			"--alert-id", "alert-1",
			"--seed", "config/testdata/seed.yaml",
			"--console",
		})
		gt.NoError(t, err)
	})

	t.Run("missing alert", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"flare", "--log-quiet", "notify",
			"--circle-id", "circle-1",
			"--alert-id", "alert-404",
			"--seed", "config/testdata/seed.yaml",
			"--console",
		})
		gt.Error(t, err)
	})

	t.Run("requires alert ID", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"flare", "--log-quiet", "notify",
			"--circle-id", "circle-1",
		})
		gt.Error(t, err)
	})
}
