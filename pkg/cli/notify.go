package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/cli/config"
	"github.com/secmon-lab/flare/pkg/domain/interfaces"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/domain/model/notification"
	"github.com/secmon-lab/flare/pkg/domain/types"
	"github.com/secmon-lab/flare/pkg/service/messenger"
	"github.com/secmon-lab/flare/pkg/usecase"
	"github.com/secmon-lab/flare/pkg/utils/logging"
	"github.com/secmon-lab/flare/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdNotify() *cli.Command {
	var (
		circleID              string
		alertID               string
		console               bool
		tokenFetchConcurrency int
		firestoreCfg          config.Firestore
		firebaseCfg           config.Firebase
		seedCfg               config.Seed
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "circle-id",
				Aliases:     []string{"c"},
				Usage:       "Circle ID of the alert",
				Required:    true,
				Destination: &circleID,
			},
			&cli.StringFlag{
				Name:        "alert-id",
				Aliases:     []string{"i"},
				Usage:       "Alert ID to relay",
				Required:    true,
				Destination: &alertID,
			},
			&cli.BoolFlag{
				Name:        "console",
				Usage:       "Print the notification instead of sending it through FCM",
				Sources:     cli.EnvVars("FLARE_CONSOLE"),
				Destination: &console,
			},
			tokenFetchConcurrencyFlag(&tokenFetchConcurrency),
		},
		firestoreCfg.Flags(),
		firebaseCfg.Flags(),
		seedCfg.Flags(),
	)

	return &cli.Command{
		Name:    "notify",
		Aliases: []string{"n"},
		Usage:   "Relay a stored alert to its circle once",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := types.CircleID(circleID).Validate(); err != nil {
				return err
			}
			if err := types.AlertID(alertID).Validate(); err != nil {
				return err
			}

			logging.From(ctx).Debug("notify options",
				"circle_id", circleID,
				"alert_id", alertID,
				"console", console,
				"firestore", firestoreCfg,
				"firebase", firebaseCfg,
				"seed", seedCfg,
			)

			var repo interfaces.Repository
			switch {
			case firestoreCfg.IsConfigured():
				client, err := firestoreCfg.Configure(ctx)
				if err != nil {
					return err
				}
				defer safe.Close(ctx, client)
				repo = client
			default:
				memory, err := seedCfg.Configure(ctx)
				if err != nil {
					return err
				}
				repo = memory
			}

			var msg interfaces.Messenger
			if console {
				msg = messenger.NewConsole(os.Stdout)
			} else {
				fcm, err := firebaseCfg.Configure(ctx)
				if err != nil {
					return err
				}
				msg = fcm
			}

			uc := usecase.New(
				usecase.WithRepository(repo),
				usecase.WithMessenger(msg),
				usecase.WithTokenFetchConcurrency(tokenFetchConcurrency),
			)

			return runNotify(ctx, uc, os.Stdout, types.CircleID(circleID), types.AlertID(alertID))
		},
	}
}

type alertNotifier interface {
	NotifyAlert(ctx context.Context, circleID types.CircleID, alertID types.AlertID) (*notification.Summary, error)
}

func runNotify(ctx context.Context, uc alertNotifier, w io.Writer, circleID types.CircleID, alertID types.AlertID) error {
	summary, err := uc.NotifyAlert(ctx, circleID, alertID)
	if summary != nil {
		displaySummary(w, circleID, alertID, summary)
	}
	if err != nil {
		if goerr.HasTag(err, errs.TagNotFound) {
			return goerr.Wrap(err, "no such alert, check --circle-id and --alert-id")
		}
		return err
	}
	return nil
}

func displaySummary(w io.Writer, circleID types.CircleID, alertID types.AlertID, s *notification.Summary) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)

	_, _ = bold.Fprintf(w, "Alert %s in circle %s\n", alertID, circleID)
	fmt.Fprintf(w, "  Members:   %s (%s excluded as sender)\n",
		humanize.Comma(int64(s.Members)), humanize.Comma(int64(s.Excluded)))
	fmt.Fprintf(w, "  Tokens:    %s\n", english.Plural(s.Tokens, "token", ""))

	if s.Report == nil {
		fmt.Fprintln(w, "  Delivered: nothing to send")
		return
	}

	fmt.Fprintf(w, "  Delivered: %s of %s in %s\n",
		humanize.Comma(int64(s.Report.SuccessCount)),
		humanize.Comma(int64(s.Report.Total())),
		s.Report.Duration.Round(time.Millisecond))

	if s.Report.FailureCount == 0 {
		return
	}

	_, _ = red.Fprintf(w, "  Failed:    %s\n", humanize.Comma(int64(s.Report.FailureCount)))
	for _, f := range s.Report.Failures {
		fmt.Fprintf(w, "    - %s: %s\n", notification.MaskToken(f.Token), f.Error)
	}
}
