package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/model/alert"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/domain/model/notification"
	"github.com/secmon-lab/flare/pkg/domain/types"
	"github.com/secmon-lab/flare/pkg/utils/errutil"
	"github.com/secmon-lab/flare/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// HandleAlertCreated relays a newly created alert to every other member of
// the circle. Delivery failures are reported through errs.Handle and are not
// returned; only a failed store read makes it return an error, so that the
// trigger is redelivered.
func (uc *UseCases) HandleAlertCreated(ctx context.Context, circleID types.CircleID, alertID types.AlertID, a *alert.Alert) error {
	ctx = logging.WithAttrs(ctx,
		slog.String("circle_id", circleID.String()),
		slog.String("alert_id", alertID.String()),
	)

	if a == nil {
		logging.From(ctx).Debug("Alert record is absent, skip notification")
		return nil
	}

	if _, err := uc.relay(ctx, circleID, alertID, a); err != nil {
		if goerr.HasTag(err, errs.TagDispatch) {
			errs.Handle(ctx, err)
			return nil
		}
		return err
	}

	return nil
}

// NotifyAlert reads a stored alert and relays it. Unlike HandleAlertCreated,
// a delivery failure is returned to the caller.
func (uc *UseCases) NotifyAlert(ctx context.Context, circleID types.CircleID, alertID types.AlertID) (*notification.Summary, error) {
	ctx = logging.WithAttrs(ctx,
		slog.String("circle_id", circleID.String()),
		slog.String("alert_id", alertID.String()),
	)

	a, err := uc.repository.GetAlert(ctx, circleID, alertID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get alert",
			goerr.TV(errutil.CircleIDKey, circleID),
			goerr.TV(errutil.AlertIDKey, alertID),
			goerr.T(errs.TagDatabase))
	}
	if a == nil {
		return nil, goerr.New("alert not found",
			goerr.TV(errutil.CircleIDKey, circleID),
			goerr.TV(errutil.AlertIDKey, alertID),
			goerr.T(errs.TagNotFound))
	}

	return uc.relay(ctx, circleID, alertID, a)
}

func (uc *UseCases) relay(ctx context.Context, circleID types.CircleID, alertID types.AlertID, a *alert.Alert) (*notification.Summary, error) {
	logger := logging.From(ctx)

	tokens, summary, err := uc.collectTokens(ctx, circleID, a)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		logger.Info("No FCM tokens found for circle", "summary", summary)
		return summary, nil
	}

	if uc.messenger == nil {
		return summary, goerr.Wrap(errs.ErrMessengerUnavailable, "failed to send alert notification",
			goerr.TV(errutil.CircleIDKey, circleID),
			goerr.TV(errutil.AlertIDKey, alertID),
			goerr.T(errs.TagDispatch))
	}

	report, err := uc.messenger.SendMulticast(ctx, tokens, a.Notification(circleID, alertID))
	if err != nil {
		return summary, goerr.Wrap(err, "failed to send alert notification",
			goerr.TV(errutil.CircleIDKey, circleID),
			goerr.TV(errutil.AlertIDKey, alertID),
			goerr.TV(errutil.TokenCountKey, len(tokens)),
			goerr.T(errs.TagDispatch))
	}

	summary.Report = report
	logger.Info("Sent emergency alert notification", "summary", summary)

	return summary, nil
}

// collectTokens returns the device tokens of every member except the sender,
// ordered by member and then by token. The sender's tokens are never read.
func (uc *UseCases) collectTokens(ctx context.Context, circleID types.CircleID, a *alert.Alert) ([]string, *notification.Summary, error) {
	users, err := uc.repository.FindUsersByCircle(ctx, circleID)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to find circle members",
			goerr.TV(errutil.CircleIDKey, circleID),
			goerr.T(errs.TagDatabase))
	}

	summary := &notification.Summary{Members: len(users)}
	perUser := make([][]string, len(users))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(uc.tokenFetchConcurrency)

	for i, u := range users {
		if u == nil {
			continue
		}
		if alert.IsSender(u.LegacyID, a.SenderID) {
			summary.Excluded++
			logging.From(ctx).Debug("Skip sender", "user", u)
			continue
		}

		eg.Go(func() error {
			tokens, err := uc.repository.GetDeviceTokens(egCtx, u.ID)
			if err != nil {
				return goerr.Wrap(err, "failed to get device tokens",
					goerr.TV(errutil.UserIDKey, u.ID),
					goerr.T(errs.TagDatabase))
			}
			perUser[i] = tokens.Values()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	var tokens []string
	for _, values := range perUser {
		tokens = append(tokens, values...)
	}
	summary.Tokens = len(tokens)

	return tokens, summary, nil
}
