package messenger

import (
	"context"
	"log/slog"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/interfaces"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/domain/model/notification"
	"github.com/secmon-lab/flare/pkg/utils/clock"
	"github.com/secmon-lab/flare/pkg/utils/errutil"
	"github.com/secmon-lab/flare/pkg/utils/logging"
)

// MaxMulticastTokens is the number of tokens FCM accepts in one multicast call.
const MaxMulticastTokens = 500

// FCM delivers payloads through Firebase Cloud Messaging.
type FCM struct {
	client    interfaces.FCMClient
	dryRun    bool
	batchSize int
}

var _ interfaces.Messenger = &FCM{}

type FCMOption func(*FCM)

// WithDryRun makes FCM validate messages without delivering them to devices.
func WithDryRun(dryRun bool) FCMOption {
	return func(x *FCM) {
		x.dryRun = dryRun
	}
}

// WithBatchSize overrides the number of tokens per multicast call. Values
// outside 1..MaxMulticastTokens are ignored.
func WithBatchSize(size int) FCMOption {
	return func(x *FCM) {
		if size > 0 && size <= MaxMulticastTokens {
			x.batchSize = size
		}
	}
}

func NewFCM(client interfaces.FCMClient, opts ...FCMOption) *FCM {
	x := &FCM{
		client:    client,
		batchSize: MaxMulticastTokens,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// SendMulticast sends the payload to every token. Token lists longer than the
// batch size are sent in consecutive calls and the responses are merged in
// token order. If a call fails, the batches before it have already been
// delivered.
func (x *FCM) SendMulticast(ctx context.Context, tokens []string, payload notification.Payload) (*notification.Report, error) {
	report := &notification.Report{}

	for batch, start := 0, 0; start < len(tokens); batch, start = batch+1, start+x.batchSize {
		chunk := tokens[start:min(start+x.batchSize, len(tokens))]

		msg := &messaging.MulticastMessage{
			Tokens: chunk,
			Data:   payload.Data,
			Notification: &messaging.Notification{
				Title: payload.Title,
				Body:  payload.Body,
			},
		}

		started := clock.Now(ctx)
		resp, err := x.send(ctx, msg)
		if err != nil {
			if batch > 0 {
				logging.From(ctx).Warn("Multicast interrupted after partial delivery",
					"delivered", report)
			}
			return nil, goerr.Wrap(err, "failed to send multicast message",
				goerr.TV(errutil.BatchKey, batch),
				goerr.TV(errutil.TokenCountKey, len(chunk)),
				goerr.V("dry_run", x.dryRun),
				goerr.T(errs.TagDispatch))
		}

		report.Merge(toReport(chunk, resp, clock.Since(ctx, started)))
	}

	logging.From(ctx).Debug("Multicast finished",
		slog.Int("tokens", len(tokens)),
		slog.Bool("dry_run", x.dryRun),
		slog.Any("report", report),
	)

	return report, nil
}

func (x *FCM) send(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if x.dryRun {
		return x.client.SendEachForMulticastDryRun(ctx, msg)
	}
	return x.client.SendEachForMulticast(ctx, msg)
}

func toReport(tokens []string, resp *messaging.BatchResponse, duration time.Duration) *notification.Report {
	report := &notification.Report{Duration: duration}
	if resp == nil {
		return report
	}

	report.SuccessCount = resp.SuccessCount
	report.FailureCount = resp.FailureCount

	for i, r := range resp.Responses {
		if r == nil || r.Success {
			continue
		}

		f := notification.Failure{Index: i}
		if i < len(tokens) {
			f.Token = tokens[i]
		}
		if r.Error != nil {
			f.Error = r.Error.Error()
		}
		report.Failures = append(report.Failures, f)
	}

	return report
}
