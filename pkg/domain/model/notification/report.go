package notification

import (
	"log/slog"
	"time"
)

// Report is the per-token delivery outcome returned by the push provider. It
// is only logged; nothing acts on individual failures.
type Report struct {
	SuccessCount int
	FailureCount int
	Failures     []Failure
	Duration     time.Duration
}

// Failure describes one token that the provider rejected. Index refers to the
// position of the token in the dispatched list.
type Failure struct {
	Index int
	Token string
	Error string
}

// Total returns the number of tokens the report covers
func (x *Report) Total() int {
	return x.SuccessCount + x.FailureCount
}

// Merge appends a report produced for the tokens that follow the ones already
// covered by x.
func (x *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	offset := x.Total()
	for _, f := range other.Failures {
		f.Index += offset
		x.Failures = append(x.Failures, f)
	}
	x.SuccessCount += other.SuccessCount
	x.FailureCount += other.FailureCount
	x.Duration += other.Duration
}

func (x Report) LogValue() slog.Value {
	failures := make([]any, 0, len(x.Failures))
	for _, f := range x.Failures {
		failures = append(failures, slog.Group("",
			slog.Int("index", f.Index),
			slog.String("token", MaskToken(f.Token)),
			slog.String("error", f.Error),
		))
	}

	return slog.GroupValue(
		slog.Int("success_count", x.SuccessCount),
		slog.Int("failure_count", x.FailureCount),
		slog.Duration("duration", x.Duration),
		slog.Any("failures", failures),
	)
}

// MaskToken keeps the last four characters of a device token for correlation.
func MaskToken(token string) string {
	const visible = 4
	if len(token) <= visible {
		return "****"
	}
	return "****" + token[len(token)-visible:]
}
