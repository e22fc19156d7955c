package notification

import "log/slog"

// Summary describes one relay of an alert to its circle.
type Summary struct {
	// Members is the number of users in the circle, sender included.
	Members int
	// Excluded is the number of users recognized as the sender.
	Excluded int
	// Tokens is the number of device tokens the payload was addressed to.
	Tokens int
	// Report is nil when nothing was dispatched.
	Report *Report
}

func (x Summary) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("members", x.Members),
		slog.Int("excluded", x.Excluded),
		slog.Int("tokens", x.Tokens),
	}
	if x.Report != nil {
		attrs = append(attrs, slog.Any("report", x.Report))
	}
	return slog.GroupValue(attrs...)
}
