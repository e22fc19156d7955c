package notification

import "log/slog"

// Payload is the outbound push message. It is built once per alert and is not
// persisted.
type Payload struct {
	Title string
	Body  string
	Data  map[string]string
}

func (x Payload) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("title", x.Title),
		slog.String("body", x.Body),
		slog.Any("data", x.Data),
	)
}
