package alert

import (
	"log/slog"

	"github.com/secmon-lab/flare/pkg/domain/model/notification"
	"github.com/secmon-lab/flare/pkg/domain/types"
)

const (
	DefaultTitle   = "Circle member needs help"
	DefaultMessage = "Emergency alert"
)

// Field names of an alert document in circles/{circleId}/alerts/{alertId}.
const (
	FieldSenderID     = "senderId"
	FieldSenderName   = "senderName"
	FieldMessage      = "message"
	FieldLocationText = "locationText"
)

// Alert is one emergency event raised by a circle member. The circle it
// belongs to is given by the trigger path, not by the record. The record is
// treated as immutable once read.
type Alert struct {
	// SenderID is kept as stored. Clients write it either as a number or a
	// numeric string; see IsSender.
	SenderID     any    `json:"senderId,omitempty"`
	SenderName   string `json:"senderName,omitempty"`
	Message      string `json:"message,omitempty"`
	LocationText string `json:"locationText,omitempty"`
}

// FromFields builds an Alert from decoded document fields. Non-string values
// in text fields are stringified the same way the sender ID is.
func FromFields(fields map[string]any) *Alert {
	if fields == nil {
		return nil
	}

	return &Alert{
		SenderID:     fields[FieldSenderID],
		SenderName:   textOf(fields[FieldSenderName]),
		Message:      textOf(fields[FieldMessage]),
		LocationText: textOf(fields[FieldLocationText]),
	}
}

// Fields returns the document representation of the alert. Empty fields are
// omitted.
func (x *Alert) Fields() map[string]any {
	fields := map[string]any{}
	if x.SenderID != nil {
		fields[FieldSenderID] = x.SenderID
	}
	for key, value := range map[string]string{
		FieldSenderName:   x.SenderName,
		FieldMessage:      x.Message,
		FieldLocationText: x.LocationText,
	} {
		if value != "" {
			fields[key] = value
		}
	}
	return fields
}

// Title returns the notification title: the sender name, or DefaultTitle.
func (x *Alert) Title() string {
	if x.SenderName != "" {
		return x.SenderName
	}
	return DefaultTitle
}

// Body returns the message followed by the location text on its own line.
// The location line is omitted when empty.
func (x *Alert) Body() string {
	message := x.Message
	if message == "" {
		message = DefaultMessage
	}
	if x.LocationText != "" {
		return message + "\n" + x.LocationText
	}
	return message
}

// SenderIDString returns the sender ID as text, or an empty string when absent.
func (x *Alert) SenderIDString() string {
	return textOf(x.SenderID)
}

// Notification builds the push payload for this alert.
func (x *Alert) Notification(circleID types.CircleID, alertID types.AlertID) notification.Payload {
	return notification.Payload{
		Title: x.Title(),
		Body:  x.Body(),
		Data: map[string]string{
			"circleId":     circleID.String(),
			"alertId":      alertID.String(),
			"senderId":     x.SenderIDString(),
			"locationText": x.LocationText,
		},
	}
}

func (x Alert) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("sender_id", x.SenderIDString()),
		slog.String("sender_name", x.SenderName),
		slog.String("message", x.Message),
		slog.String("location_text", x.LocationText),
	)
}
