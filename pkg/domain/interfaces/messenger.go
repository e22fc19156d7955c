package interfaces

import (
	"context"

	"github.com/secmon-lab/flare/pkg/domain/model/notification"
)

// Messenger delivers one notification payload to many device tokens.
type Messenger interface {
	SendMulticast(ctx context.Context, tokens []string, payload notification.Payload) (*notification.Report, error)
}
