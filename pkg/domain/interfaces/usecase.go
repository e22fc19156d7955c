package interfaces

import (
	"context"

	"github.com/secmon-lab/flare/pkg/domain/model/alert"
	"github.com/secmon-lab/flare/pkg/domain/types"
)

type AlertUsecases interface {
	// HandleAlertCreated relays a newly created alert to the other members of
	// its circle. A nil alert is a no-op.
	HandleAlertCreated(ctx context.Context, circleID types.CircleID, alertID types.AlertID, a *alert.Alert) error
}
