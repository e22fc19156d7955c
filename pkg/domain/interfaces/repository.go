package interfaces

import (
	"context"

	"github.com/secmon-lab/flare/pkg/domain/model/alert"
	"github.com/secmon-lab/flare/pkg/domain/model/circle"
	"github.com/secmon-lab/flare/pkg/domain/types"
)

// Repository is the read side of the document store. Reads are point-in-time
// snapshots; nothing ties the recipient query to later token reads.
type Repository interface {
	// FindUsersByCircle returns every user whose circleId equals circleID.
	FindUsersByCircle(ctx context.Context, circleID types.CircleID) ([]*circle.User, error)
	// GetDeviceTokens returns the fcmTokens sub-collection of the user.
	GetDeviceTokens(ctx context.Context, userID types.UserID) (circle.DeviceTokens, error)
	// GetAlert returns the alert document, or nil if it does not exist.
	GetAlert(ctx context.Context, circleID types.CircleID, alertID types.AlertID) (*alert.Alert, error)
}
