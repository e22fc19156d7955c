package circle

import (
	"log/slog"

	"github.com/secmon-lab/flare/pkg/domain/types"
)

// Field names of documents in the users collection and its fcmTokens
// sub-collection.
const (
	FieldCircleID = "circleId"
	FieldLegacyID = "legacyId"
	FieldToken    = "token"
)

// User is a circle member. Membership is read from the user's own circleId
// field. LegacyID holds the identifier from the previous user ID scheme and is
// absent on users created after the migration.
type User struct {
	ID       types.UserID   `json:"id" yaml:"id" validate:"required"`
	CircleID types.CircleID `json:"circleId" yaml:"circleId" validate:"required"`
	LegacyID any            `json:"legacyId,omitempty" yaml:"legacyId,omitempty"`
}

// UserFromFields builds a User from decoded document fields.
func UserFromFields(id types.UserID, fields map[string]any) *User {
	u := &User{
		ID:       id,
		LegacyID: fields[FieldLegacyID],
	}
	if circleID, ok := fields[FieldCircleID].(string); ok {
		u.CircleID = types.CircleID(circleID)
	}
	return u
}

// Fields returns the document representation of the user.
func (x *User) Fields() map[string]any {
	fields := map[string]any{
		FieldCircleID: x.CircleID.String(),
	}
	if x.LegacyID != nil {
		fields[FieldLegacyID] = x.LegacyID
	}
	return fields
}

func (x User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", x.ID.String()),
		slog.String("circle_id", x.CircleID.String()),
		slog.Any("legacy_id", x.LegacyID),
	)
}
