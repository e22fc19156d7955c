package circle

import "github.com/secmon-lab/flare/pkg/domain/types"

// DeviceToken is one registered push destination of a user. Tokens are
// registered and rotated by the client apps; flare only reads them.
type DeviceToken struct {
	ID     string       `json:"id" yaml:"id"`
	UserID types.UserID `json:"userId" yaml:"-"`
	Token  string       `json:"token" yaml:"token" validate:"required"`
}

// TokenFromFields builds a DeviceToken from decoded document fields. A
// missing or non-string token field yields an empty Token.
func TokenFromFields(userID types.UserID, id string, fields map[string]any) *DeviceToken {
	t := &DeviceToken{
		ID:     id,
		UserID: userID,
	}
	if token, ok := fields[FieldToken].(string); ok {
		t.Token = token
	}
	return t
}

// DeviceTokens is the set of tokens registered by one user.
type DeviceTokens []*DeviceToken

// Values returns the non-empty token strings in order.
func (x DeviceTokens) Values() []string {
	values := make([]string, 0, len(x))
	for _, t := range x {
		if t != nil && t.Token != "" {
			values = append(values, t.Token)
		}
	}
	return values
}
