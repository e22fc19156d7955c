package repository

import (
	"context"
	"maps"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/interfaces"
	"github.com/secmon-lab/flare/pkg/domain/model/alert"
	"github.com/secmon-lab/flare/pkg/domain/model/circle"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/domain/types"
	"github.com/secmon-lab/flare/pkg/utils/errutil"
)

type alertKey struct {
	circleID types.CircleID
	alertID  types.AlertID
}

type Memory struct {
	mu sync.RWMutex

	users  map[types.UserID]*circle.User
	tokens map[types.UserID]circle.DeviceTokens
	alerts map[alertKey]*alert.Alert

	// Call counter for tracking method invocations
	callCounts map[string]int
	callMu     sync.RWMutex

	eb *goerr.Builder
}

var _ interfaces.Repository = &Memory{}

func NewMemory() *Memory {
	return &Memory{
		users:      make(map[types.UserID]*circle.User),
		tokens:     make(map[types.UserID]circle.DeviceTokens),
		alerts:     make(map[alertKey]*alert.Alert),
		callCounts: make(map[string]int),
		eb:         goerr.NewBuilder(goerr.V("repository", "memory")),
	}
}

// incrementCallCount safely increments the call counter for a method
func (r *Memory) incrementCallCount(methodName string) {
	r.callMu.Lock()
	defer r.callMu.Unlock()
	r.callCounts[methodName]++
}

// GetCallCount returns the number of times a method has been called
func (r *Memory) GetCallCount(methodName string) int {
	r.callMu.RLock()
	defer r.callMu.RUnlock()
	return r.callCounts[methodName]
}

// FindUsersByCircle returns members ordered by user ID, which matches the
// default document order of a Firestore query.
func (r *Memory) FindUsersByCircle(ctx context.Context, circleID types.CircleID) ([]*circle.User, error) {
	r.incrementCallCount("FindUsersByCircle")
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []*circle.User
	for _, u := range r.users {
		if u.CircleID == circleID {
			copied := *u
			users = append(users, &copied)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})

	return users, nil
}

func (r *Memory) GetDeviceTokens(ctx context.Context, userID types.UserID) (circle.DeviceTokens, error) {
	r.incrementCallCount("GetDeviceTokens")
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tokens circle.DeviceTokens
	for _, t := range r.tokens[userID] {
		copied := *t
		tokens = append(tokens, &copied)
	}
	return tokens, nil
}

func (r *Memory) GetAlert(ctx context.Context, circleID types.CircleID, alertID types.AlertID) (*alert.Alert, error) {
	r.incrementCallCount("GetAlert")
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.alerts[alertKey{circleID: circleID, alertID: alertID}]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *Memory) PutUser(ctx context.Context, user *circle.User) error {
	if err := user.ID.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid user", goerr.T(errs.TagValidation))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

// PutDeviceToken adds the token to the user's set. A token with an existing
// ID replaces the stored one; a token without ID gets a generated one.
func (r *Memory) PutDeviceToken(ctx context.Context, token *circle.DeviceToken) error {
	if err := token.UserID.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid device token owner",
			goerr.TV(errutil.DocumentKey, token.ID),
			goerr.T(errs.TagValidation))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	copied := *token

	tokens := r.tokens[token.UserID]
	for i, t := range tokens {
		if t.ID == token.ID {
			tokens[i] = &copied
			return nil
		}
	}
	r.tokens[token.UserID] = append(tokens, &copied)
	return nil
}

func (r *Memory) PutAlert(ctx context.Context, circleID types.CircleID, alertID types.AlertID, a *alert.Alert) error {
	if err := circleID.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid circle ID", goerr.T(errs.TagValidation))
	}
	if err := alertID.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid alert ID", goerr.T(errs.TagValidation))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *a
	r.alerts[alertKey{circleID: circleID, alertID: alertID}] = &copied
	return nil
}

// GetAllCallCounts returns a copy of all call counts
func (r *Memory) GetAllCallCounts() map[string]int {
	r.callMu.RLock()
	defer r.callMu.RUnlock()
	return maps.Clone(r.callCounts)
}
