package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/flare/pkg/domain/interfaces"
	"github.com/secmon-lab/flare/pkg/domain/model/alert"
	"github.com/secmon-lab/flare/pkg/domain/model/circle"
	"github.com/secmon-lab/flare/pkg/domain/types"
	"github.com/secmon-lab/flare/pkg/repository"
	"github.com/secmon-lab/flare/pkg/utils/test"
)

// store is the repository surface exercised by the shared tests.
type store interface {
	interfaces.Repository
	PutUser(ctx context.Context, user *circle.User) error
	PutDeviceToken(ctx context.Context, token *circle.DeviceToken) error
	PutAlert(ctx context.Context, circleID types.CircleID, alertID types.AlertID, a *alert.Alert) error
}

func newFirestoreClient(t *testing.T) *repository.Firestore {
	vars := test.NewEnvVars(t, "TEST_FIRESTORE_PROJECT_ID", "TEST_FIRESTORE_DATABASE_ID")
	client, err := repository.NewFirestore(t.Context(),
		vars.Get("TEST_FIRESTORE_PROJECT_ID"),
		vars.Get("TEST_FIRESTORE_DATABASE_ID"),
	)
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, client.Close())
	})
	return client
}

func runRepositoryTest(t *testing.T, testFn func(t *testing.T, repo store)) {
	t.Run("Memory", func(t *testing.T) {
		testFn(t, repository.NewMemory())
	})

	t.Run("Firestore", func(t *testing.T) {
		testFn(t, newFirestoreClient(t))
	})
}

// uniqueID keeps documents of concurrent test runs apart in a shared database.
func uniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestFindUsersByCircle(t *testing.T) {
	runRepositoryTest(t, func(t *testing.T, repo store) {
		ctx := t.Context()
		circleID := types.CircleID(uniqueID("circle"))
		otherCircle := types.CircleID(uniqueID("other"))

		users := []*circle.User{
			{ID: types.UserID(uniqueID("u1")), CircleID: circleID, LegacyID: int64(7)},
			{ID: types.UserID(uniqueID("u2")), CircleID: circleID, LegacyID: "8"},
			{ID: types.UserID(uniqueID("u3")), CircleID: circleID},
			{ID: types.UserID(uniqueID("u4")), CircleID: otherCircle},
		}
		for _, u := range users {
			gt.NoError(t, repo.PutUser(ctx, u)).Required()
		}

		found, err := repo.FindUsersByCircle(ctx, circleID)
		gt.NoError(t, err).Required()
		gt.A(t, found).Length(3)

		byID := map[types.UserID]*circle.User{}
		for _, u := range found {
			gt.Equal(t, u.CircleID, circleID)
			byID[u.ID] = u
		}
		gt.Map(t, byID).HasKey(users[0].ID)
		gt.Map(t, byID).HasKey(users[1].ID)
		gt.Map(t, byID).HasKey(users[2].ID)
		gt.V(t, byID[users[0].ID].LegacyID).Equal(any(int64(7)))
		gt.V(t, byID[users[1].ID].LegacyID).Equal(any("8"))
		gt.V(t, byID[users[2].ID].LegacyID).Nil()

		t.Run("unknown circle yields no users", func(t *testing.T) {
			found, err := repo.FindUsersByCircle(ctx, types.CircleID(uniqueID("none")))
			gt.NoError(t, err)
			gt.A(t, found).Length(0)
		})
	})
}

func TestGetDeviceTokens(t *testing.T) {
	runRepositoryTest(t, func(t *testing.T, repo store) {
		ctx := t.Context()
		userID := types.UserID(uniqueID("user"))

		gt.NoError(t, repo.PutDeviceToken(ctx, &circle.DeviceToken{ID: "a", UserID: userID, Token: "token-a"})).Required()
		gt.NoError(t, repo.PutDeviceToken(ctx, &circle.DeviceToken{ID: "b", UserID: userID, Token: "token-b"})).Required()
		gt.NoError(t, repo.PutDeviceToken(ctx, &circle.DeviceToken{ID: "c", UserID: userID})).Required()

		tokens, err := repo.GetDeviceTokens(ctx, userID)
		gt.NoError(t, err).Required()
		gt.A(t, tokens).Length(3)

		values := tokens.Values()
		gt.A(t, values).Length(2)
		gt.A(t, values).Has("token-a")
		gt.A(t, values).Has("token-b")

		t.Run("put with same ID replaces token", func(t *testing.T) {
			gt.NoError(t, repo.PutDeviceToken(ctx, &circle.DeviceToken{ID: "a", UserID: userID, Token: "token-a2"})).Required()
			tokens, err := repo.GetDeviceTokens(ctx, userID)
			gt.NoError(t, err).Required()
			gt.A(t, tokens).Length(3)
			gt.A(t, tokens.Values()).Has("token-a2")
			gt.A(t, tokens.Values()).Length(2)
		})

		t.Run("user without tokens", func(t *testing.T) {
			tokens, err := repo.GetDeviceTokens(ctx, types.UserID(uniqueID("empty")))
			gt.NoError(t, err)
			gt.A(t, tokens).Length(0)
		})
	})
}

func TestGetAlert(t *testing.T) {
	runRepositoryTest(t, func(t *testing.T, repo store) {
		ctx := t.Context()
		circleID := types.CircleID(uniqueID("circle"))
		alertID := types.AlertID(uniqueID("alert"))

		a := &alert.Alert{
			SenderID:     int64(42),
			SenderName:   "Alice",
			Message:      "Help",
			LocationText: "Near park",
		}
		gt.NoError(t, repo.PutAlert(ctx, circleID, alertID, a)).Required()

		got, err := repo.GetAlert(ctx, circleID, alertID)
		gt.NoError(t, err).Required()
		gt.V(t, got).NotNil()
		gt.V(t, got.SenderID).Equal(any(int64(42)))
		gt.Equal(t, got.SenderName, "Alice")
		gt.Equal(t, got.Message, "Help")
		gt.Equal(t, got.LocationText, "Near park")

		t.Run("missing alert returns nil", func(t *testing.T) {
			got, err := repo.GetAlert(ctx, circleID, types.AlertID(uniqueID("missing")))
			gt.NoError(t, err)
			gt.V(t, got).Nil()
		})

		t.Run("alert is scoped by circle", func(t *testing.T) {
			got, err := repo.GetAlert(ctx, types.CircleID(uniqueID("other")), alertID)
			gt.NoError(t, err)
			gt.V(t, got).Nil()
		})
	})
}
