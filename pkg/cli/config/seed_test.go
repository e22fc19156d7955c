package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/flare/pkg/cli/config"
	"github.com/secmon-lab/flare/pkg/domain/types"
	"github.com/secmon-lab/flare/pkg/repository"
)

func TestLoadSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("loads users, tokens and alerts", func(t *testing.T) {
		data := []byte(`
users:
  - id: user-a
    circleId: circle-1
    legacyId: 42
    tokens: [token-a1, token-a2]
  - id: user-b
    circleId: circle-1
alerts:
  - id: alert-1
    circleId: circle-1
    senderId: "42"
    message: help
`)
		repo := repository.NewMemory()
		gt.NoError(t, config.LoadSeed(ctx, repo, data)).Required()

		users, err := repo.FindUsersByCircle(ctx, "circle-1")
		gt.NoError(t, err).Required()
		gt.A(t, users).Length(2).Required()
		gt.Equal(t, users[0].ID, types.UserID("user-a"))
		gt.V(t, users[0].LegacyID).Equal(any(42))

		tokens, err := repo.GetDeviceTokens(ctx, "user-a")
		gt.NoError(t, err).Required()
		gt.Equal(t, tokens.Values(), []string{"token-a1", "token-a2"})

		a, err := repo.GetAlert(ctx, "circle-1", "alert-1")
		gt.NoError(t, err).Required()
		gt.V(t, a).NotNil()
		gt.V(t, a.SenderID).Equal(any("42"))
		gt.Equal(t, a.Message, "help")
	})

	t.Run("rejects user without circle", func(t *testing.T) {
		data := []byte(`
users:
  - id: user-a
`)
		gt.Error(t, config.LoadSeed(ctx, repository.NewMemory(), data))
	})

	t.Run("rejects empty token", func(t *testing.T) {
		data := []byte(`
users:
  - id: user-a
    circleId: circle-1
    tokens: [""]
`)
		gt.Error(t, config.LoadSeed(ctx, repository.NewMemory(), data))
	})

	t.Run("rejects broken YAML", func(t *testing.T) {
		gt.Error(t, config.LoadSeed(ctx, repository.NewMemory(), []byte("users: [")))
	})
}

func TestSeedConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("empty repository without file", func(t *testing.T) {
		cfg := &config.Seed{}
		repo, err := cfg.Configure(ctx)
		gt.NoError(t, err).Required()

		users, err := repo.FindUsersByCircle(ctx, "circle-1")
		gt.NoError(t, err)
		gt.A(t, users).Length(0)
	})
}

func TestNewSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("loads fixture file", func(t *testing.T) {
		repo, err := config.NewSeed("testdata/seed.yaml").Configure(ctx)
		gt.NoError(t, err).Required()

		users, err := repo.FindUsersByCircle(ctx, "circle-1")
		gt.NoError(t, err).Required()
		gt.A(t, users).Length(3)

		a, err := repo.GetAlert(ctx, "circle-1", "alert-1")
		gt.NoError(t, err).Required()
		gt.V(t, a).NotNil()
		gt.V(t, a.SenderID).Equal(any("42"))
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := config.NewSeed("testdata/no-such-seed.yaml").Configure(ctx)
		gt.Error(t, err)
	})
}
