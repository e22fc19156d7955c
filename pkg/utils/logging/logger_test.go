package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/flare/pkg/utils/logging"
)

func TestLogger(t *testing.T) {
	t.Run("secret prefix is redacted", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON, false)
		logger.Info("hello",
			slog.String("secret_key", "xxx"),
			slog.String("normal_key", "aaa"),
		)

		gt.S(t, buf.String()).Contains("aaa").NotContains("xxx")
	})

	t.Run("device token field is redacted", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON, false)
		type deviceToken struct {
			Token  string
			UserID string
		}
		logger.Info("token", slog.Any("device", deviceToken{Token: "fcm-registration-abc", UserID: "u1"}))

		gt.S(t, buf.String()).Contains("u1").NotContains("fcm-registration-abc")
	})

	t.Run("level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON, false)
		logger.Debug("hidden")
		gt.Equal(t, buf.Len(), 0)
	})
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON, false)

	ctx := logging.With(context.Background(), logger)
	logging.From(ctx).Info("from context")
	gt.S(t, buf.String()).Contains("from context")

	gt.V(t, logging.From(context.Background())).NotNil()
}
