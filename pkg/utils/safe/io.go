package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/secmon-lab/flare/pkg/utils/logging"
)

// Close closes the closer and logs the error instead of returning it.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}
