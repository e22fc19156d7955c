package cli

import (
	"context"
	"io"

	"github.com/m-mizutani/fireconf"
	"github.com/secmon-lab/flare/pkg/domain/model/notification"
	"github.com/secmon-lab/flare/pkg/domain/types"
	"github.com/secmon-lab/flare/pkg/usecase"
)

// DefineFirestoreIndexes exposes defineFirestoreIndexes for testing
func DefineFirestoreIndexes() *fireconf.Config {
	return defineFirestoreIndexes()
}

func RunNotify(ctx context.Context, uc *usecase.UseCases, w io.Writer, circleID types.CircleID, alertID types.AlertID) error {
	return runNotify(ctx, uc, w, circleID, alertID)
}

func DisplaySummary(w io.Writer, circleID types.CircleID, alertID types.AlertID, s *notification.Summary) {
	displaySummary(w, circleID, alertID, s)
}

func LoadEnvFile() error {
	return loadEnvFile()
}
