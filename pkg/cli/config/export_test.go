package config

import (
	"context"

	"github.com/secmon-lab/flare/pkg/repository"
)

func LoadSeed(ctx context.Context, repo *repository.Memory, data []byte) error {
	return loadSeed(ctx, repo, data)
}
