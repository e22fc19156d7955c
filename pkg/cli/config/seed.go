package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/model/alert"
	"github.com/secmon-lab/flare/pkg/domain/model/circle"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"github.com/secmon-lab/flare/pkg/domain/types"
	"github.com/secmon-lab/flare/pkg/repository"
	"github.com/secmon-lab/flare/pkg/utils/errutil"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Seed is a YAML fixture loaded into the in-memory repository for local runs.
type Seed struct {
	filePath string
}

type seedFile struct {
	Users  []seedUser  `yaml:"users" validate:"dive"`
	Alerts []seedAlert `yaml:"alerts" validate:"dive"`
}

type seedUser struct {
	ID       string   `yaml:"id" validate:"required"`
	CircleID string   `yaml:"circleId" validate:"required"`
	LegacyID any      `yaml:"legacyId"`
	Tokens   []string `yaml:"tokens" validate:"dive,required"`
}

type seedAlert struct {
	ID           string `yaml:"id" validate:"required"`
	CircleID     string `yaml:"circleId" validate:"required"`
	SenderID     any    `yaml:"senderId"`
	SenderName   string `yaml:"senderName"`
	Message      string `yaml:"message"`
	LocationText string `yaml:"locationText"`
}

// NewSeed returns a Seed that loads filePath.
func NewSeed(filePath string) *Seed {
	return &Seed{filePath: filePath}
}

func (x *Seed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed",
			Usage:       "Path to a YAML file with users, device tokens and alerts to load",
			Category:    "Dev",
			Destination: &x.filePath,
			Sources:     cli.EnvVars("FLARE_SEED"),
		},
	}
}

func (x Seed) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file_path", x.filePath),
	)
}

// Configure returns a memory repository holding the fixture. Without a seed
// file the repository is empty.
func (x *Seed) Configure(ctx context.Context) (*repository.Memory, error) {
	repo := repository.NewMemory()
	if x.filePath == "" {
		return repo, nil
	}

	data, err := os.ReadFile(filepath.Clean(x.filePath))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read seed file", goerr.TV(errutil.FilePathKey, x.filePath))
	}

	if err := loadSeed(ctx, repo, data); err != nil {
		return nil, goerr.Wrap(err, "failed to load seed file", goerr.TV(errutil.FilePathKey, x.filePath))
	}

	return repo, nil
}

func loadSeed(ctx context.Context, repo *repository.Memory, data []byte) error {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return goerr.Wrap(err, "invalid seed YAML", goerr.T(errs.TagValidation))
	}

	if err := validator.New().Struct(seed); err != nil {
		return goerr.Wrap(err, "invalid seed data", goerr.T(errs.TagValidation))
	}

	for _, u := range seed.Users {
		userID := types.UserID(u.ID)
		if err := repo.PutUser(ctx, &circle.User{
			ID:       userID,
			CircleID: types.CircleID(u.CircleID),
			LegacyID: u.LegacyID,
		}); err != nil {
			return err
		}

		for _, token := range u.Tokens {
			if err := repo.PutDeviceToken(ctx, &circle.DeviceToken{
				UserID: userID,
				Token:  token,
			}); err != nil {
				return err
			}
		}
	}

	for _, a := range seed.Alerts {
		if err := repo.PutAlert(ctx, types.CircleID(a.CircleID), types.AlertID(a.ID), &alert.Alert{
			SenderID:     a.SenderID,
			SenderName:   a.SenderName,
			Message:      a.Message,
			LocationText: a.LocationText,
		}); err != nil {
			return err
		}
	}

	return nil
}
