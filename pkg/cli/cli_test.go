package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/flare/pkg/cli"
)

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		t.Setenv("FLARE_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
		gt.NoError(t, cli.LoadEnvFile())
	})

	t.Run("loads variables without overriding", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		gt.NoError(t, os.WriteFile(path, []byte("FLARE_TEST_LOADED=from-file\nFLARE_TEST_PRESET=from-file\n"), 0600)).Required()

		t.Setenv("FLARE_ENV_FILE", path)
		t.Setenv("FLARE_TEST_PRESET", "from-env")
		t.Cleanup(func() { _ = os.Unsetenv("FLARE_TEST_LOADED") })

		gt.NoError(t, cli.LoadEnvFile()).Required()
		gt.Equal(t, os.Getenv("FLARE_TEST_LOADED"), "from-file")
		gt.Equal(t, os.Getenv("FLARE_TEST_PRESET"), "from-env")
	})
}
