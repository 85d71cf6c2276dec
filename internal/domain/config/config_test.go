package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domainerr "gazette/internal/domain/errors"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Site.Theme = ""
	cfg.Build.SourceDir = "  "
	cfg.Serve.Addr = "8080"

	err := cfg.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, domainerr.ErrInvalid)
	require.Contains(t, err.Error(), "site.theme")
	require.Contains(t, err.Error(), "build.source_dir")
	require.Contains(t, err.Error(), "serve.addr")
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
site:
  theme: dark
build:
  public_dir: dist
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.Site.Theme)
	require.Equal(t, "dist", cfg.Build.PublicDir)
	// Untouched fields keep their defaults.
	require.Equal(t, "source", cfg.Build.SourceDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestLoadOrDefault_MissingFileFallsBack(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOrDefault_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\nnot yaml"), 0o644))

	_, err := LoadOrDefault(path)
	require.Error(t, err)
}
