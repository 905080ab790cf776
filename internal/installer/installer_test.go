package installer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/termlock/internal/config"
	"github.com/avolkov/termlock/internal/logging"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		AppDir:         filepath.Join(dir, "app"),
		DBFile:         "termlock.db",
		ProfileFile:    filepath.Join(dir, ".bashrc"),
		PkgManager:     "pkg",
		SessionTTL:     5 * time.Minute,
		CommandTimeout: time.Minute,
	}
}

func stubLookPath(t *testing.T, missing map[string]bool) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if missing[name] {
			return "", errors.New("not found")
		}
		return "/usr/bin/" + name, nil
	}
	t.Cleanup(func() { lookPath = orig })
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "termlock")
	require.NoError(t, os.WriteFile(src, []byte(content), 0o644))
	return src
}

func newTestInstaller(t *testing.T, cfg *config.Config) *Installer {
	t.Helper()
	return New(cfg, logging.NewDefault("error"))
}

func TestRun_FullInstall(t *testing.T) {
	stubLookPath(t, nil)
	cfg := testConfig(t)
	i := newTestInstaller(t, cfg)
	i.Source = writeSource(t, "#!binary")

	require.NoError(t, i.Run(context.Background()))

	// Directory layout created.
	assert.DirExists(t, cfg.AppDir)
	assert.DirExists(t, cfg.BinDir())
	assert.DirExists(t, cfg.SandboxDir())

	// Binary staged and executable.
	installed := filepath.Join(cfg.BinDir(), BinaryName)
	info, err := os.Stat(installed)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	// Aliases registered.
	profile, err := os.ReadFile(cfg.ProfileFile)
	require.NoError(t, err)
	assert.Contains(t, string(profile), "alias login='"+installed+"'")
	assert.Contains(t, string(profile), "alias logout='exit'")
}

func TestRun_Idempotent(t *testing.T) {
	stubLookPath(t, nil)
	cfg := testConfig(t)
	i := newTestInstaller(t, cfg)
	i.Source = writeSource(t, "#!binary")

	require.NoError(t, i.Run(context.Background()))
	first, err := os.ReadFile(cfg.ProfileFile)
	require.NoError(t, err)

	require.NoError(t, i.Run(context.Background()))
	second, err := os.ReadFile(cfg.ProfileFile)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "re-run must not duplicate alias lines")
}

func TestCheckPrerequisites_MissingCoreUtility(t *testing.T) {
	stubLookPath(t, map[string]bool{"ping": true})
	i := newTestInstaller(t, testConfig(t))

	err := i.CheckPrerequisites(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping")
}

func TestCheckPrerequisites_MissingPkgManagerIsWarning(t *testing.T) {
	stubLookPath(t, map[string]bool{"pkg": true})
	i := newTestInstaller(t, testConfig(t))

	assert.NoError(t, i.CheckPrerequisites(context.Background()))
}

func TestStageBinary_MissingSource(t *testing.T) {
	cfg := testConfig(t)
	i := newTestInstaller(t, cfg)
	i.Source = filepath.Join(t.TempDir(), "does-not-exist")

	require.NoError(t, i.EnsureDirs(context.Background()))
	_, err := i.StageBinary(context.Background())
	assert.Error(t, err)

	// No cleanup of partial state: directories stay.
	assert.DirExists(t, cfg.AppDir)
}

func TestEnsureDirs_ExistingIsNoError(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.BinDir(), 0o700))

	i := newTestInstaller(t, cfg)
	assert.NoError(t, i.EnsureDirs(context.Background()))
}
