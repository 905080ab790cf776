// Package installer implements the termlock-setup bootstrap: prerequisite
// checks, application directory layout, binary staging, and idempotent
// shell alias registration.
//
// There is deliberately no rollback: a failed step leaves already-created
// directories and profile lines in place, and a re-run converges on the
// same end state.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/avolkov/termlock/internal/config"
	"github.com/avolkov/termlock/internal/logging"
)

// lookPath is a test seam for exec.LookPath.
var lookPath = exec.LookPath

// corePrerequisites are the external utilities the menu shells out to.
// Their absence aborts the install.
var corePrerequisites = []string{"uname", "df", "ps", "ping"}

// BinaryName is the file name the application is staged under.
const BinaryName = "termlock"

type Installer struct {
	cfg *config.Config
	log logging.Logger

	// Source is the path of the application binary to stage. When empty,
	// a sibling of the running setup binary named BinaryName is used.
	Source string
}

func New(cfg *config.Config, log logging.Logger) *Installer {
	return &Installer{cfg: cfg, log: log}
}

// Run performs the full installation. Each step is idempotent, so a re-run
// on an already installed system performs no mutation.
func (i *Installer) Run(ctx context.Context) error {
	if err := i.CheckPrerequisites(ctx); err != nil {
		return err
	}
	if err := i.EnsureDirs(ctx); err != nil {
		return err
	}
	target, err := i.StageBinary(ctx)
	if err != nil {
		return err
	}
	added, err := EnsureAliases(i.cfg.ProfileFile, target)
	if err != nil {
		return fmt.Errorf("register aliases: %w", err)
	}
	if added {
		i.log.Info(ctx, "aliases registered", "profile", i.cfg.ProfileFile)
	} else {
		i.log.Info(ctx, "aliases already registered", "profile", i.cfg.ProfileFile)
	}
	return nil
}

// CheckPrerequisites verifies the external utilities the application needs.
// A missing core utility is an error; a missing package manager only logs a
// warning, since the rest of the menu works without it.
func (i *Installer) CheckPrerequisites(ctx context.Context) error {
	for _, name := range corePrerequisites {
		if _, err := lookPath(name); err != nil {
			return fmt.Errorf("prerequisite %q not found on PATH: %w", name, err)
		}
	}
	if _, err := lookPath(i.cfg.PkgManager); err != nil {
		i.log.Warn(ctx, "package manager not found, menu entry will fail",
			"command", i.cfg.PkgManager)
	}
	return nil
}

// EnsureDirs creates the application directory layout. Existing directories
// are left as they are.
func (i *Installer) EnsureDirs(ctx context.Context) error {
	for _, dir := range []string{i.cfg.AppDir, i.cfg.BinDir(), i.cfg.SandboxDir()} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	i.log.Debug(ctx, "directories in place", "appdir", i.cfg.AppDir)
	return nil
}

// StageBinary copies the application binary into the bin directory and
// marks it executable. It returns the installed path. A missing source
// aborts the install; nothing already written is cleaned up.
func (i *Installer) StageBinary(ctx context.Context) (string, error) {
	src := i.Source
	if src == "" {
		self, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locate setup binary: %w", err)
		}
		src = filepath.Join(filepath.Dir(self), BinaryName)
	}

	target := filepath.Join(i.cfg.BinDir(), BinaryName)
	if err := copyFile(src, target, 0o755); err != nil {
		return "", fmt.Errorf("stage %s: %w", src, err)
	}

	i.log.Info(ctx, "binary staged", "src", src, "dst", target)
	return target, nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	// O_CREATE honors umask, the install contract does not.
	return os.Chmod(dst, perm)
}
