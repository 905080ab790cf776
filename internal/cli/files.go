package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avolkov/termlock/internal/common"
)

// sandboxPath resolves name inside the sandbox directory and rejects any
// path that would escape it.
func (a *App) sandboxPath(name string) (string, error) {
	sandbox := a.cfg.SandboxDir()
	resolved := filepath.Clean(filepath.Join(sandbox, name))
	if resolved != sandbox && !strings.HasPrefix(resolved, sandbox+string(filepath.Separator)) {
		return "", common.ErrorOutsideSandbox
	}
	return resolved, nil
}

func (a *App) fileOperations(ctx context.Context) error {
	return a.runSubMenu(ctx, "FILE OPERATIONS", []subOption{
		{Title: "List Files", Run: a.listFiles},
		{Title: "Create Directory", Run: a.createDirectory},
		{Title: "Delete File", Run: a.deleteFile},
		{Title: "View File", Run: a.viewFile},
	})
}

func (a *App) listFiles(ctx context.Context) error {
	entries, err := os.ReadDir(a.cfg.SandboxDir())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "(empty)")
		return nil
	}
	for _, e := range entries {
		marker := ""
		if e.IsDir() {
			marker = "/"
		}
		fmt.Fprintf(a.out, "%s%s\n", e.Name(), marker)
	}
	return nil
}

func (a *App) createDirectory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Directory name", a.out)
	if err != nil {
		return err
	}
	path, err := a.sandboxPath(name)
	if err != nil {
		return err
	}
	return os.Mkdir(path, 0o700)
}

func (a *App) deleteFile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "File name", a.out)
	if err != nil {
		return err
	}
	path, err := a.sandboxPath(name)
	if err != nil {
		return err
	}
	if path == a.cfg.SandboxDir() {
		return common.ErrorOutsideSandbox
	}
	return os.Remove(path)
}

func (a *App) viewFile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "File name", a.out)
	if err != nil {
		return err
	}
	path, err := a.sandboxPath(name)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}
