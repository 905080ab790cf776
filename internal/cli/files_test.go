package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avolkov/termlock/internal/common"
	"github.com/avolkov/termlock/internal/store/users"
)

func stubSimpleText(t *testing.T, answer string) {
	t.Helper()
	orig := getSimpleText
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return answer, nil }
	t.Cleanup(func() { getSimpleText = orig })
}

func TestSandboxPath(t *testing.T) {
	f := newTestApp(t, "", users.RoleUser)
	sandbox := f.app.cfg.SandboxDir()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain name", input: "notes.txt"},
		{name: "nested", input: "dir/notes.txt"},
		{name: "dot segments inside", input: "dir/../notes.txt"},
		{name: "escape via dotdot", input: "../escape", wantErr: true},
		{name: "deep escape", input: "a/../../escape", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.app.sandboxPath(tt.input)
			if tt.wantErr {
				if !errors.Is(err, common.ErrorOutsideSandbox) {
					t.Fatalf("want ErrorOutsideSandbox, got %v (%q)", err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("sandboxPath err: %v", err)
			}
			if !strings.HasPrefix(got, sandbox+string(filepath.Separator)) {
				t.Fatalf("resolved path %q not under sandbox %q", got, sandbox)
			}
		})
	}
}

func TestCreateDirectoryAndList(t *testing.T) {
	f := newTestApp(t, "", users.RoleUser)
	ctx := context.Background()
	if err := os.MkdirAll(f.app.cfg.SandboxDir(), 0o700); err != nil {
		t.Fatal(err)
	}

	stubSimpleText(t, "projects")
	if err := f.app.createDirectory(ctx); err != nil {
		t.Fatalf("createDirectory err: %v", err)
	}

	if err := f.app.listFiles(ctx); err != nil {
		t.Fatalf("listFiles err: %v", err)
	}
	if !strings.Contains(f.out.String(), "projects/") {
		t.Fatalf("listing missing created directory:\n%s", f.out.String())
	}
}

func TestViewFile(t *testing.T) {
	f := newTestApp(t, "", users.RoleUser)
	sandbox := f.app.cfg.SandboxDir()
	if err := os.MkdirAll(sandbox, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sandbox, "hello.txt"), []byte("hi there\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	stubSimpleText(t, "hello.txt")
	if err := f.app.viewFile(context.Background()); err != nil {
		t.Fatalf("viewFile err: %v", err)
	}
	if !strings.Contains(f.out.String(), "hi there") {
		t.Fatalf("file content not shown:\n%s", f.out.String())
	}
}

func TestDeleteFile_RefusesSandboxRoot(t *testing.T) {
	f := newTestApp(t, "", users.RoleUser)
	if err := os.MkdirAll(f.app.cfg.SandboxDir(), 0o700); err != nil {
		t.Fatal(err)
	}

	stubSimpleText(t, ".")
	err := f.app.deleteFile(context.Background())
	if !errors.Is(err, common.ErrorOutsideSandbox) {
		t.Fatalf("want ErrorOutsideSandbox, got %v", err)
	}
}
