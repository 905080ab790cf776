// Package sysx runs the external commands behind menu actions. Every action
// goes through one runner so timeouts, output wiring and auditing stay
// uniform.
package sysx

import (
	"context"
	"io"
	"os/exec"
	"strings"
	"time"
)

// newCommand is a test seam for exec.CommandContext.
var newCommand = exec.CommandContext

// Runner executes OS commands with a per-command timeout, streaming output
// to the attached writers.
type Runner struct {
	timeout time.Duration
	stdout  io.Writer
	stderr  io.Writer
}

// NewRunner builds a Runner. A zero timeout means no limit.
func NewRunner(timeout time.Duration, stdout, stderr io.Writer) *Runner {
	return &Runner{timeout: timeout, stdout: stdout, stderr: stderr}
}

// Run executes name with args, waiting for completion. The error of a
// failing command is returned so the caller can surface it; it never
// terminates the process.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := newCommand(ctx, name, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	return cmd.Run()
}

// CommandString renders a command line for audit details.
func CommandString(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
