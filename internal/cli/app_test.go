package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/avolkov/termlock/internal/config"
	"github.com/avolkov/termlock/internal/logging"
	"github.com/avolkov/termlock/internal/services"
	"github.com/avolkov/termlock/internal/session"
	"github.com/avolkov/termlock/internal/store/audit"
	"github.com/avolkov/termlock/internal/store/users"
)

// fakeAuth implements services.AuthService for menu/login tests.
type fakeAuth struct {
	loginUser    string
	loginPass    []byte
	loginSession *session.Session
	loginErr     error
	attempts     int

	logoutCalled bool
	resumeErr    error
}

func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (*session.Session, error) {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	return f.loginSession, f.loginErr
}
func (f *fakeAuth) Resume(context.Context) (*session.Session, error) { return nil, f.resumeErr }
func (f *fakeAuth) Logout(_ context.Context, _ *session.Session) error {
	f.logoutCalled = true
	return nil
}
func (f *fakeAuth) Attempts(string) int { return f.attempts }

// fakeUsers implements services.UserService.
type fakeUsers struct {
	created []string
	deleted []string
	listErr error
	all     []users.User
}

func (f *fakeUsers) Create(_ context.Context, _ *session.Session, username string, _, _ []byte, _ users.Role) error {
	f.created = append(f.created, username)
	return nil
}
func (f *fakeUsers) Delete(_ context.Context, _ *session.Session, username string) error {
	f.deleted = append(f.deleted, username)
	return nil
}
func (f *fakeUsers) List(context.Context, *session.Session) ([]users.User, error) {
	return f.all, f.listErr
}
func (f *fakeUsers) ChangePassword(context.Context, *session.Session, []byte, []byte, []byte) error {
	return nil
}
func (f *fakeUsers) EnsureDefaultAdmin(context.Context) (bool, error) { return false, nil }

// fakeAudit implements services.AuditService and records action outcomes.
type fakeAudit struct {
	actions []string
	failed  []string
	entries []audit.Entry
}

func (f *fakeAudit) RecordAction(_ context.Context, _ *session.Session, action string, actionErr error) error {
	f.actions = append(f.actions, action)
	if actionErr != nil {
		f.failed = append(f.failed, action)
	}
	return nil
}
func (f *fakeAudit) View(context.Context, int) ([]audit.Entry, error) { return f.entries, nil }

// fakeRunner records executed commands instead of running them.
type fakeRunner struct {
	commands []string
	err      error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	cmd := name
	if len(args) > 0 {
		cmd += " " + strings.Join(args, " ")
	}
	f.commands = append(f.commands, cmd)
	return f.err
}

type appFixture struct {
	app    *App
	auth   *fakeAuth
	users  *fakeUsers
	audit  *fakeAudit
	runner *fakeRunner
	out    *bytes.Buffer
}

// newTestApp wires an App with fakes and scripted stdin.
func newTestApp(t *testing.T, input string, role users.Role) *appFixture {
	t.Helper()

	cfg := &config.Config{
		AppDir:         t.TempDir(),
		PkgManager:     "pkg",
		AuditViewLimit: 20,
		SessionTTL:     5 * time.Minute,
	}

	f := &appFixture{
		auth:   &fakeAuth{},
		users:  &fakeUsers{},
		audit:  &fakeAudit{},
		runner: &fakeRunner{},
		out:    &bytes.Buffer{},
	}
	f.app = &App{
		cfg:     cfg,
		log:     logging.NewDefault("error"),
		auth:    f.auth,
		users:   f.users,
		audit:   f.audit,
		runner:  f.runner,
		session: session.New("tester", role),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     f.out,
	}
	return f
}

var _ services.AuthService = (*fakeAuth)(nil)
var _ services.UserService = (*fakeUsers)(nil)
var _ services.AuditService = (*fakeAudit)(nil)
var _ io.Writer = (*bytes.Buffer)(nil)
