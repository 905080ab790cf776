// Package cli implements the interactive login gate and menu shell.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/avolkov/termlock/internal/config"
	"github.com/avolkov/termlock/internal/logging"
	"github.com/avolkov/termlock/internal/services"
	"github.com/avolkov/termlock/internal/session"
	"github.com/avolkov/termlock/internal/store"
	"github.com/avolkov/termlock/internal/sysx"
)

// commandRunner is the slice of sysx.Runner the menu actions need.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type App struct {
	cfg    *config.Config
	log    logging.Logger
	repos  *store.Repositories
	auth   services.AuthService
	users  services.UserService
	audit  services.AuditService
	runner commandRunner

	session *session.Session
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	if err := os.MkdirAll(cfg.AppDir, 0o700); err != nil {
		return nil, fmt.Errorf("app dir: %w", err)
	}
	if err := os.MkdirAll(cfg.SandboxDir(), 0o700); err != nil {
		return nil, fmt.Errorf("sandbox dir: %w", err)
	}

	repos, err := store.InitDatabase(ctx, cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	secret, err := session.LoadOrCreateSecret(cfg.SecretPath())
	if err != nil {
		repos.Close()
		return nil, fmt.Errorf("load secret: %w", err)
	}
	tokens := session.NewTokenManager(secret, cfg.SessionTTL, cfg.SessionTokenPath())

	userSvc := services.NewUserService(repos)
	created, err := userSvc.EnsureDefaultAdmin(ctx)
	if err != nil {
		repos.Close()
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	a := &App{
		cfg:    cfg,
		log:    log,
		repos:  repos,
		auth:   services.NewAuthService(repos.Users, repos.Audit, tokens),
		users:  userSvc,
		audit:  services.NewAuditService(repos.Audit),
		runner: sysx.NewRunner(cfg.CommandTimeout, os.Stdout, os.Stderr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	if created {
		printColor(a.out, colorYellow,
			fmt.Sprintf("Default account %q seeded, change its password after login.",
				services.DefaultAdminUser))
	}
	return a, nil
}

// Run drives one process lifetime: resume or login, then the main menu.
func (a *App) Run(ctx context.Context) error {
	defer a.repos.Close()

	printHeader(a.out, "TERMLOCK LOGIN")

	if s, err := a.auth.Resume(ctx); err == nil {
		a.session = s
		printColor(a.out, colorGreen, fmt.Sprintf("Session resumed, welcome back %s!", s.Username))
	} else {
		a.log.Debug(ctx, "no resumable session", "reason", err.Error())
	}

	for a.session == nil {
		if err := a.login(ctx); err != nil {
			return err
		}
		if a.session != nil {
			break
		}
		answer, err := getSimpleText(a.reader, "Try again? (y/n)", a.out)
		if err != nil {
			return err
		}
		if answer != "y" && answer != "Y" {
			printColor(a.out, colorYellow, "Bye!")
			return nil
		}
	}

	return a.mainMenu(ctx)
}
