// Package services contains application services for the termlock CLI.
// This file defines the authentication service: credential verification,
// session creation and resume, failed-attempt bookkeeping, and logout.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkov/termlock/internal/common"
	"github.com/avolkov/termlock/internal/cryptox"
	"github.com/avolkov/termlock/internal/session"
	"github.com/avolkov/termlock/internal/store/audit"
	"github.com/avolkov/termlock/internal/store/users"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: verify (username, password) and create a session; failures are
//     counted and recorded but never lock the account.
//   - Resume: recreate a session from a valid resume token.
//   - Logout: record the logout and drop the resume token.
//   - Attempts: failed-attempt count for a username in this process run.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*session.Session, error)
	Resume(ctx context.Context) (*session.Session, error)
	Logout(ctx context.Context, s *session.Session) error
	Attempts(username string) int
}

// authService is the concrete AuthService backed by the credential store,
// the audit store, and a session token manager.
type authService struct {
	users    users.Repository
	audit    audit.Repository
	tokens   *session.TokenManager
	attempts map[string]int
}

// NewAuthService constructs an AuthService bound to the given repositories
// and token manager.
func NewAuthService(usersRepo users.Repository, auditRepo audit.Repository, tokens *session.TokenManager) AuthService {
	return &authService{
		users:    usersRepo,
		audit:    auditRepo,
		tokens:   tokens,
		attempts: make(map[string]int),
	}
}

// decoySalt keeps verification work roughly equal for unknown usernames, so
// the prompt does not reveal whether an account exists.
var decoySalt = cryptox.NewSalt()

// Login verifies the credentials and returns a fresh session on success.
// A failed check returns common.ErrorUnauthorized, increments the attempt
// counter, and appends a FAILED audit entry. There is no lockout: every
// attempt is verified and reported individually.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*session.Session, error) {
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.VerifyPassword(password, decoySalt, nil)
			return nil, a.loginFailed(ctx, username)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if !cryptox.VerifyPassword(password, user.Salt, user.Verifier) {
		return nil, a.loginFailed(ctx, username)
	}

	delete(a.attempts, username)

	if err := a.users.UpdateLastLogin(ctx, username); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}

	s := session.New(user.Username, user.Role)
	if err := a.tokens.Issue(user.Username); err != nil {
		// Resume is a convenience; a failure to persist the token must not
		// block the login.
		err = a.audit.Append(ctx, &audit.Entry{
			Event: audit.EventLogin, Username: username,
			Status: audit.StatusSuccess, Detail: "resume token not saved",
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := a.audit.Append(ctx, &audit.Entry{
		Event: audit.EventLogin, Username: username, Status: audit.StatusSuccess,
	}); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *authService) loginFailed(ctx context.Context, username string) error {
	a.attempts[username]++
	if err := a.audit.Append(ctx, &audit.Entry{
		Event:    audit.EventLogin,
		Username: username,
		Status:   audit.StatusFailed,
		Detail:   fmt.Sprintf("attempt %d", a.attempts[username]),
	}); err != nil {
		return err
	}
	return common.ErrorUnauthorized
}

// Resume recreates a session from the persisted token. The role is loaded
// from the credential store at resume time, so a role change or a deleted
// account invalidates the token.
func (a *authService) Resume(ctx context.Context) (*session.Session, error) {
	username, err := a.tokens.Resume()
	if err != nil {
		return nil, err
	}

	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		a.tokens.Clear()
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}

	return session.New(user.Username, user.Role), nil
}

// Logout records the event and removes the resume token.
func (a *authService) Logout(ctx context.Context, s *session.Session) error {
	a.tokens.Clear()
	return a.audit.Append(ctx, &audit.Entry{
		Event: audit.EventLogout, Username: s.Username, Status: audit.StatusSuccess,
	})
}

// Attempts returns the failed-attempt count recorded for username during
// this process run.
func (a *authService) Attempts(username string) int {
	return a.attempts[username]
}
