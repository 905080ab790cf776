package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/avolkov/termlock/internal/common"
	"github.com/avolkov/termlock/internal/cryptox"
	"github.com/avolkov/termlock/internal/dbx"
	"github.com/avolkov/termlock/internal/session"
	"github.com/avolkov/termlock/internal/store"
	"github.com/avolkov/termlock/internal/store/audit"
	"github.com/avolkov/termlock/internal/store/users"
)

// Seed credentials for a fresh install. The first login is expected to
// change them.
const (
	DefaultAdminUser     = "admin"
	DefaultAdminPassword = "admin123"
)

// UserService covers user management and password changes. Management
// operations take the acting session and re-check its role, independent of
// any filtering the menu already did.
type UserService interface {
	Create(ctx context.Context, actor *session.Session, username string, password, confirm []byte, role users.Role) error
	Delete(ctx context.Context, actor *session.Session, username string) error
	List(ctx context.Context, actor *session.Session) ([]users.User, error)
	ChangePassword(ctx context.Context, actor *session.Session, oldPassword, newPassword, confirm []byte) error
	EnsureDefaultAdmin(ctx context.Context) (created bool, err error)
}

type userService struct {
	db      *sql.DB
	users   users.Repository
	audit   audit.Repository
	usersTx func(tx dbx.DBTX) users.Repository
}

// NewUserService constructs a UserService bound to the given repositories.
// Check-then-act mutations run inside transactions started on repos.DB.
func NewUserService(repos *store.Repositories) UserService {
	return &userService{
		db:      repos.DB,
		users:   repos.Users,
		audit:   repos.Audit,
		usersTx: repos.UsersTx,
	}
}

// Create adds a new account. Admin only.
func (s *userService) Create(ctx context.Context, actor *session.Session, username string, password, confirm []byte, role users.Role) error {
	if !actor.IsAdmin() {
		return common.ErrorActionDenied
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return common.ErrorEmptyUsername
	}
	if !role.Valid() {
		return common.ErrorInvalidRole
	}
	if string(password) != string(confirm) {
		return common.ErrorPasswordMatch
	}

	salt := cryptox.NewSalt()
	u := &users.User{
		Username: username,
		Salt:     salt,
		Verifier: cryptox.HashPassword(password, salt),
		Role:     role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return err
	}

	return s.audit.Append(ctx, &audit.Entry{
		Event:    audit.EventUser,
		Username: actor.Username,
		Status:   audit.StatusSuccess,
		Detail:   fmt.Sprintf("created user %q (%s)", username, role),
	})
}

// Delete removes an account. Admin only; the acting user and the last
// remaining admin are protected.
func (s *userService) Delete(ctx context.Context, actor *session.Session, username string) error {
	if !actor.IsAdmin() {
		return common.ErrorActionDenied
	}
	if username == actor.Username {
		return common.ErrorSelfDelete
	}

	// The last-admin check and the delete must see the same state.
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.usersTx(tx)

		target, err := repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if target.Role == users.RoleAdmin {
			n, err := repo.CountByRole(ctx, users.RoleAdmin)
			if err != nil {
				return err
			}
			if n <= 1 {
				return common.ErrorLastAdmin
			}
		}
		return repo.Delete(ctx, username)
	})
	if err != nil {
		return err
	}

	return s.audit.Append(ctx, &audit.Entry{
		Event:    audit.EventUser,
		Username: actor.Username,
		Status:   audit.StatusSuccess,
		Detail:   fmt.Sprintf("deleted user %q", username),
	})
}

// List returns all accounts for display. Admin only.
func (s *userService) List(ctx context.Context, actor *session.Session) ([]users.User, error) {
	if !actor.IsAdmin() {
		return nil, common.ErrorActionDenied
	}
	return s.users.GetAll(ctx)
}

// ChangePassword re-salts and stores a fresh verifier for the acting user
// after verifying the old passphrase. Available to every role.
func (s *userService) ChangePassword(ctx context.Context, actor *session.Session, oldPassword, newPassword, confirm []byte) error {
	if string(newPassword) != string(confirm) {
		return common.ErrorPasswordMatch
	}

	// Verify and update against the same row state.
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.usersTx(tx)

		user, err := repo.GetByUsername(ctx, actor.Username)
		if err != nil {
			return err
		}
		if !cryptox.VerifyPassword(oldPassword, user.Salt, user.Verifier) {
			return common.ErrorUnauthorized
		}

		salt := cryptox.NewSalt()
		return repo.UpdateCredentials(ctx, actor.Username, salt, cryptox.HashPassword(newPassword, salt))
	})
	if err != nil {
		return err
	}

	return s.audit.Append(ctx, &audit.Entry{
		Event:    audit.EventUser,
		Username: actor.Username,
		Status:   audit.StatusSuccess,
		Detail:   "changed own password",
	})
}

// EnsureDefaultAdmin seeds the admin account when the users table is empty.
// A populated database is never touched, even when the well-known username
// is absent, so a deliberately deleted default account stays deleted. It
// reports whether the account was created by this call.
func (s *userService) EnsureDefaultAdmin(ctx context.Context) (created bool, err error) {
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.usersTx(tx)

		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		salt := cryptox.NewSalt()
		u := &users.User{
			Username: DefaultAdminUser,
			Salt:     salt,
			Verifier: cryptox.HashPassword([]byte(DefaultAdminPassword), salt),
			Role:     users.RoleAdmin,
		}
		if err := repo.Create(ctx, u); err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}
