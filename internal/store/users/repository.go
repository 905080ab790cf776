// Package users persists credential records: username, per-user salt,
// passphrase verifier, role, and login bookkeeping.
package users

import "context"

// Repository is the credential store contract.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	UpdateCredentials(ctx context.Context, username string, salt, verifier []byte) error
	UpdateLastLogin(ctx context.Context, username string) error
	Delete(ctx context.Context, username string) error
	Count(ctx context.Context) (int, error)
	CountByRole(ctx context.Context, role Role) (int, error)
}
