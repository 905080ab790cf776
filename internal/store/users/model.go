package users

import "time"

// Role gates which menu actions a session may invoke.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is one credential-store record. Salt and Verifier together encode
// the passphrase; see the cryptox package for the scheme.
type User struct {
	Username  string
	Salt      []byte
	Verifier  []byte
	Role      Role
	CreatedAt time.Time
	LastLogin *time.Time
}
