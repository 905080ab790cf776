// Package session holds the authenticated runtime context of one process
// run, and the resume token that lets a relaunch within the session TTL
// skip the passphrase prompt.
package session

import (
	"time"

	"github.com/avolkov/termlock/internal/common"
	"github.com/avolkov/termlock/internal/store/users"
)

// Session exists only after a successful credential check (or a valid
// resume token). It is never persisted beyond the signed resume token.
type Session struct {
	ID        string
	Username  string
	Role      users.Role
	StartedAt time.Time
}

// New creates a session for an authenticated user.
func New(username string, role users.Role) *Session {
	return &Session{
		ID:        common.MakeRandHexString(16),
		Username:  username,
		Role:      role,
		StartedAt: time.Now(),
	}
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == users.RoleAdmin
}
