// Package audit persists the user-visible activity log: logins, logouts,
// and executed menu actions.
package audit

import "context"

// Repository is the activity-log contract.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	// Last returns the most recent limit entries in chronological order
	// (oldest of the window first).
	Last(ctx context.Context, limit int) ([]Entry, error)
}
