package services

import (
	"context"

	"github.com/avolkov/termlock/internal/session"
	"github.com/avolkov/termlock/internal/store/audit"
)

// AuditService records menu activity and serves the log view.
type AuditService interface {
	RecordAction(ctx context.Context, s *session.Session, action string, actionErr error) error
	View(ctx context.Context, limit int) ([]audit.Entry, error)
}

type auditService struct {
	audit audit.Repository
}

// NewAuditService constructs an AuditService bound to the audit store.
func NewAuditService(auditRepo audit.Repository) AuditService {
	return &auditService{audit: auditRepo}
}

// RecordAction appends an ACTION entry for the session. A non-nil actionErr
// marks the entry FAILED and is included in the detail.
func (s *auditService) RecordAction(ctx context.Context, sess *session.Session, action string, actionErr error) error {
	e := &audit.Entry{
		Event:    audit.EventAction,
		Username: sess.Username,
		Status:   audit.StatusSuccess,
		Detail:   action,
	}
	if actionErr != nil {
		e.Status = audit.StatusFailed
		e.Detail = action + ": " + actionErr.Error()
	}
	return s.audit.Append(ctx, e)
}

// View returns the most recent limit entries in chronological order.
func (s *auditService) View(ctx context.Context, limit int) ([]audit.Entry, error) {
	return s.audit.Last(ctx, limit)
}
