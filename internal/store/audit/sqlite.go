package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avolkov/termlock/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Append inserts an entry. A missing ID is filled with a fresh UUID; a
// missing timestamp is filled by the database.
func (r *SQLiteRepository) Append(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	query := `INSERT INTO audit_log (id, event, username, status, detail) VALUES (?, ?, ?, ?, ?)`
	if !e.At.IsZero() {
		query = `INSERT INTO audit_log (id, at, event, username, status, detail) VALUES (?, ?, ?, ?, ?, ?)`
		_, err := r.db.ExecContext(ctx, query, e.ID, e.At, string(e.Event), e.Username, e.Status, e.Detail)
		if err != nil {
			return fmt.Errorf("failed to append audit entry: %w", err)
		}
		return nil
	}
	_, err := r.db.ExecContext(ctx, query, e.ID, string(e.Event), e.Username, e.Status, e.Detail)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// Last returns the newest limit entries, oldest of the window first.
func (r *SQLiteRepository) Last(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, at, event, username, status, detail FROM
		(SELECT * FROM audit_log ORDER BY at DESC, id DESC LIMIT ?)
		ORDER BY at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select audit entries: %w", err)
	}
	defer rows.Close()

	var result []Entry
	for rows.Next() {
		var e Entry
		var event string
		if err := rows.Scan(&e.ID, &e.At, &event, &e.Username, &e.Status, &e.Detail); err != nil {
			return nil, err
		}
		e.Event = Event(event)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
