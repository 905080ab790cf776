package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avolkov/termlock/internal/common"
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

// Create inserts a new user. Returns common.ErrorAlreadyExists when the
// username is taken.
func (r *SQLiteRepository) Create(ctx context.Context, u *User) error {
	query := `INSERT INTO users (username, salt, verifier, role) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, u.Username, u.Salt, u.Verifier, string(u.Role))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByUsername loads one user. Returns common.ErrorNotFound when absent.
func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT username, salt, verifier, role, created_at, last_login FROM users WHERE username = ?`

	var u User
	var role string
	var lastLogin sql.NullTime
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&u.Username, &u.Salt, &u.Verifier, &role, &u.CreatedAt, &lastLogin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	u.Role = Role(role)
	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Time
	}
	return &u, nil
}

// GetAll lists every user, ordered by username. Verifiers and salts are not
// included; the listing is for display only.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]User, error) {
	query := `SELECT username, role, created_at, last_login FROM users ORDER BY username`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []User
	for rows.Next() {
		var u User
		var role string
		var lastLogin sql.NullTime
		if err := rows.Scan(&u.Username, &role, &u.CreatedAt, &lastLogin); err != nil {
			return nil, err
		}
		u.Role = Role(role)
		if lastLogin.Valid {
			u.LastLogin = &lastLogin.Time
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateCredentials replaces a user's salt and verifier.
func (r *SQLiteRepository) UpdateCredentials(ctx context.Context, username string, salt, verifier []byte) error {
	query := `UPDATE users SET salt = ?, verifier = ? WHERE username = ?`
	res, err := r.db.ExecContext(ctx, query, salt, verifier, username)
	if err != nil {
		return fmt.Errorf("failed to update credentials: %w", err)
	}
	return requireOneRow(res)
}

// UpdateLastLogin stamps the user's last successful login time.
func (r *SQLiteRepository) UpdateLastLogin(ctx context.Context, username string) error {
	query := `UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE username = ?`
	res, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return requireOneRow(res)
}

// Delete removes a user record.
func (r *SQLiteRepository) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE username = ?`
	res, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireOneRow(res)
}

// Count returns the total number of user records.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// CountByRole returns how many users hold the given role.
func (r *SQLiteRepository) CountByRole(ctx context.Context, role Role) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = ?`, string(role)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func requireOneRow(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}
