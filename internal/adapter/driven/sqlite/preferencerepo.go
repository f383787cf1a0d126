package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pecoelho01/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PreferenceStore = (*PreferenceRepo)(nil)

// PreferenceRepo is the SQLite implementation of the PreferenceStore port.
type PreferenceRepo struct {
	db *DB
}

// NewPreferenceRepo creates a new PreferenceRepo backed by the given DB.
func NewPreferenceRepo(db *DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// Get retrieves the value stored under key for scope. Returns ("", nil) if the
// key has never been written.
func (r *PreferenceRepo) Get(ctx context.Context, scope, key string) (string, error) {
	const query = `
		SELECT value
		FROM preferences
		WHERE scope = ? AND key = ?
	`

	var value string
	err := r.db.Reader.QueryRowContext(ctx, query, scope, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get preference %s for %s: %w", key, scope, err)
	}

	return value, nil
}

// Set inserts or replaces the value stored under key for scope.
func (r *PreferenceRepo) Set(ctx context.Context, scope, key, value string) error {
	const query = `
		INSERT INTO preferences (scope, key, value, updated_at)
		VALUES (?, ?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(scope, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.Writer.ExecContext(ctx, query, scope, key, value); err != nil {
		return fmt.Errorf("set preference %s for %s: %w", key, scope, err)
	}

	return nil
}
