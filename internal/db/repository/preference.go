// Package repository implements domain repository interfaces using SQLite.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dwex-demo/internal/db"
	"dwex-demo/internal/domain"
)

var _ domain.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo stores per-client preferences in SQLite. Reads use the read
// pool and writes the single-connection write pool.
type PreferenceRepo struct {
	write *sql.DB
	read  *sql.DB
}

// NewPreferenceRepo creates a PreferenceRepo over pools.
func NewPreferenceRepo(pools *db.Pools) *PreferenceRepo {
	return &PreferenceRepo{write: pools.Write, read: pools.Read}
}

// Get returns the stored value for clientID and key.
func (r *PreferenceRepo) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	var value string
	err := r.read.QueryRowContext(ctx, `
		SELECT value FROM preferences WHERE client_id = ? AND key = ?
	`, clientID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value for clientID and key.
func (r *PreferenceRepo) Set(ctx context.Context, clientID, key, value string) error {
	if clientID == "" || key == "" {
		return domain.ErrValidation("client id and key are required")
	}
	_, err := r.write.ExecContext(ctx, `
		INSERT INTO preferences (client_id, key, value)
		VALUES (?, ?, ?)
		ON CONFLICT (client_id, key) DO UPDATE
		SET value = excluded.value,
		    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
	`, clientID, key, value)
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

// Delete removes every preference of clientID.
func (r *PreferenceRepo) Delete(ctx context.Context, clientID string) error {
	if _, err := r.write.ExecContext(ctx, `DELETE FROM preferences WHERE client_id = ?`, clientID); err != nil {
		return fmt.Errorf("delete preferences: %w", err)
	}
	return nil
}

// Count returns the number of clients with stored preferences.
func (r *PreferenceRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.read.QueryRowContext(ctx, `SELECT COUNT(DISTINCT client_id) FROM preferences`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count preferences: %w", err)
	}
	return n, nil
}

// ClientStore binds a PreferenceRepository to one client so it can back a
// key-value store such as the theme state.
type ClientStore struct {
	repo     domain.PreferenceRepository
	clientID string
}

// ForClient returns a store scoped to clientID.
func ForClient(repo domain.PreferenceRepository, clientID string) *ClientStore {
	return &ClientStore{repo: repo, clientID: clientID}
}

// Get returns the value for key.
func (s *ClientStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.repo.Get(ctx, s.clientID, key)
}

// Set stores value under key.
func (s *ClientStore) Set(ctx context.Context, key, value string) error {
	return s.repo.Set(ctx, s.clientID, key, value)
}
