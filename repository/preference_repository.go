package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"zoo-web/db"
)

// PreferenceRepository handles database operations for visitor preferences
type PreferenceRepository struct {
	db     *db.Database
	logger *zap.Logger
}

// NewPreferenceRepository creates a new PreferenceRepository
func NewPreferenceRepository(database *db.Database, logger *zap.Logger) *PreferenceRepository {
	return &PreferenceRepository{db: database, logger: logger}
}

// Ensure PreferenceRepository implements PreferenceRepositoryInterface
var _ PreferenceRepositoryInterface = (*PreferenceRepository)(nil)

// Get returns the stored value and whether it exists
func (r *PreferenceRepository) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	query := r.db.Rebind(`
		SELECT value
		FROM visitor_preferences
		WHERE visitor_id = $1 AND pref_key = $2
	`)

	var value string
	err := r.db.QueryRowContext(ctx, query, visitorID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Error("failed to read preference",
			zap.String("visitor", visitorID), zap.String("key", key), zap.Error(err))
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces a value
func (r *PreferenceRepository) Set(ctx context.Context, visitorID, key, value string) error {
	query := r.db.Rebind(`
		INSERT INTO visitor_preferences (visitor_id, pref_key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (visitor_id, pref_key)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := r.db.ExecContext(ctx, query, visitorID, key, value, now); err != nil {
		r.logger.Error("failed to write preference",
			zap.String("visitor", visitorID), zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}

	r.logger.Debug("preference saved", zap.String("visitor", visitorID), zap.String("key", key))
	return nil
}

// Delete removes a value; deleting a missing key is not an error
func (r *PreferenceRepository) Delete(ctx context.Context, visitorID, key string) error {
	query := r.db.Rebind(`DELETE FROM visitor_preferences WHERE visitor_id = $1 AND pref_key = $2`)

	if _, err := r.db.ExecContext(ctx, query, visitorID, key); err != nil {
		return fmt.Errorf("failed to delete preference %s: %w", key, err)
	}
	return nil
}
