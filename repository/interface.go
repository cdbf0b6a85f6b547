package repository

import (
	"context"

	"zoo-web/models"
)

// Persisted preference keys
const (
	KeyUser  = "zoo_user"
	KeyTheme = "themeMode"
)

// PreferenceRepositoryInterface defines the contract for the per-visitor key-value store
type PreferenceRepositoryInterface interface {
	Get(ctx context.Context, visitorID, key string) (string, bool, error)
	Set(ctx context.Context, visitorID, key, value string) error
	Delete(ctx context.Context, visitorID, key string) error
}

// SessionStoreInterface defines the typed session and theme persistence used by visitor contexts
type SessionStoreInterface interface {
	LoadSession(ctx context.Context, visitorID string) (*models.Session, error)
	SaveSession(ctx context.Context, visitorID string, s *models.Session) error
	DeleteSession(ctx context.Context, visitorID string) error
	LoadTheme(ctx context.Context, visitorID string) (string, error)
	SaveTheme(ctx context.Context, visitorID, mode string) error
}
