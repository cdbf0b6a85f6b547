package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"zoo-web/models"
)

// SessionStore keeps the signed-in user and theme mode under their fixed keys
type SessionStore struct {
	prefs  PreferenceRepositoryInterface
	logger *zap.Logger
}

// NewSessionStore creates a SessionStore over a preference repository
func NewSessionStore(prefs PreferenceRepositoryInterface, logger *zap.Logger) *SessionStore {
	return &SessionStore{prefs: prefs, logger: logger}
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// LoadSession returns the persisted user, or nil when signed out.
// An unreadable record is dropped and treated as signed out.
func (s *SessionStore) LoadSession(ctx context.Context, visitorID string) (*models.Session, error) {
	raw, ok, err := s.prefs.Get(ctx, visitorID, KeyUser)
	if err != nil || !ok {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.Warn("dropping unreadable session", zap.String("visitor", visitorID), zap.Error(err))
		return nil, s.prefs.Delete(ctx, visitorID, KeyUser)
	}
	return &session, nil
}

// SaveSession persists the user as JSON
func (s *SessionStore) SaveSession(ctx context.Context, visitorID string, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.prefs.Set(ctx, visitorID, KeyUser, string(data))
}

// DeleteSession removes the persisted user
func (s *SessionStore) DeleteSession(ctx context.Context, visitorID string) error {
	return s.prefs.Delete(ctx, visitorID, KeyUser)
}

// LoadTheme returns the saved theme mode, defaulting to light
func (s *SessionStore) LoadTheme(ctx context.Context, visitorID string) (string, error) {
	raw, ok, err := s.prefs.Get(ctx, visitorID, KeyTheme)
	if err != nil {
		return models.ThemeLight, err
	}
	if !ok || (raw != models.ThemeLight && raw != models.ThemeDark) {
		return models.ThemeLight, nil
	}
	return raw, nil
}

// SaveTheme persists the theme mode
func (s *SessionStore) SaveTheme(ctx context.Context, visitorID, mode string) error {
	if mode != models.ThemeLight && mode != models.ThemeDark {
		return fmt.Errorf("invalid theme mode %q", mode)
	}
	return s.prefs.Set(ctx, visitorID, KeyTheme, mode)
}
