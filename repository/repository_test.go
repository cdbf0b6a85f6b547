package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zoo-web/db"
	"zoo-web/models"
)

func openTestDB(t *testing.T) *db.Database {
	t.Helper()
	d, err := db.Open(context.Background(), "", filepath.Join(t.TempDir(), "zoo.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestPreferenceRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository(openTestDB(t), zap.NewNop())

	_, ok, err := repo.Get(ctx, "v1", KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "v1", KeyTheme, "dark"))
	require.NoError(t, repo.Set(ctx, "v1", KeyTheme, "light"))

	val, ok, err := repo.Get(ctx, "v1", KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", val)

	// visitors are isolated
	_, ok, err = repo.Get(ctx, "v2", KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Delete(ctx, "v1", KeyTheme))
	require.NoError(t, repo.Delete(ctx, "v1", KeyTheme))
	_, ok, err = repo.Get(ctx, "v1", KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_Session(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferenceRepository(openTestDB(t), zap.NewNop())
	store := NewSessionStore(prefs, zap.NewNop())

	s, err := store.LoadSession(ctx, "v1")
	require.NoError(t, err)
	assert.Nil(t, s)

	want := &models.Session{ID: "user-1", Email: "a@b.co", FirstName: "Zoo", LastName: "Visitor", MembershipType: "standard"}
	require.NoError(t, store.SaveSession(ctx, "v1", want))

	got, err := store.LoadSession(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, ok, err := prefs.Get(ctx, "v1", KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"user-1","email":"a@b.co","firstName":"Zoo","lastName":"Visitor","membershipType":"standard"}`, raw)

	require.NoError(t, store.DeleteSession(ctx, "v1"))
	got, err = store.LoadSession(ctx, "v1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_UnreadableSessionIsDropped(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferenceRepository(openTestDB(t), zap.NewNop())
	store := NewSessionStore(prefs, zap.NewNop())
	require.NoError(t, prefs.Set(ctx, "v1", KeyUser, "{not json"))

	s, err := store.LoadSession(ctx, "v1")
	require.NoError(t, err)
	assert.Nil(t, s)

	_, ok, err := prefs.Get(ctx, "v1", KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_Theme(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferenceRepository(openTestDB(t), zap.NewNop())
	store := NewSessionStore(prefs, zap.NewNop())

	mode, err := store.LoadTheme(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, mode)

	require.NoError(t, store.SaveTheme(ctx, "v1", models.ThemeDark))
	mode, err = store.LoadTheme(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, mode)

	assert.Error(t, store.SaveTheme(ctx, "v1", "sepia"))

	require.NoError(t, prefs.Set(ctx, "v1", KeyTheme, "sepia"))
	mode, err = store.LoadTheme(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, mode)
}
