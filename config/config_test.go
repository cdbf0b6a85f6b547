package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	for _, k := range []string{"ENV", "PORT", "BASE_URL", "DATABASE_URL", "SQLITE_PATH", "LOG_LEVEL", "MOCK_DELAY", "PRICING_CONFIG"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "zoo.db", cfg.SQLitePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 500*time.Millisecond, cfg.MockDelay)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.False(t, cfg.IsProduction())
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("MOCK_DELAY", "2s")
	t.Setenv("BASE_URL", "https://zoo.example.com/")
	t.Setenv("ENV", "production")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.MockDelay)
	assert.Equal(t, "https://zoo.example.com", cfg.BaseURL)
	assert.True(t, cfg.IsProduction())
}

func TestParse_BadDuration(t *testing.T) {
	t.Setenv("MOCK_DELAY", "soon")

	_, err := Parse()
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("SQLITE_PATH", "from-env.db")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SQLITE_PATH=from-dotenv.db\n"), 0o644))

	cfg, note, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv.db", cfg.SQLitePath)
	assert.Contains(t, note, "loaded")
}

func TestLoad_MissingDotEnv(t *testing.T) {
	t.Setenv("ENV", "development")

	_, note, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Contains(t, note, "not found")
}
