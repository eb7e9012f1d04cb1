package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	require.NoError(t, LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")))

	assert.Equal(t, "3000", GetConfig("APP_PORT"))
	assert.Equal(t, "database", GetConfig("DATA_SOURCE"))
	assert.Equal(t, "./logs/app.log", GetConfig("LOG_PATH"))
	assert.Equal(t, 10, GetConfigInt("RATE_LIMIT_PER_SECOND", 1))
	assert.Equal(t, 300, GetConfigInt("CACHE_TTL_SECONDS", 1))
	assert.Equal(t, "", GetConfig("NOT_A_KEY"))
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
APP_PORT: "8080"
DATA_SOURCE: "fixture"
DB_HOST: "db.internal"
JWT_TTL_MINUTES: 15
REDIS_DB: 2
`)
	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "fixture", GetConfig("DATA_SOURCE"))
	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, 15, GetConfigInt("JWT_TTL_MINUTES", 120))
	assert.Equal(t, 2, GetConfigInt("REDIS_DB", 0))
	assert.Equal(t, "./data/info.json", GetConfig("FIXTURE_INFO_PATH"))
}

func TestEnvironmentOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
APP_PORT: "8080"
CACHE_TTL_SECONDS: 60
`)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CACHE_TTL_SECONDS", "5")
	t.Setenv("RATE_LIMIT_PER_SECOND", "lots")

	require.NoError(t, LoadConfig(path))
	assert.Equal(t, "9090", GetConfig("APP_PORT"))
	assert.Equal(t, 5, GetConfigInt("CACHE_TTL_SECONDS", 300))
	assert.Equal(t, 10, GetConfigInt("RATE_LIMIT_PER_SECOND", 1))
}

func TestGetConfigIntFallsBackOnNonPositive(t *testing.T) {
	path := writeConfig(t, `JWT_TTL_MINUTES: 0`)
	require.NoError(t, LoadConfig(path))
	assert.Equal(t, 120, GetConfigInt("JWT_TTL_MINUTES", 120))
	assert.Equal(t, 7, GetConfigInt("UNKNOWN", 7))
}

func TestLoadConfigRejectsBrokenYAML(t *testing.T) {
	path := writeConfig(t, "APP_PORT: [unterminated")
	assert.Error(t, LoadConfig(path))
}
