package config

import (
	"RecipeSite/internal/utils"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	require.NoError(t, utils.LoadConfig(path))
}

func fixtureConfig(t *testing.T, extra string) string {
	logPath := filepath.Join(t.TempDir(), "logs", "app.log")
	return `
DATA_SOURCE: "fixture"
FIXTURE_INFO_PATH: "../../data/info.json"
FIXTURE_DETAILS_PATH: "../../data/recipes-details.json"
LOG_PATH: "` + logPath + `"
` + extra
}

func TestFixtureRepositories(t *testing.T) {
	loadConfig(t, fixtureConfig(t, ""))

	repos, err := NewRepositories(context.Background())
	require.NoError(t, err)
	require.NotNil(t, repos.Close)
	defer repos.Close()

	assert.Equal(t, DataSourceFixture, repos.Source)
	recipes, err := repos.Recipe.GetRecipesByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEmpty(t, recipes)
}

func TestUnknownDataSource(t *testing.T) {
	loadConfig(t, `DATA_SOURCE: "sqlite"`)

	_, err := NewRepositories(context.Background())
	assert.ErrorContains(t, err, "unknown DATA_SOURCE")
}

func TestNewAppRequiresJWTSecret(t *testing.T) {
	cfg := fixtureConfig(t, "")
	loadConfig(t, cfg)

	repos, err := NewRepositories(context.Background())
	require.NoError(t, err)
	defer repos.Close()

	app, err := NewApp(context.Background(), repos)
	assert.ErrorContains(t, err, "JWT_SECRET")
	assert.Nil(t, app)
	assert.NoFileExists(t, utils.GetConfig("LOG_PATH"))
}

func TestNewAppWithFixture(t *testing.T) {
	loadConfig(t, fixtureConfig(t, `JWT_SECRET: "test-secret"`))

	repos, err := NewRepositories(context.Background())
	require.NoError(t, err)
	defer repos.Close()

	app, err := NewApp(context.Background(), repos)
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.FileExists(t, utils.GetConfig("LOG_PATH"))
}
