package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_OverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
database:
  type: postgres
  postgres:
    host: pg.internal
rate_limit:
  requests_per_minute: 2
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "pg.internal", cfg.Database.Postgres.Host)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, 2, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerHour)
	assert.True(t, cfg.Database.Seed)
}

func TestLoadConfig_RejectsBadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}

func TestLoadConfig_RejectsUnknownDatabase(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "database:\n  type: sqlite\n"))
	assert.ErrorContains(t, err, "unknown database type")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Contact.Workers = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Scheduler.HistoryLimit = -1
	assert.Error(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("DB_HOST", "mysql.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("MEILISEARCH_KEY", "secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Type)
	assert.Equal(t, "mysql.internal", cfg.Database.MySQL.Host)
	assert.Equal(t, 3307, cfg.Database.MySQL.Port)
	assert.Equal(t, "db", cfg.Database.Postgres.Host, "postgres settings untouched when mysql is selected")
	assert.Equal(t, "secret", cfg.Search.Meilisearch.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
}

func TestApplyEnv_IgnoresMalformedPort(t *testing.T) {
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_PORT", "not-a-port")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, 2*time.Second, cfg.Contact.RetryDelay())
}
