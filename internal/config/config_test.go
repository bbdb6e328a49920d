package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty directory so no stray .env or messbook.toml
// is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "./data/messbook.db", cfg.Database.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Events.Brokers)
	assert.Equal(t, "messbook.ledger", cfg.Events.Topic)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("MESSBOOK_DATABASE_PATH", "/tmp/mess.db")
	t.Setenv("MESSBOOK_SERVER_PORT", "9090")
	t.Setenv("MESSBOOK_AUTH_ENABLED", "true")
	t.Setenv("MESSBOOK_AUTH_SECRET", "s3cret")
	t.Setenv("MESSBOOK_AUTH_TOKEN_TTL", "2h")
	t.Setenv("MESSBOOK_EVENTS_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mess.db", cfg.Database.Path)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "s3cret", cfg.Auth.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.Brokers)
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
path = "hall.db"

[log]
level = "debug"
`), 0o600))
	t.Setenv("MESSBOOK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hall.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MESSBOOK_LOG_LEVEL=warn\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("MESSBOOK_LOG_LEVEL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cfg := Config{Server: ServerConfig{Port: 8080}, Auth: AuthConfig{Enabled: true}}
	assert.Error(t, cfg.Validate())

	cfg.Auth.Secret = "x"
	assert.NoError(t, cfg.Validate())

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
}
