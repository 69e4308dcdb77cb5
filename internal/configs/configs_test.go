package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.AppURL())
	assert.Equal(t, "tasks.db", cfg.DatabaseDSN)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Empty(t, cfg.RedisAddr())
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskflow.yaml")
	content := []byte("app_port: \"9000\"\njwt_secret: from-file\nredis_host: cache\nrate_limit_per_minute: 5\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("JWT_SECRET", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "7")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.AppURL())
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "cache:6379", cfg.RedisAddr())
	assert.Equal(t, 7, cfg.RateLimit)
}

func TestLoad_InvalidInteger(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT_SECONDS")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWithSQLiteParams(t *testing.T) {
	assert.Equal(t, "tasks.db?_foreign_keys=on&_busy_timeout=5000", withSQLiteParams("tasks.db"))
	assert.Equal(t,
		"file:x.db?cache=shared&_foreign_keys=on&_busy_timeout=5000",
		withSQLiteParams("file:x.db?cache=shared"))
	assert.Equal(t,
		"tasks.db?_foreign_keys=off&_busy_timeout=5000",
		withSQLiteParams("tasks.db?_foreign_keys=off"))
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", "json")

	logger.Info("hidden")
	logger.Warn("shown", slog.Int("task_id", 3))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"task_id":3`)
}
