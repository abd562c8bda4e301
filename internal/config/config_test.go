package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
shutdown_timeout = 30

[database]
host = "db.internal"
port = 5433
user = "fleet"
password = "secret"
dbname = "shifts"
sslmode = "require"

[redis]
address = "redis.internal:6379"
db = 2

[auth]
session_ttl = 3600

[logs]
file = "/var/log/shift-service.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "shift-service"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "host=db.internal port=5433 user=fleet password=secret dbname=shifts sslmode=require", cfg.Database.DSN())
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Address)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 3600, cfg.Auth.SessionTTL)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_DefaultsApply(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "fleet"
password = "secret"
dbname = "shifts"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 86400, cfg.Auth.SessionTTL)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
