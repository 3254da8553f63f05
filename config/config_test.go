package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `env:
  env: test
  serviceName: spaetimap
  debug: true
  log:
    pretty: true
    level: debug
http:
  host: 127.0.0.1
  port: 8080
postgres:
  host: localhost
  port: 5432
  user: spaeti
  password: secret
  dbname: spaetimap
auth:
  jwtSecret: test-secret
  tokenTtl: 45m
storage:
  bucket: spaetimap-images
`

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestNew_LoadsYAML(t *testing.T) {
	writeConfig(t, testConfigYAML)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "spaetimap-images", cfg.Storage.Bucket)

	// Unset optional values fall back to defaults.
	assert.Equal(t, "10MB", cfg.HTTP.MaxRequestBodySize)
}

func TestNew_EnvOverlay(t *testing.T) {
	writeConfig(t, testConfigYAML)
	t.Setenv("POSTGRES_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "9000")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Postgres.Password)
	assert.Equal(t, 9000, cfg.HTTP.Port)
}

func TestNew_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := New()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestPostgresConfig_DSN(t *testing.T) {
	discrete := PostgresConfig{
		Host: "localhost", Port: 5432, User: "spaeti",
		Password: "secret", DBName: "spaetimap",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=spaeti password=secret dbname=spaetimap sslmode=disable",
		discrete.DSN())

	url := PostgresConfig{URL: "postgres://u:p@host:5432/db"}
	assert.Equal(t, "postgres://u:p@host:5432/db", url.DSN())
}
