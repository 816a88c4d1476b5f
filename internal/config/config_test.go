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
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
port: 8080
dsn: "user:pw@tcp(db:3306)/portfolio?parseTime=True"
env: production
jwt_secret: file-secret
allowed_origins:
  - https://example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, []string{"https://example.com"}, cfg.AllowedOrigins)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "jwt_secret: file-secret\n")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_MissingFileWithEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-only")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.True(t, cfg.IsDev())
}

func TestLoad_MissingJWTSecretFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	path := writeConfig(t, "port: 8080\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestLoad_InvalidPortFails(t *testing.T) {
	path := writeConfig(t, "port: 99999\njwt_secret: s\n")

	_, err := Load(path)
	require.Error(t, err)
}
