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

func TestLoadFromFileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
env: production
port: "8080"
secret_key: from-file
database:
  driver: sqlite
  url: /tmp/fyyur.db
csrf:
  enabled: true
  ttl: 15m
flash:
  ttl: 1h
`)
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "from-file", cfg.SecretKey)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/fyyur.db", cfg.Database.DSN())
	assert.Equal(t, 15*time.Minute, cfg.CSRF.TTL)
	assert.Equal(t, time.Hour, cfg.Flash.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.Origins)
	assert.False(t, cfg.IsDevelopment())
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadMissingDefaultFileIsNotAnError(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FYYUR_CONFIG", "")
	t.Setenv("DB_USER", "")
	t.Setenv("SECRET_KEY", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost port=5432 user= password= dbname=fyyur sslmode=disable", cfg.Database.DSN())
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.SecretKey = ""
	assert.ErrorContains(t, cfg.Validate(), "secret_key")

	cfg.CSRF.Enabled = false
	assert.NoError(t, cfg.Validate())

	cfg.Database.Driver = "oracle"
	assert.ErrorContains(t, cfg.Validate(), "unsupported")

	cfg.Database.Driver = "sqlite"
	assert.ErrorContains(t, cfg.Validate(), "sqlite")
}

func TestEnvBool(t *testing.T) {
	t.Setenv("X_FLAG", "off")
	assert.False(t, envBool("X_FLAG", true))
	t.Setenv("X_FLAG", "garbage")
	assert.True(t, envBool("X_FLAG", true))
}

func TestSecureCookie(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.SecureCookie())

	cfg.Env = EnvProduction
	assert.True(t, cfg.SecureCookie())

	path := writeConfig(t, `
env: production
port: "5000"
database:
  driver: sqlite
  url: /tmp/fyyur.db
csrf:
  enabled: false
cookie:
  secure: false
`)
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.False(t, loaded.SecureCookie())

	t.Setenv("COOKIE_SECURE", "true")
	loaded, err = Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.SecureCookie())
}
