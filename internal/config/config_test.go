package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
user = "hotel"
password = "secret"
dbname = "hotel"

[logs]
level = "debug"

[auth]
secret_key = "from-file"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 30, cfg.Auth.AccessTokenTTLMinutes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PG_HOST", "pg.internal")
	t.Setenv("PG_PORT", "6432")
	t.Setenv("SECRET_KEY", "from-env")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "from-env", cfg.Auth.SecretKey)
	assert.Equal(t, 5, cfg.Auth.AccessTokenTTLMinutes)
}

func TestLoad_BadEnvInt(t *testing.T) {
	t.Setenv("PG_PORT", "five")

	_, err := Load(writeConfig(t, sampleConfig))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{
			Database: DatabaseConfig{User: "u", DBName: "d"},
			Auth:     AuthConfig{SecretKey: "k"},
		}
		c.applyDefaults()
		return c
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no secret", func(c *Config) { c.Auth.SecretKey = "" }},
		{"bad port", func(c *Config) { c.Server.HTTPPort = 70000 }},
		{"bad level", func(c *Config) { c.Logs.Level = "verbose" }},
		{"no user", func(c *Config) { c.Database.User = "" }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "hotel", Password: "p w'd", DBName: "hotel", SSLMode: "disable"}
	assert.Equal(t, `host=db port=5432 user=hotel password='p w\'d' dbname=hotel sslmode=disable`, d.DSN())
}
