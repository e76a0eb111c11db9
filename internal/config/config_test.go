package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, time.Hour, cfg.JWTExpiry())
	assert.True(t, cfg.IsDev())
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: 4000\njwt_secret: from-file\nenv: production\n"), 0o644))

	t.Setenv("PORT", "5000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.False(t, cfg.IsDev())
}

func TestDSNValue_ComposesFromFields(t *testing.T) {
	db := DatabaseConfig{Host: "db.internal", Port: 3307, User: "blog", Password: "pw", Name: "inkstone"}
	dsn := db.DSNValue()

	assert.Contains(t, dsn, "blog:pw@tcp(db.internal:3307)/inkstone")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestDSNValue_PrefersFullDSN(t *testing.T) {
	db := DatabaseConfig{DSN: "user:pass@tcp(somewhere:3306)/x", Host: "ignored"}
	assert.Equal(t, "user:pass@tcp(somewhere:3306)/x", db.DSNValue())
}
