package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFrom(envMap(nil))
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.LogEvents)
}

func TestLoad_FromEnv(t *testing.T) {
	cfg := loadFrom(envMap(map[string]string{
		EnvCatalog:   "/tmp/charts.yaml",
		EnvDB:        "/tmp/charts.db",
		EnvLogEvents: "true",
	}))

	assert.Equal(t, "/tmp/charts.yaml", cfg.CatalogPath)
	assert.Equal(t, "/tmp/charts.db", cfg.DBPath)
	assert.True(t, cfg.LogEvents)
}

func TestLoad_IgnoresMalformedBool(t *testing.T) {
	cfg := loadFrom(envMap(map[string]string{EnvLogEvents: "sometimes"}))
	assert.False(t, cfg.LogEvents)
}

func TestLoad_ReadsProcessEnv(t *testing.T) {
	t.Setenv(EnvDB, "/tmp/env.db")
	assert.Equal(t, "/tmp/env.db", Load().DBPath)
}

func TestStorePath(t *testing.T) {
	explicit := Config{DBPath: "/tmp/x.db"}
	p, err := explicit.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", p)

	t.Setenv("HOME", t.TempDir())
	p, err = Config{}.StorePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".chartwise", "catalog.db"), filepath.Join(filepath.Base(filepath.Dir(p)), filepath.Base(p)))
}
