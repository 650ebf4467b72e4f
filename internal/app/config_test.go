package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "fi", cfg.Locale)
	assert.Nil(t, cfg.StationNameOverrides())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "railboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = 8080
env = "production"
locale = "sv"

[station_names]
1 = "Helsingfors"
160 = "Tammerfors"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "sv", cfg.Locale)

	overrides := cfg.StationNameOverrides()
	require.Len(t, overrides, 2)
	assert.Equal(t, "Helsingfors", overrides[1])
	assert.Equal(t, "Tammerfors", overrides[160])
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestStationNameOverridesBadKey(t *testing.T) {
	cfg := Config{StationNames: map[string]string{"helsinki": "Helsinki"}}
	assert.Panics(t, func() {
		cfg.StationNameOverrides()
	})
}
