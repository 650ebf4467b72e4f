package app

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"

	"railboard.fi/internal/digitraffic"
)

// Config holds all the settings for the application. Values come from
// an optional TOML file with flag overrides on top.
type Config struct {
	Port       int    `toml:"port"`
	Env        string `toml:"env"`
	APIBaseURL string `toml:"api_base_url"`
	DBPath     string `toml:"db_path"`
	Locale     string `toml:"locale"`

	// StationNames carries localized display name overrides keyed by
	// station code. TOML table keys are strings; see
	// StationNameOverrides for the typed view.
	StationNames map[string]string `toml:"station_names"`
}

// DefaultConfig is the development configuration.
func DefaultConfig() Config {
	return Config{
		Port:       4000,
		Env:        "development",
		APIBaseURL: digitraffic.DefaultBaseURL,
		DBPath:     "railboard.db",
		Locale:     "fi",
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path just
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// StationNameOverrides converts the TOML override table into the
// code-keyed map the repository expects. Unparseable keys fail loudly:
// they are configuration mistakes, not data.
func (c Config) StationNameOverrides() map[int]string {
	if len(c.StationNames) == 0 {
		return nil
	}
	overrides := make(map[int]string, len(c.StationNames))
	for key, name := range c.StationNames {
		code, err := strconv.Atoi(key)
		if err != nil {
			panic(fmt.Sprintf("station_names key %q is not a station code", key))
		}
		overrides[code] = name
	}
	return overrides
}
