// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"

	"flightfare/internal/errors"
	"flightfare/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Lookup contains lookup-table file locations
	Lookup LookupConfig `json:"lookup"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// LookupConfig locates the reference-table files supplied by the
// surrounding system.
type LookupConfig struct {
	// AirlinesPath is the airline code -> name table
	AirlinesPath string `json:"airlines_path,omitempty"`

	// AirportsPath is the airport code -> name table
	AirportsPath string `json:"airports_path,omitempty"`

	// CountriesPath is the country code -> name table
	CountriesPath string `json:"countries_path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Pretty indents the serialized record
	Pretty bool `json:"pretty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1",
		Output:  OutputConfig{Pretty: false},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("reading config file", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Config("parsing config file", err)
	}
	return cfg, nil
}

var current = Default()

// Get returns the active configuration
func Get() *Config {
	return current
}

// Set replaces the active configuration
func Set(cfg *Config) {
	if cfg != nil {
		current = cfg
	}
}
