// Package config loads the railstat run configuration from a YAML file.
//
// Example file:
//
//	data:
//	  csv: stations_filtered.csv
//	report:
//	  top-n: 10
//	  min-trips: 5
//	server:
//	  addr: ":8080"
//
// Every field is optional; absent fields keep the DefaultConfig values.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration loading.
var (
	// ErrBadTopN indicates report.top-n was set to a non-positive value.
	ErrBadTopN = errors.New("config: report.top-n must be positive")

	// ErrBadMinTrips indicates report.min-trips was set to a non-positive value.
	ErrBadMinTrips = errors.New("config: report.min-trips must be positive")
)

// Config is the full run configuration.
type Config struct {
	Data struct {
		// CSV is the path of the trip-record CSV file to analyze.
		CSV string `yaml:"csv"`
	} `yaml:"data"`

	Report struct {
		// TopN is the length of every ranking. Default 10.
		TopN int `yaml:"top-n"`

		// MinTrips is the minimum-sample-size floor for route rankings.
		// Default 5.
		MinTrips int `yaml:"min-trips"`
	} `yaml:"report"`

	Server struct {
		// Addr is the HTTP listen address. Default ":8080".
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	var c Config
	c.Report.TopN = 10
	c.Report.MinTrips = 5
	c.Server.Addr = ":8080"

	return c
}

// ReadConfig loads and validates the YAML file at path, layered over
// DefaultConfig.
func ReadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if c.Report.TopN <= 0 {
		return Config{}, ErrBadTopN
	}
	if c.Report.MinTrips <= 0 {
		return Config{}, ErrBadMinTrips
	}

	return c, nil
}
