// Package config loads modelcheck settings from defaults, an optional YAML
// file and MODELCHECK_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all modelcheck configuration.
type Config struct {
	// DBPath is the history database. Empty selects store.DefaultDBPath.
	DBPath string `yaml:"db"`

	Log LogConfig `yaml:"log"`

	// Workers bounds how many documents are validated at once.
	// 0 means one per CPU.
	Workers int `yaml:"workers"`

	// Record stores every validation result in the history database.
	Record bool `yaml:"record"`

	Output OutputConfig `yaml:"output"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text" or "json"
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
	Color  bool   `yaml:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Record: true,
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path, cfg); err != nil {
			return cfg, err
		}
	}
	cfg = ApplyEnv(cfg)
	return cfg, cfg.Validate()
}

// LoadFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their value from cfg.
func LoadFile(path string, cfg Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with MODELCHECK_* environment variables.
// Malformed numeric or boolean values are ignored.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("MODELCHECK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MODELCHECK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("MODELCHECK_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("MODELCHECK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("MODELCHECK_RECORD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Record = b
		}
	}
	if v := os.Getenv("MODELCHECK_OUTPUT"); v != "" {
		cfg.Output.Format = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Output.Color = false
	}
	return cfg
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	var errs []error
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be \"text\" or \"json\", got %q", c.Log.Format))
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("output format must be \"text\" or \"json\", got %q", c.Output.Format))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}
	return errors.Join(errs...)
}
