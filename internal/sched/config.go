package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Config mirrors jobsim.yml
type Config struct {
	Policy    string `yaml:"policy"`     // fifo, priority or round_robin
	Quantum   int    `yaml:"quantum"`    // 4 (by default)
	PaceMS    int    `yaml:"pace_ms"`    // replay delay per event, 0 disables pacing
	LogLevel  string `yaml:"log_level"`  // info (by default)
	LogFormat string `yaml:"log_format"` // text or json
}

// DefaultConfig is used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Policy:    FIFO.String(),
		Quantum:   4,
		PaceMS:    0,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads YAML and overrides defaults; an empty path or a missing file
// yields the defaults. A malformed file is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "parse config %s", path)
	}

	// sanity clamps
	if cfg.Quantum <= 0 {
		cfg.Quantum = 4
	}
	if cfg.PaceMS < 0 {
		cfg.PaceMS = 0
	}
	if cfg.Policy == "" {
		cfg.Policy = FIFO.String()
	}

	return cfg, nil
}

// SchedulingPolicy parses the configured policy name.
func (c Config) SchedulingPolicy() (Policy, error) {
	return ParsePolicy(c.Policy)
}
