package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration. Library defaults apply for anything
// left unset; the file is optional.
type Config struct {
	Proxy             string `yaml:"proxy"`
	RequestTimeoutSec int    `yaml:"request_timeout"`
	LogLevel          string `yaml:"log_level"`
}

// Load reads the YAML config at path, then applies environment overrides.
// An empty path yields defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if proxy := os.Getenv("STREAMRESOLVE_PROXY"); proxy != "" {
		cfg.Proxy = proxy
	}
	if level := os.Getenv("STREAMRESOLVE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	return cfg, nil
}

// RequestTimeout returns the per-attempt timeout, zero when unset so the
// library default applies.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}
