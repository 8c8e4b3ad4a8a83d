// Package config loads the bot's deployment configuration from a YAML
// file, with programmatic map overrides for embedding hosts.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the full deployment configuration.
type Config struct {
	// Listen is the HTTP adapter bind address for `rankery serve`.
	Listen string `yaml:"listen" mapstructure:"listen"`

	// Language selects the message catalog ("en" or "es").
	Language string `yaml:"language" mapstructure:"language"`

	// ReplyLimit is the truncation threshold in runes for long replies.
	ReplyLimit int `yaml:"reply_limit" mapstructure:"reply_limit"`

	// RedisURL, when set, moves flow contexts to Redis and enables
	// distributed per-user locking. Empty means in-memory.
	RedisURL string `yaml:"redis_url" mapstructure:"redis_url"`

	// Messages is an optional YAML file of message-template overrides.
	Messages string `yaml:"messages" mapstructure:"messages"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen:     ":8080",
		Language:   "en",
		ReplyLimit: 4000,
		LogLevel:   "info",
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// ApplyMap overlays a generic key/value map onto the config. Hosts that
// embed the bot can pass settings through without depending on the YAML
// shape.
func (c *Config) ApplyMap(overrides map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("failed to apply config overrides: %w", err)
	}
	return nil
}
