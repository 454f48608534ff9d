package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrInvalidConfig wraps all validation failures so callers can errors.Is.
var ErrInvalidConfig = errors.New("invalid config")

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables.
//
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RACEETL_CONFIG is set
//  3. env (prefix RACEETL_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("RACEETL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Env keys map flat: RACEETL_HTTP_ADDR -> http_addr. Underscores are
	// preserved to match the koanf tags on the struct.
	envProvider := env.Provider("RACEETL_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "raceetl_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.RawFormat {
	case "copypaste", "csv":
	default:
		return fmt.Errorf("%w: raw_format must be copypaste or csv, got %q", ErrInvalidConfig, c.RawFormat)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log_format must be json or text, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidConfig)
	}
	if c.KafkaEnabled {
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("%w: kafka_brokers is required when kafka_enabled", ErrInvalidConfig)
		}
		if c.KafkaTopic == "" {
			return fmt.Errorf("%w: kafka_topic is required when kafka_enabled", ErrInvalidConfig)
		}
	}
	if c.OutlierThreshold <= 0 {
		return fmt.Errorf("%w: outlier_threshold must be positive", ErrInvalidConfig)
	}
	if c.MinParticipants < 0 || c.MaxParticipants < 0 {
		return fmt.Errorf("%w: participant thresholds must not be negative", ErrInvalidConfig)
	}
	return nil
}
