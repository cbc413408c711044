package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if DRAWAUTH_CONFIG is set
//  3. env (prefix DRAWAUTH_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for future remote providers

	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DRAWAUTH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: DRAWAUTH_DECAY_K, DRAWAUTH_PASS_THRESHOLD, ...
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("DRAWAUTH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "drawauth_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.DecayK <= 0:
		return fmt.Errorf("%w: decay_k must be positive", ErrInvalidConfig)
	case cfg.StddevFloor <= 0:
		return fmt.Errorf("%w: stddev_floor must be positive", ErrInvalidConfig)
	case cfg.PassThreshold <= 0 || cfg.PassThreshold > 100:
		return fmt.Errorf("%w: pass_threshold must be in (0,100]", ErrInvalidConfig)
	case cfg.MinEnrollmentSamples < 1:
		return fmt.Errorf("%w: min_enrollment_samples must be at least 1", ErrInvalidConfig)
	case cfg.PauseThresholdMS <= 0:
		return fmt.Errorf("%w: pause_threshold_ms must be positive", ErrInvalidConfig)
	}
	return nil
}
