package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if STRIDE_CONFIG is set
//  3. env (prefix STRIDE_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("STRIDE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: STRIDE_OUTPUT_DIR, STRIDE_WORKER_COUNT, ...
	// Map env keys like STRIDE_OUTPUT_DIR -> output_dir (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("STRIDE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "stride_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the batch cannot run with.
func (c *Config) validate() error {
	if c.PerformanceCSV == "" || c.RecordCSV == "" || c.ContemporaryCSV == "" {
		return fmt.Errorf("%w: input paths must not be empty", ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.ImageFormat) {
	case "png", "svg":
	default:
		return fmt.Errorf("%w: image_format %q (want png or svg)", ErrInvalidConfig, c.ImageFormat)
	}
	if c.ImageWidthCM <= 0 || c.ImageHeightCM <= 0 {
		return fmt.Errorf("%w: image dimensions must be positive", ErrInvalidConfig)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("%w: worker_count must be at least 1", ErrInvalidConfig)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("%w: queue_size must be at least 1", ErrInvalidConfig)
	}
	if _, err := time.Parse("2006-01-02", c.ReferenceDate); err != nil {
		return fmt.Errorf("%w: reference_date %q: %w", ErrInvalidConfig, c.ReferenceDate, err)
	}
	return nil
}

// ReferenceTime returns the parsed reference date. Call after Load; the
// loader has already validated the format.
func (c *Config) ReferenceTime() time.Time {
	t, _ := time.Parse("2006-01-02", c.ReferenceDate)
	return t
}
