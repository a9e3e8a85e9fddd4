// Package config loads the zoned application configuration from
// environment variables, applying defaults and validation.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/zonekit/zoned/internal/zones/domain"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// ZoneDir is the directory where zone document files are located.
	ZoneDir string `koanf:"zone_dir" validate:"required"`

	// CacheSize is the maximum number of converted zones kept in memory.
	CacheSize uint `koanf:"cache_size" validate:"required,gte=1"`

	// DefaultTTL is applied to records whose document omits a ttl, in seconds.
	DefaultTTL uint32 `koanf:"default_ttl" validate:"required,gte=1"`

	// ConvertTimeout bounds a single zone conversion call, in seconds.
	ConvertTimeout uint `koanf:"convert_timeout" validate:"required,gte=1"`

	// ContextFilter enables context-tag filtering of records. When
	// false no policy is configured and every record passes.
	ContextFilter bool `koanf:"context_filter"`

	// ContextMatchEmpty admits records carrying an empty context list.
	ContextMatchEmpty bool `koanf:"context_match_empty"`

	// ContextAllow is the set of context tags this deployment serves.
	ContextAllow []string `koanf:"context_allow" validate:"dive,min=1"`
}

// DEFAULT_APP_CONFIG defines the default application configuration for
// the zone conversion service.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:            "prod",
	LogLevel:       "info",
	ZoneDir:        "/etc/zoned/zones/",
	CacheSize:      1000,
	DefaultTTL:     3600,
	ConvertTimeout: 30,
}

// Policy returns the context policy this configuration describes, or
// nil when context filtering is disabled (the fail-open state).
func (c *AppConfig) Policy() *domain.ContextPolicy {
	if !c.ContextFilter {
		return nil
	}
	return &domain.ContextPolicy{
		MatchEmpty: c.ContextMatchEmpty,
		Allow:      c.ContextAllow,
	}
}

// Timeout returns the conversion timeout as a duration.
func (c *AppConfig) Timeout() time.Duration {
	return time.Duration(c.ConvertTimeout) * time.Second
}

// envLoader loads environment variables with the prefix "ZONED_",
// lowercasing keys and splitting list values on spaces or commas.
// It is a package variable so tests can substitute it.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "ZONED_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "ZONED_"))
			value = strings.TrimSpace(value)

			if value == "" {
				return key, value
			}

			if strings.Contains(value, " ") || strings.Contains(value, ",") {
				parts := strings.FieldsFunc(value, func(r rune) bool {
					return r == ' ' || r == ','
				})
				return key, parts
			}

			return key, value
		},
	}), nil)
}

// defaultLoader loads default configuration values using the structs
// provider. It is a package variable so tests can substitute it.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
