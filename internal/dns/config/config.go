// Package config loads rr-zonec configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from ZONEC_-prefixed
// environment variables. CLI flags may override individual fields after Load.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// ZoneDir is the directory zone files are loaded from.
	ZoneDir string `koanf:"zone_dir" validate:"required"`

	// StorePath is where the compiled-zone database is written.
	StorePath string `koanf:"store_path" validate:"required"`

	// CacheSize bounds the store's decoded-answer LRU.
	CacheSize uint `koanf:"cache_size" validate:"required,gte=1"`

	// DefaultTTL is applied to records whose zone sets none, in seconds.
	DefaultTTL uint32 `koanf:"default_ttl" validate:"required,gte=1"`
}

// defaults applied before the environment is read.
var defaultConfig = AppConfig{
	Env:        "prod",
	LogLevel:   "info",
	ZoneDir:    "./zones",
	StorePath:  "./zones.db",
	CacheSize:  1024,
	DefaultTTL: 300,
}

// envLoader loads ZONEC_-prefixed environment variables, lowercasing keys
// and stripping the prefix. Swappable in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "ZONEC_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "ZONEC_")), value
		},
	}), nil)
}

// Load parses the environment over the defaults and validates the result.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}
	if err := envLoader(k); err != nil {
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
