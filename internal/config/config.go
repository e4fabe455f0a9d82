// Package config loads service configuration from defaults and the
// environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "REQGEN_"

// Config holds the service configuration
type Config struct {
	Port                 string   `koanf:"port" validate:"required,numeric"`
	LogLevel             string   `koanf:"log_level" validate:"oneof=debug info warn error"`
	MaxUploadBytes       int64    `koanf:"max_upload_bytes" validate:"gt=0"`
	CacheSize            int      `koanf:"cache_size" validate:"gte=0"`
	LightweightThreshold int      `koanf:"lightweight_threshold" validate:"gt=0"`
	SimilarityThreshold  float64  `koanf:"similarity_threshold" validate:"gt=0,lt=1"`
	AllowedOrigins       []string `koanf:"allowed_origins" validate:"min=1"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Port:                 "8080",
		LogLevel:             "info",
		MaxUploadBytes:       10 << 20,
		CacheSize:            128,
		LightweightThreshold: 1000,
		SimilarityThreshold:  0.2,
		AllowedOrigins:       []string{"http://localhost:*", "https://*"},
	}
}

// Load reads defaults, then REQGEN_* environment variables. Bare PORT and
// LOG_LEVEL variables are honoured when their prefixed forms are unset.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	for key, name := range map[string]string{"port": "PORT", "log_level": "LOG_LEVEL"} {
		if v := os.Getenv(name); v != "" {
			if err := k.Set(key, v); err != nil {
				return nil, fmt.Errorf("failed to set %s: %w", key, err)
			}
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			if key == "allowed_origins" {
				return key, strings.Split(value, ",")
			}
			return key, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
