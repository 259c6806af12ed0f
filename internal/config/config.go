// Package config
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "SYS"

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config only drives diagnostics. Nothing here changes what info or status
// report.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	DebugLog  string `envconfig:"DEBUG_LOG"`
}

func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load always returns a usable Config. Values that cannot be used are replaced
// by their defaults and described in the returned warnings.
func Load() (*Config, []string) {
	// a missing .env is the normal case
	_ = godotenv.Load()

	var warnings []string

	cfg := Default()
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		warnings = append(warnings, fmt.Sprintf("failed to process env vars, using defaults: %v", err))
		cfg = Default()
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	warnings = append(warnings, cfg.applyDefaults()...)

	return cfg, warnings
}

func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("config: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, messageFor(e))
	}

	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}

// applyDefaults resets every field that fails validation.
func (c *Config) applyDefaults() []string {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		*c = *Default()
		return []string{fmt.Sprintf("invalid config, using defaults: %v", err)}
	}

	warnings := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.StructField() {
		case "LogLevel":
			c.LogLevel = DefaultLogLevel
		case "LogFormat":
			c.LogFormat = DefaultLogFormat
		}
		warnings = append(warnings, messageFor(e)+", using default")
	}

	return warnings
}

func messageFor(e validator.FieldError) string {
	name := envName(e.StructField())

	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", name, e.Param(), e.Value())
	case "required":
		return fmt.Sprintf("%s is required", name)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

func envName(field string) string {
	switch field {
	case "LogLevel":
		return envPrefix + "_LOG_LEVEL"
	case "LogFormat":
		return envPrefix + "_LOG_FORMAT"
	case "DebugLog":
		return envPrefix + "_DEBUG_LOG"
	default:
		return field
	}
}
