package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	AppURL     string `env:"APP_URL" envDefault:"http://localhost:3000" validate:"required,url"`
	ServerAddr string `env:"SERVER_ADDR" envDefault:":3000" validate:"required"`

	AirstackAPIKey string `env:"AIRSTACK_API_KEY" validate:"required"`
	AirstackURL    string `env:"AIRSTACK_URL" envDefault:"https://api.airstack.xyz/gql" validate:"required,url"`

	// Variant is the frame variant served at /frames.
	Variant      string `env:"FRAME_VARIANT" envDefault:"masks" validate:"required"`
	VariantsFile string `env:"VARIANTS_FILE"`

	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	SessionSecret   string        `env:"SESSION_SECRET" envDefault:"statframes-dev-secret"`
	RateLimit       float64       `env:"RATE_LIMIT" envDefault:"10" validate:"gt=0"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load reads the .env file, if any, and parses the process environment into a Config.
// A missing AIRSTACK_API_KEY is reported here so the process can refuse to start.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet at this point.
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv parses and validates the configuration without touching .env files.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.AppURL = strings.TrimRight(cfg.AppURL, "/")
	return &cfg, nil
}

// Validate checks the struct tags and turns validator errors into env-key messages.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config validation failed: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := envKeys[fe.Field()]
		if key == "" {
			key = fe.Field()
		}
		if fe.Tag() == "required" {
			msgs = append(msgs, key+" is required")
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", key, fe.Tag()))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(msgs, "; "))
}

var envKeys = map[string]string{
	"AppURL":          "APP_URL",
	"ServerAddr":      "SERVER_ADDR",
	"AirstackAPIKey":  "AIRSTACK_API_KEY",
	"AirstackURL":     "AIRSTACK_URL",
	"Variant":         "FRAME_VARIANT",
	"UpstreamTimeout": "UPSTREAM_TIMEOUT",
	"RateLimit":       "RATE_LIMIT",
	"LogFormat":       "LOG_FORMAT",
	"LogLevel":        "LOG_LEVEL",
}
