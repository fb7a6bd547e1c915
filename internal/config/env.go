package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port            int      `env:"PACSIM_PORT" envDefault:"8080"`
	AllowedOrigins  []string `env:"PACSIM_ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:5173" envSeparator:","`
	DefaultLanguage string   `env:"PACSIM_DEFAULT_LANG" envDefault:"en"`
	OTELEndpoint    string   `env:"OTEL_ENDPOINT"`
	OTELServiceName string   `env:"OTEL_SERVICE_NAME" envDefault:"pacsim"`
	GinMode         string   `env:"GIN_MODE"`
}

// ReleaseMode reports whether gin should run in release mode.
func (c ServerConfig) ReleaseMode() bool {
	return c.GinMode == "release"
}

// LoadServerConfig reads server settings from the environment, loading a .env file first if present.
func LoadServerConfig() (ServerConfig, error) {
	_ = godotenv.Load()

	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}

	origins := cfg.AllowedOrigins[:0]
	for _, o := range cfg.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.AllowedOrigins = origins
	cfg.DefaultLanguage = strings.TrimSpace(cfg.DefaultLanguage)
	return cfg, nil
}
