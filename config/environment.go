package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	Port           string        `env:"PORT" envDefault:"3000"`
	StorageURL     string        `env:"STORAGE_URL" envDefault:"console.db"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	PublicPaths    []string      `env:"PUBLIC_PATHS" envSeparator:"," envDefault:"/login,/register,/healthz"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	CookieDomain   string        `env:"COOKIE_DOMAIN"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`

	IsDevelopment bool `env:"-"`
	CookieSecure  bool `env:"-"`
}

// Load reads the console configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	// If no domain is set, we're in development
	cfg.IsDevelopment = cfg.CookieDomain == ""
	if cfg.IsDevelopment {
		cfg.CookieDomain = "localhost"
	}
	cfg.CookieSecure = !cfg.IsDevelopment

	return cfg, nil
}

// Addr is the listen address of the console.
func (c Config) Addr() string {
	return "0.0.0.0:" + c.Port
}
