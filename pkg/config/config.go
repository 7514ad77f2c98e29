package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded, when present, before the environment is parsed.
const DefaultEnvFile = ".env"

// Config holds all site configuration.
type Config struct {
	// Server settings
	Port            int           `env:"HRSITE_PORT" envDefault:"9876"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	TLSCertFile     string        `env:"TLS_CERT_FILE"`
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	// Navigation trees; empty means the embedded defaults
	MenuFile      string `env:"HRSITE_MENU_FILE"`
	CountriesFile string `env:"HRSITE_COUNTRIES_FILE"`

	Session SessionConfig
	Forms   FormConfig

	// Show the promo modal to new visitors
	PromoEnabled bool `env:"PROMO_ENABLED" envDefault:"true"`
}

// SessionConfig controls visitor menu state lifetime.
type SessionConfig struct {
	TTL   time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	Sweep time.Duration `env:"SESSION_SWEEP" envDefault:"1m"`
}

// FormConfig throttles demo and newsletter submissions per session.
type FormConfig struct {
	RatePerMinute int `env:"FORM_RATE_PER_MIN" envDefault:"5"`
	Burst         int `env:"FORM_RATE_BURST" envDefault:"3"`
}

// TLSEnabled reports whether both certificate and key are configured.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, fmt.Errorf("session ttl must be positive, got %s", c.Session.TTL))
	}
	if c.Session.Sweep <= 0 {
		errs = append(errs, fmt.Errorf("session sweep must be positive, got %s", c.Session.Sweep))
	}
	if c.Forms.RatePerMinute <= 0 || c.Forms.Burst <= 0 {
		errs = append(errs, errors.New("form rate and burst must be positive"))
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		errs = append(errs, errors.New("both TLS_CERT_FILE and TLS_KEY_FILE must be set"))
	}
	return errors.Join(errs...)
}

// Load reads envFiles (missing files are skipped) and parses the environment.
// With no envFiles, DefaultEnvFile is tried.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("env file not found, using environment", "file", f)
				continue
			}
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	slog.Debug("configuration loaded",
		"port", cfg.Port,
		"menu_file", cfg.MenuFile,
		"session_ttl", cfg.Session.TTL,
		"tls", cfg.TLSEnabled())

	return cfg, nil
}
