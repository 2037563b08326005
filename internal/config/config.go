package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	BaseURL     string `env:"BASE_URL"`
	DefaultRole string `env:"DEFAULT_ROLE"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// NewConfig loads configuration from a .env file and the environment,
// with flags overriding unset values.
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (postgres:// or a SQLite path)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "JWT signing key")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "listen address (host:port)")
	flag.StringVar(&cfg.DefaultRole, "default-role", cfg.DefaultRole, "role attached to registrations without one")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "serve HTTPS")
	flag.StringVar(&cfg.TLSCertFile, "tls-cert", cfg.TLSCertFile, "TLS certificate file (with -https)")
	flag.StringVar(&cfg.TLSKeyFile, "tls-key", cfg.TLSKeyFile, "TLS key file (with -https)")

	flag.Parse()

	// Defaults
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "store.db"
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.DefaultRole == "" {
		cfg.DefaultRole = "comum"
	}

	// BaseURL must be in "address:port" form (no scheme, no path).
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	return cfg
}
