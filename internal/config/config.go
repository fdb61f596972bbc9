// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the plain HTTP server listens on (e.g. :3000).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// HTTPSAddr is the address the HTTPS server listens on; ignored unless TLS files are set.
	HTTPSAddr string `mapstructure:"HTTPS_ADDR"`
	// TLSCertFile is the path to the PEM certificate for the HTTPS listener; empty disables HTTPS.
	TLSCertFile string `mapstructure:"TLS_CERT_FILE"`
	// TLSKeyFile is the path to the PEM private key for the HTTPS listener; empty disables HTTPS.
	TLSKeyFile string `mapstructure:"TLS_KEY_FILE"`
	// HashingSecret is the keyed-digest secret for password hashing; required.
	HashingSecret string `mapstructure:"HASHING_SECRET"`
	// TokenTTL is the token lifetime and renewal window (e.g. "1h").
	TokenTTL string `mapstructure:"TOKEN_TTL"`
	// DataDir is the root directory for the file-backed record store.
	DataDir string `mapstructure:"DATA_DIR"`
	// DatabaseURL is the Postgres DSN; when set the record store uses Postgres instead of files.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":3000")
	v.SetDefault("HTTPS_ADDR", ":3001")
	v.SetDefault("TLS_CERT_FILE", "")
	v.SetDefault("TLS_KEY_FILE", "")
	v.SetDefault("HASHING_SECRET", "")
	v.SetDefault("TOKEN_TTL", "1h")
	v.SetDefault("DATA_DIR", ".data")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("APP_ENV", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}
	if cfg.HashingSecret == "" {
		return nil, errors.New("config: HASHING_SECRET must be set")
	}
	if (cfg.TLSCertFile == "") != (cfg.TLSKeyFile == "") {
		return nil, errors.New("config: TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}

	return &cfg, nil
}

// TLSEnabled reports whether the HTTPS listener should be started.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// TokenTTLDuration parses TokenTTL as a time.Duration. Returns 1h if unset or invalid.
func (c *Config) TokenTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.TokenTTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}
