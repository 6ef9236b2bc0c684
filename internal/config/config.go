// Package config loads server settings from COLLOQUE_* environment variables.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"colloque/internal/domain/secretseq"
	"colloque/internal/domain/view"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

var (
	ErrInvalidEnv      = errors.New("COLLOQUE_ENV must be development or production")
	ErrMissingCSRFKey  = errors.New("COLLOQUE_CSRF_KEY is required in production")
	ErrInvalidCSRFKey  = errors.New("COLLOQUE_CSRF_KEY must be 64 hex characters (32 bytes)")
	ErrInvalidLimit    = errors.New("COLLOQUE_RATE_LIMIT must be positive")
	ErrInvalidDuration = errors.New("COLLOQUE_VIEW_TTL must be positive")
)

// Config is the complete server configuration.
type Config struct {
	Addr              string        `env:"COLLOQUE_ADDR"                envDefault:":8080"`
	Env               string        `env:"COLLOQUE_ENV"                 envDefault:"development"`
	DBPath            string        `env:"COLLOQUE_DB_PATH"             envDefault:"colloque.db"`
	AdminEntry        string        `env:"COLLOQUE_ADMIN_ENTRY"         envDefault:"button"`
	AdminDetector     string        `env:"COLLOQUE_ADMIN_DETECTOR"      envDefault:"sequence"`
	AdminPasswordHash string        `env:"COLLOQUE_ADMIN_PASSWORD_HASH"`
	CSRFKey           string        `env:"COLLOQUE_CSRF_KEY"`
	ResendKey         string        `env:"COLLOQUE_RESEND_KEY"`
	MailFrom          string        `env:"COLLOQUE_MAIL_FROM"           envDefault:"Colloque <noreply@colloque.example>"`
	MailTo            []string      `env:"COLLOQUE_MAIL_TO"             envSeparator:","`
	ContentFile       string        `env:"COLLOQUE_CONTENT_FILE"`
	SlowRequestMs     int           `env:"COLLOQUE_SLOW_REQUEST_MS"     envDefault:"250"`
	SlowQueryMs       int           `env:"COLLOQUE_SLOW_QUERY_MS"       envDefault:"50"`
	ViewTTL           time.Duration `env:"COLLOQUE_VIEW_TTL"            envDefault:"30m"`
	RateLimit         int           `env:"COLLOQUE_RATE_LIMIT"          envDefault:"120"`

	// Entry and Detector are AdminEntry and AdminDetector parsed by Load.
	Entry    view.AdminEntry
	Detector secretseq.Matcher
}

// Load parses the environment into a Config and validates it.
// PRE: none
// POST: Returns a usable Config or the first configuration error
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// SlowRequest is SlowRequestMs as a duration.
func (c Config) SlowRequest() time.Duration {
	return time.Duration(c.SlowRequestMs) * time.Millisecond
}

// SlowQuery is SlowQueryMs as a duration.
func (c Config) SlowQuery() time.Duration {
	return time.Duration(c.SlowQueryMs) * time.Millisecond
}

// CSRFKeyBytes decodes CSRFKey. It returns nil when no key is configured.
func (c Config) CSRFKeyBytes() []byte {
	key, err := hex.DecodeString(c.CSRFKey)
	if err != nil || len(key) != 32 {
		return nil
	}
	return key
}

func (c *Config) validate() error {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return ErrInvalidEnv
	}

	entry, err := view.ParseAdminEntry(c.AdminEntry)
	if err != nil {
		return fmt.Errorf("COLLOQUE_ADMIN_ENTRY: %w", err)
	}
	c.Entry = entry

	matcher, err := secretseq.ParseMatcher(c.AdminDetector)
	if err != nil {
		return fmt.Errorf("COLLOQUE_ADMIN_DETECTOR: %w", err)
	}
	c.Detector = matcher

	if c.CSRFKey == "" && c.IsProduction() {
		return ErrMissingCSRFKey
	}
	if c.CSRFKey != "" {
		if key, err := hex.DecodeString(c.CSRFKey); err != nil || len(key) != 32 {
			return ErrInvalidCSRFKey
		}
	}

	if c.RateLimit <= 0 {
		return ErrInvalidLimit
	}
	if c.ViewTTL <= 0 {
		return ErrInvalidDuration
	}
	return nil
}
