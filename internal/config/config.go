package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"festival/internal/core"
)

type Config struct {
	// HTTP Server
	Port            string        `envconfig:"PORT" default:"5000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Storage
	DataBackend        string `envconfig:"DATA_BACKEND" default:"sqlite"`
	DatabaseURL        string `envconfig:"DATABASE_URL"`
	SnapshotAggregates bool   `envconfig:"SNAPSHOT_AGGREGATES" default:"false"`

	// Festival budget as written in the environment. Parsed leniently by Budget.
	FestivalBudget string `envconfig:"FESTIVAL_BUDGET"`
	// Name used by the first deployment of the tracker, read when FESTIVAL_BUDGET is unset.
	LegacyBudget string `envconfig:"GANAPATI_BUDGET"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// AMQP change events. Disabled when AMQPURL is empty.
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"festival"`
	AMQPQueue    string `envconfig:"AMQP_QUEUE" default:"mirror_records"`

	// Google Sheets mirror
	GoogleSpreadsheetID      string        `envconfig:"GOOGLE_SPREADSHEET_ID"`
	GoogleServiceAccountJSON string        `envconfig:"GOOGLE_SERVICE_ACCOUNT_JSON"`
	GoogleServiceAccountFile string        `envconfig:"GOOGLE_SERVICE_ACCOUNT_FILE"`
	MirrorInterval           time.Duration `envconfig:"MIRROR_INTERVAL" default:"5m"`

	// Admin auth. The API is open when AdminPasswordHash is empty.
	AdminUsername     string        `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string        `envconfig:"JWT_SECRET"`
	TokenTTL          time.Duration `envconfig:"TOKEN_TTL" default:"12h"`
	LoginRateLimit    int           `envconfig:"LOGIN_RATE_LIMIT" default:"10"`

	// Extra proxy CIDRs whose forwarding headers are trusted, besides private ranges.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

var validBackends = []string{"sqlite", "postgres", "memory"}

// Load reads the configuration from the environment and fills backend defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.DatabaseURL == "" && cfg.DataBackend == "sqlite" {
		cfg.DatabaseURL = "file:./data/festival.db"
	}
	return &cfg, nil
}

// AuthEnabled reports whether mutating API routes require a token.
func (c *Config) AuthEnabled() bool {
	return c.AdminPasswordHash != ""
}

// AMQPEnabled reports whether change events are published.
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}

// MirrorEnabled reports whether the Sheets mirror has what it needs to run.
func (c *Config) MirrorEnabled() bool {
	return c.GoogleSpreadsheetID != "" && (c.GoogleServiceAccountJSON != "" || c.GoogleServiceAccountFile != "")
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Budget returns the configured estimate budget. The value is read the way a
// browser parses a number prefix: "150000", "150000.50 INR" and " 1e5" are
// accepted, anything without a numeric prefix yields 0.
func (c *Config) Budget() core.Money {
	raw := c.FestivalBudget
	if strings.TrimSpace(raw) == "" {
		raw = c.LegacyBudget
	}
	m := leadingNumber.FindString(strings.TrimSpace(raw))
	if m == "" {
		return core.Money{}
	}
	budget, err := core.ParseMoney(m)
	if err != nil {
		return core.Money{}
	}
	return budget
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case "sqlite":
		if c.DatabaseURL == "" {
			errors = append(errors, "DATABASE_URL cannot be empty when using sqlite backend")
		} else if dir := sqliteDir(c.DatabaseURL); dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	case "postgres":
		if c.DatabaseURL == "" {
			errors = append(errors, "DATABASE_URL is required when using postgres backend")
		} else if u, err := url.Parse(c.DatabaseURL); err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
			errors = append(errors, "invalid DATABASE_URL: must be a postgres:// or postgresql:// URL")
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.GoogleServiceAccountFile != "" {
		if _, err := os.Stat(c.GoogleServiceAccountFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleServiceAccountFile))
		}
	}

	if c.MirrorInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid mirror interval %v: must be at least 1 second", c.MirrorInterval))
	} else if c.MirrorInterval > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid mirror interval %v: must be at most 24 hours", c.MirrorInterval))
	}

	if c.AuthEnabled() {
		if c.AdminUsername == "" {
			errors = append(errors, "ADMIN_USERNAME cannot be empty when ADMIN_PASSWORD_HASH is set")
		}
		if len(c.JWTSecret) < 32 {
			errors = append(errors, "JWT_SECRET must be at least 32 characters when ADMIN_PASSWORD_HASH is set")
		}
		if c.LoginRateLimit < 1 {
			errors = append(errors, fmt.Sprintf("invalid login rate limit %d: must be positive", c.LoginRateLimit))
		}
		if c.TokenTTL < time.Minute {
			errors = append(errors, fmt.Sprintf("invalid token TTL %v: must be at least 1 minute", c.TokenTTL))
		}
	}

	if c.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// sqliteDir returns the directory of a file-backed SQLite DSN, or "" for
// in-memory databases and the current directory.
func sqliteDir(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" || strings.HasPrefix(path, ":memory:") {
		return ""
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return ""
	}
	return dir
}
