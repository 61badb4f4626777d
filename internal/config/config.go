package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Database
	DBDriver     string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost       string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort       string        `env:"DB_PORT" envDefault:"5432"`
	DBUser       string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword   string        `env:"DB_PASSWORD"`
	DBName       string        `env:"DB_NAME" envDefault:"contacts_db"`
	DBSSLMode    string        `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath   string        `env:"SQLITE_PATH" envDefault:"contacts.db"`
	DBMaxOpen    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"50"`
	DBMaxIdle    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"25"`
	DBMaxLife    time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	DBMaxIdleFor time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`

	// Server
	Port         string `env:"PORT" envDefault:"8080"`
	CORSOrigins  string `env:"CORS_ORIGINS" envDefault:"*"`
	RateLimitMax int    `env:"RATE_LIMIT_MAX" envDefault:"60"`

	// Admin
	AdminToken string `env:"ADMIN_TOKEN"`

	// Domain
	ContactPageSize int `env:"CONTACT_PAGE_SIZE" envDefault:"10"`
	BcryptCost      int `env:"BCRYPT_COST" envDefault:"10"`

	// Observability
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogRetentionDays int    `env:"LOG_RETENTION_DAYS" envDefault:"30"`
	SentryDSN        string `env:"SENTRY_DSN"`
	AppEnv           string `env:"APP_ENV" envDefault:"development"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres":
		if c.DBPassword == "" {
			return fmt.Errorf("DB_PASSWORD environment variable is required")
		}
	case "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.ContactPageSize < 1 {
		return fmt.Errorf("CONTACT_PAGE_SIZE must be positive, got %d", c.ContactPageSize)
	}
	return nil
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}
