package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// ModeDev is the MODE value that disables production posture.
// Any other value (or absence) means production behavior — the fail-safe
// default is production.
const ModeDev = "DEV"

// Config holds all configuration for the application.
// Construct it once via Load in each process main and pass it by reference;
// there is no ambient global.
type Config struct {
	// Database — all five keys are required; Load fails at boot if any is
	// missing or empty, naming the offending field.
	PostgresHost     string `conf:"required,env:POSTGRES_HOST"`
	PostgresPort     int    `conf:"required,env:POSTGRES_PORT"`
	PostgresUser     string `conf:"required,env:POSTGRES_USER"`
	PostgresPassword string `conf:"required,env:POSTGRES_PASSWORD,noprint"`
	PostgresDatabase string `conf:"required,env:POSTGRES_DATABASE"`

	// MigrationTable is the goose version-tracking table.
	MigrationTable string `conf:"default:migration,env:MIGRATION_TABLE"`
	// RunMigrations makes cmd/api apply pending migrations at boot.
	RunMigrations bool `conf:"default:false,env:RUN_MIGRATIONS"`

	// Application
	Port     int    `conf:"default:3000,env:PORT"`
	Mode     string `conf:"default:PROD,env:MODE"`
	LogLevel string `conf:"default:info,env:LOG_LEVEL"`

	// Redis
	RedisURL string `conf:"default:redis://localhost:6379,env:REDIS_URL"`

	// CORS — comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:itemstore,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// DatabaseConfig is the typed connection descriptor derived from Config.
// SSL mirrors the production posture: TLS on unless MODE=DEV.
type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	MigrationTable string
	SSL            bool
}

// URL renders the pgx connection string for this descriptor.
func (d DatabaseConfig) URL() string {
	sslmode := "disable"
	if d.SSL {
		sslmode = "require"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, sslmode)
}

// Load reads configuration from environment variables (after a best-effort
// .env load). Missing required keys make Load fail with an error naming the
// field — callers must treat that as fatal and not start the process.
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// conf's required flag only proves the variable was provided; a set-but-empty
	// value still has to be rejected here.
	for _, f := range []struct {
		key   string
		value string
	}{
		{"POSTGRES_HOST", cfg.PostgresHost},
		{"POSTGRES_USER", cfg.PostgresUser},
		{"POSTGRES_PASSWORD", cfg.PostgresPassword},
		{"POSTGRES_DATABASE", cfg.PostgresDatabase},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("failed to parse config: required key %s is empty", f.key)
		}
	}

	return &cfg, nil
}

// IsProduction reports whether the process runs with production posture.
// False only when the dev marker MODE=DEV is set exactly.
func (c *Config) IsProduction() bool {
	return c.Mode != ModeDev
}

// Database derives the typed database descriptor. The required sub-keys were
// validated at Load; this accessor does not re-validate.
func (c *Config) Database() DatabaseConfig {
	return DatabaseConfig{
		Host:           c.PostgresHost,
		Port:           c.PostgresPort,
		User:           c.PostgresUser,
		Password:       c.PostgresPassword,
		Database:       c.PostgresDatabase,
		MigrationTable: c.MigrationTable,
		SSL:            c.IsProduction(),
	}
}
