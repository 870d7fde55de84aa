package cmd

import (
	"time"

	"inventory/internal/adapters/out/postgres"
)

// DatabaseConfig is shared by every command that talks to PostgreSQL.
type DatabaseConfig struct {
	Host           string        `help:"database host" default:"localhost" env:"DB_HOST"`
	Port           string        `help:"database port" default:"5432" env:"DB_PORT"`
	User           string        `help:"database user" default:"postgres" env:"DB_USER"`
	Password       string        `help:"database password" default:"" env:"DB_PASSWORD"`
	Name           string        `help:"database name" default:"inventory" env:"DB_NAME"`
	SslMode        string        `help:"database sslmode" default:"disable" env:"DB_SSLMODE"`
	Driver         string        `help:"database/sql driver behind gorm" default:"pgx" env:"DB_DRIVER" enum:"pgx,postgres"`
	ConnectTimeout time.Duration `help:"how long to retry the first connection" default:"30s" env:"DB_CONNECT_TIMEOUT"`
}

func (c DatabaseConfig) Postgres() postgres.Config {
	return postgres.Config{
		Host:           c.Host,
		Port:           c.Port,
		User:           c.User,
		Password:       c.Password,
		Name:           c.Name,
		SSLMode:        c.SslMode,
		Driver:         c.Driver,
		ConnectTimeout: c.ConnectTimeout,
	}
}

// Config holds everything the HTTP service needs. SessionSecret has no
// default: the service refuses to start without one.
type Config struct {
	HTTPPort string         `help:"HTTP listen port" default:"8080" env:"HTTP_PORT"`
	Database DatabaseConfig `embed:"" prefix:"db-"`

	SessionSecret string        `help:"HMAC key for session tokens (at least 32 bytes)" required:"" env:"SESSION_SECRET"`
	SessionTTL    time.Duration `help:"session lifetime" default:"24h" env:"SESSION_TTL"`
	CookieSecure  bool          `help:"mark the session cookie Secure" default:"true" negatable:"" env:"COOKIE_SECURE"`

	OverdueScanSchedule string `help:"cron schedule (with seconds) of the overdue order scan" default:"0 */15 * * * *" env:"OVERDUE_SCAN_SCHEDULE"`
	BcryptCost          int    `help:"bcrypt cost for new password hashes" default:"10" env:"BCRYPT_COST"`
}
