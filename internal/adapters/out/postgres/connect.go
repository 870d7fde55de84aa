package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"inventory/internal/adapters/out/postgres/dberr"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	"github.com/rs/zerolog"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverPgx = "pgx"
	DriverPq  = "postgres"
)

// Config holds the connection settings read from the environment.
type Config struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	Driver         string
	ConnectTimeout time.Duration
}

// DSN renders the settings as a libpq-style URL understood by both drivers.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host + ":" + c.Port,
		Path:   c.Name,
	}
	q := url.Values{}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Dialector selects the database/sql driver behind gorm: pgx (default) or lib/pq.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "", DriverPgx:
		return gormpostgres.Open(dsn), nil
	case DriverPq:
		return gormpostgres.New(gormpostgres.Config{DriverName: DriverPq, DSN: dsn}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects to PostgreSQL, retrying with exponential backoff until the
// server answers or cfg.ConnectTimeout elapses.
func Open(ctx context.Context, cfg Config, logger zerolog.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, err
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	gormCfg := &gorm.Config{Logger: NewGormLogger(logger)}

	connect := func() (*gorm.DB, error) {
		db, openErr := gorm.Open(dialector, gormCfg)
		if openErr != nil {
			if dberr.IsConnectionFailure(openErr) {
				return nil, openErr
			}
			return nil, backoff.Permanent(openErr)
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return nil, backoff.Permanent(dbErr)
		}
		if pingErr := sqlDB.PingContext(ctx); pingErr != nil {
			_ = sqlDB.Close()
			return nil, pingErr
		}
		return db, nil
	}

	db, err := backoff.Retry(ctx, connect,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(timeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warn().Err(err).Dur("retry_in", next).Msg("database not ready")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logger.Info().Str("driver", dialector.Name()).Str("host", cfg.Host).Str("database", cfg.Name).
		Msg("database connected")
	return db, nil
}
