// Package dberr translates PostgreSQL failures into the application error
// taxonomy. Both the pgx and the lib/pq drivers are understood.
package dberr

import (
	"errors"
	"fmt"

	"inventory/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Details of a failed statement, independent of the driver that reported it.
type pgFailure struct {
	code       string
	constraint string
	detail     string
}

func asFailure(err error) (pgFailure, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgFailure{code: pgErr.Code, constraint: pgErr.ConstraintName, detail: pgErr.Detail}, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pgFailure{code: string(pqErr.Code), constraint: pqErr.Constraint, detail: pqErr.Detail}, true
	}

	return pgFailure{}, false
}

// Map converts err raised while writing entity (identified by value) into a
// typed error. Unique violations become errs.AlreadyExistsError (the
// ux_users_email index reports the email), foreign key violations become
// errs.ObjectNotFoundError and numeric overflow becomes errs.ValueIsInvalidError.
// Anything else is returned wrapped with the PostgreSQL code.
func Map(err error, entity string, value any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(entity, value, err)
	}

	f, ok := asFailure(err)
	if !ok {
		return err
	}

	switch f.code {
	case pgerrcode.UniqueViolation:
		if f.constraint == UsersEmailIndex {
			return errs.NewAlreadyExistsErrorWithCause("email", value, err)
		}
		return errs.NewAlreadyExistsErrorWithCause(entity, value, err)

	case pgerrcode.ForeignKeyViolation:
		return errs.NewObjectNotFoundErrorWithCause(entity+" reference", f.detail, err)

	case pgerrcode.NumericValueOutOfRange:
		return errs.NewValueIsInvalidErrorWithCause(entity, err)

	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return fmt.Errorf("transaction conflict (retryable): %w", err)

	case pgerrcode.QueryCanceled:
		return fmt.Errorf("query canceled: %w", err)

	default:
		return fmt.Errorf("postgres error [%s]: %w", f.code, err)
	}
}

// UsersEmailIndex is the unique index enforcing global email uniqueness.
const UsersEmailIndex = "ux_users_email"

// IsConnectionFailure reports whether err means the server is not reachable
// yet; such errors are worth retrying at startup.
func IsConnectionFailure(err error) bool {
	f, ok := asFailure(err)
	if !ok {
		return true
	}
	switch f.code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.TooManyConnections:
		return true
	default:
		return false
	}
}
