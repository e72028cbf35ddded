package db

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/russross/meddler"
	moderncsqlite "modernc.org/sqlite"
)

// sqlite primary result codes
const (
	sqliteBusy       = 5
	sqliteLocked     = 6
	sqliteConstraint = 19
)

var (
	// ErrNotFound is returned when a query matches no row
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a conditional write affected no row
	ErrConflict = errors.New("conflicting concurrent write")
)

// postgres SQLSTATE codes treated as write conflicts
var pgConflictCodes = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
	"23505": {}, // unique_violation
}

// ReturnErrNotFound maps sql.ErrNoRows into ErrNotFound
func ReturnErrNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// SQLiteErr extracts the mattn/go-sqlite3 error, looking through meddler wrapping
func SQLiteErr(err error) (*sqlite.Error, bool) {
	sqliteErr := &sqlite.Error{}
	if ok := errors.As(err, sqliteErr); ok {
		return sqliteErr, true
	}
	if driverErr, ok := meddler.DriverErr(err); ok {
		return sqliteErr, errors.As(driverErr, sqliteErr)
	}
	return sqliteErr, false
}

// IsConflictErr reports whether err is caused by another writer: a busy or
// locked database, a uniqueness violation or a serialization failure
func IsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConflict) {
		return true
	}
	if driverErr, ok := meddler.DriverErr(err); ok {
		err = driverErr
	}
	if sqliteErr, ok := SQLiteErr(err); ok {
		switch int(sqliteErr.Code) {
		case sqliteBusy, sqliteLocked, sqliteConstraint:
			return true
		}
		return false
	}
	var modernErr *moderncsqlite.Error
	if errors.As(err, &modernErr) {
		switch modernErr.Code() & 0xff { //nolint:mnd
		case sqliteBusy, sqliteLocked, sqliteConstraint:
			return true
		}
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		_, ok := pgConflictCodes[pgErr.Code]
		return ok
	}
	return false
}
