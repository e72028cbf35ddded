package db

const (
	// DriverSQLite3 is the cgo SQLite driver (mattn/go-sqlite3)
	DriverSQLite3 = "sqlite3"
	// DriverSQLite is the pure Go SQLite driver (modernc.org/sqlite)
	DriverSQLite = "sqlite"
	// DriverPostgres is PostgreSQL through pgx stdlib
	DriverPostgres = "postgres"
)

// Config is the database configuration
type Config struct {
	// Driver is one of "sqlite3", "sqlite" or "postgres"
	Driver string `mapstructure:"Driver" jsonschema:"enum=sqlite3,enum=sqlite,enum=postgres"`
	// DSN is a file path for the SQLite drivers and a connection URL for postgres
	DSN string `mapstructure:"DSN"`
	// MaxOpenConns limits the pool. 0 means driver default
	MaxOpenConns int `mapstructure:"MaxOpenConns"`
}
