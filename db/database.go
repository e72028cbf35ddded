package db

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v4/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/russross/meddler"
	_ "modernc.org/sqlite"
)

const sqlitePragmas = `
	PRAGMA foreign_keys = ON;
	pragma journal_mode = WAL;
	pragma synchronous = normal;
	pragma journal_size_limit  = 6144000;
	pragma busy_timeout = 5000;
`

// DB is a connection pool together with the SQL dialect it speaks
type DB struct {
	*sql.DB
	Driver  string
	Meddler *meddler.Database
}

// NewSQLiteDB creates a new SQLite DB using the cgo driver
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverSQLite3, dbPath)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(sqlitePragmas)
	return db, err
}

// Open connects to the configured database
func Open(cfg Config) (*DB, error) {
	var (
		database *sql.DB
		err      error
		dialect  *meddler.Database
	)
	switch cfg.Driver {
	case DriverSQLite3, "":
		cfg.Driver = DriverSQLite3
		database, err = NewSQLiteDB(cfg.DSN)
		dialect = meddler.SQLite
	case DriverSQLite:
		database, err = sql.Open(DriverSQLite, cfg.DSN)
		if err == nil {
			_, err = database.Exec(sqlitePragmas)
		}
		dialect = meddler.SQLite
	case DriverPostgres:
		// pgx stdlib registers itself as "pgx"
		database, err = sql.Open("pgx", cfg.DSN)
		if err == nil {
			err = database.Ping()
		}
		dialect = meddler.PostgreSQL
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error opening %s database: %w", cfg.Driver, err)
	}
	if cfg.MaxOpenConns > 0 {
		database.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	return &DB{DB: database, Driver: cfg.Driver, Meddler: dialect}, nil
}

// IsPostgres reports whether the pool talks to PostgreSQL
func (d *DB) IsPostgres() bool {
	return d.Driver == DriverPostgres
}
