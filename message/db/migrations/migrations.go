package migrations

import (
	"database/sql"
	_ "embed"

	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/db/types"
	"github.com/0xPolygon/postman/log"
)

//go:embed 0001_sqlite.sql
var mig001SQLite string

//go:embed 0001_postgres.sql
var mig001Postgres string

// RunMigrations creates or upgrades the message schema for the given driver
func RunMigrations(logger *log.Logger, database *sql.DB, driver string) error {
	sql001 := mig001SQLite
	if driver == db.DriverPostgres {
		sql001 = mig001Postgres
	}
	migrations := []types.Migration{
		{
			ID:  "message0001",
			SQL: sql001,
		},
	}

	return db.RunMigrationsDB(logger, database, driver, migrations)
}
