package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/0xPolygon/postman/db/types"
	"github.com/0xPolygon/postman/log"
	migrate "github.com/rubenv/sql-migrate"
)

// RunMigrations opens the SQLite file at dbPath and applies migrations
func RunMigrations(dbPath string, migrations []types.Migration) error {
	database, err := NewSQLiteDB(dbPath)
	if err != nil {
		return fmt.Errorf("error creating DB %w", err)
	}
	defer database.Close()
	return RunMigrationsDB(log.GetDefaultLogger(), database, DriverSQLite3, migrations)
}

// RunMigrationsDB applies migrations on an already opened database
func RunMigrationsDB(logger *log.Logger, database *sql.DB, driver string, migrations []types.Migration) error {
	migs := &migrate.MemoryMigrationSource{Migrations: []*migrate.Migration{}}
	for _, m := range migrations {
		parsed, err := migrate.ParseMigration(m.ID+".sql", strings.NewReader(m.SQL))
		if err != nil {
			return fmt.Errorf("error parsing migration %s: %w", m.ID, err)
		}
		parsed.Id = m.ID
		migs.Migrations = append(migs.Migrations, parsed)
	}

	logger.Debugf("running migrations:")
	for _, m := range migs.Migrations {
		logger.Debugf("%+v", m.Id)
	}
	nMigrations, err := migrate.Exec(database, migrateDialect(driver), migs, migrate.Up)
	if err != nil {
		return fmt.Errorf("error executing migration %w", err)
	}

	logger.Infof("successfully ran %d migrations", nMigrations)
	return nil
}

func migrateDialect(driver string) string {
	switch driver {
	case DriverPostgres:
		return "postgres"
	default:
		return "sqlite3"
	}
}
