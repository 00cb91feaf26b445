package db

import (
	"fmt"
	"io/fs"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migrateMySQL "github.com/golang-migrate/migrate/v4/database/mysql"
	migratePgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/sagarsuperuser/todos/store"
	"github.com/sagarsuperuser/todos/store/db/mysql"
	"github.com/sagarsuperuser/todos/store/db/postgres"
)

// NewMigrate builds a migrator for the embedded schema of driverName,
// running against the connection pool of drv.
func NewMigrate(driverName string, drv store.Driver) (*migrate.Migrate, error) {
	sqlDB := drv.GetDB()
	if sqlDB == nil {
		return nil, fmt.Errorf("driver %q has no database to migrate", driverName)
	}

	var (
		migrations fs.FS
		inst       database.Driver
		err        error
	)
	switch driverName {
	case "mysql":
		migrations = mysql.Migrations
		inst, err = migrateMySQL.WithInstance(sqlDB, &migrateMySQL.Config{})
	case "postgres":
		migrations = postgres.Migrations
		inst, err = migratePgx.WithInstance(sqlDB, &migratePgx.Config{})
	default:
		return nil, fmt.Errorf("driver %q does not support migrations", driverName)
	}
	if err != nil {
		return nil, fmt.Errorf("init migrate instance: %w", err)
	}

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driverName, inst)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return m, nil
}
