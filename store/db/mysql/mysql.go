package mysql

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/sagarsuperuser/todos/internal/common"
	"github.com/sagarsuperuser/todos/server/settings"
	"github.com/sagarsuperuser/todos/store"
)

// Migrations holds the schema migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS

type DB struct {
	db       *sql.DB
	settings *settings.Settings
	config   *mysql.Config
	now      common.NowFunc
}

func NewDB(settings *settings.Settings, now common.NowFunc) store.Driver {
	driver := DB{settings: settings}
	driver.config = createConfig(settings)
	dsn := driver.config.FormatDSN()

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open MySQL connection")
	}
	driver.db = db

	// set pool options
	driver.db.SetMaxOpenConns(settings.DBMaxOpenConns)
	driver.db.SetMaxIdleConns(settings.DBMaxIdleConns)
	driver.db.SetConnMaxLifetime(settings.DBConnMaxLifetime)
	driver.db.SetConnMaxIdleTime(settings.DBConnMaxIdleTime)

	// Test the connection
	if err := driver.db.Ping(); err != nil {
		log.Debug().Str("addr", driver.config.Addr).Str("user", driver.config.User).Msg("Configured MySQL")
		log.Fatal().Err(err).Msg("Failed to ping MySQL")
	}

	log.Info().
		Str("host", settings.MySQLHost).
		Int("port", settings.MySQLPort).
		Str("database", settings.MySQLDatabase).
		Msg("Connected to MySQL")

	driver.now = now
	return &driver
}

func (d *DB) GetDB() *sql.DB {
	return d.db
}

func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) Close() error {
	return d.db.Close()
}

func createConfig(settings *settings.Settings) *mysql.Config {
	config := mysql.NewConfig()
	config.User = settings.MySQLUser
	config.Passwd = settings.MySQLPassword
	config.Net = "tcp"
	config.Addr = fmt.Sprintf("%s:%d", settings.MySQLHost, settings.MySQLPort)
	config.DBName = settings.MySQLDatabase
	// multiStatements=true is required for migration.
	// See more in: https://github.com/go-sql-driver/mysql#multistatements
	config.MultiStatements = true
	config.ParseTime = true
	// Timeouts
	config.Timeout = settings.MySQLConnectTimeout
	config.ReadTimeout = settings.MySQLQueryTimeout
	config.WriteTimeout = settings.MySQLQueryTimeout
	return config
}
