package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
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
	now      common.NowFunc
}

func NewDB(settings *settings.Settings, now common.NowFunc) store.Driver {
	driver := DB{settings: settings, now: now}

	db, err := sql.Open("pgx", dsn(settings))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open PostgreSQL connection")
	}
	driver.db = db

	driver.db.SetMaxOpenConns(settings.DBMaxOpenConns)
	driver.db.SetMaxIdleConns(settings.DBMaxIdleConns)
	driver.db.SetConnMaxLifetime(settings.DBConnMaxLifetime)
	driver.db.SetConnMaxIdleTime(settings.DBConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), settings.PostgresConnectTimeout)
	defer cancel()
	if err := driver.db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping PostgreSQL")
	}

	log.Info().
		Str("host", settings.PostgresHost).
		Int("port", settings.PostgresPort).
		Str("database", settings.PostgresDatabase).
		Msg("Connected to PostgreSQL")

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

func dsn(settings *settings.Settings) string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s connect_timeout=%d",
		settings.PostgresHost,
		settings.PostgresPort,
		settings.PostgresDatabase,
		settings.PostgresUser,
		settings.PostgresPassword,
		settings.PostgresSSLMode,
		int(settings.PostgresConnectTimeout.Seconds()),
	)
}
