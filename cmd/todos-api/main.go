package main

import (
	"errors"
	"os"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/rs/zerolog/log"

	"github.com/sagarsuperuser/todos/cmd/runner"
	"github.com/sagarsuperuser/todos/internal/common"
	"github.com/sagarsuperuser/todos/server/settings"
	"github.com/sagarsuperuser/todos/store/db"
)

func main() {
	settings := settings.NewSettings()
	args := os.Args
	cmd := "serve"
	if len(args) > 1 {
		cmd = strings.ToLower(args[1])
	}

	switch cmd {
	case "serve":
		runServer(settings)
	case "migrate":
		if err := runner.SetupLogger(settings); err != nil {
			log.Fatal().Err(err).Msg("Failed to set up logger")
		}
		if err := runMigrations(settings); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
	default:
		log.Fatal().Str("command", cmd).Msg("unknown command (use serve|migrate)")
	}
}

func runServer(settings *settings.Settings) {
	r := runner.NewRunner(settings)
	r.Run()
}

func runMigrations(settings *settings.Settings) error {
	drv := db.NewDBDriver(settings, common.NowUTC)
	defer drv.Close()

	m, err := db.NewMigrate(settings.Driver, drv)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	log.Info().Str("driver", settings.Driver).Uint("version", version).Bool("dirty", dirty).Msg("migrations applied")
	return nil
}
