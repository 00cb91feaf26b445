package db

import (
	"github.com/rs/zerolog/log"

	"github.com/sagarsuperuser/todos/internal/common"
	"github.com/sagarsuperuser/todos/server/settings"
	"github.com/sagarsuperuser/todos/store"
	"github.com/sagarsuperuser/todos/store/db/memory"
	"github.com/sagarsuperuser/todos/store/db/mysql"
	"github.com/sagarsuperuser/todos/store/db/postgres"
)

// NewDBDriver creates new db driver based on settings.
func NewDBDriver(settings *settings.Settings, now common.NowFunc) store.Driver {
	var driver store.Driver

	switch settings.Driver {
	case "mysql":
		driver = mysql.NewDB(settings, now)
	case "postgres":
		driver = postgres.NewDB(settings, now)
	case "memory":
		driver = memory.NewDB(now)

	default:
		log.Fatal().Str("driver", settings.Driver).Msg("Unsupported DB driver")
	}
	return driver
}
