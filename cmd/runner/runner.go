package runner

import (
	"github.com/rs/zerolog/log"

	"github.com/sagarsuperuser/todos/internal/common"
	"github.com/sagarsuperuser/todos/internal/metrics"
	"github.com/sagarsuperuser/todos/server"
	"github.com/sagarsuperuser/todos/server/controllers"
	"github.com/sagarsuperuser/todos/server/settings"
	"github.com/sagarsuperuser/todos/store"
	"github.com/sagarsuperuser/todos/store/db"
)

type Runner struct {
	settings *settings.Settings
}

func NewRunner(s *settings.Settings) *Runner {
	return &Runner{
		settings: s,
	}
}

// Run wires the service together and serves until the server is stopped.
func (runner *Runner) Run() {
	// setup logger
	if err := SetupLogger(runner.settings); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logger")
	}
	log.Info().Str("mode", runner.settings.Mode).
		Str("log_level", log.Logger.GetLevel().String()).
		Msg("Logger initialized")

	// setup Database driver
	dbDriver := db.NewDBDriver(runner.settings, common.NowUTC)

	// set up store
	storeInstance := store.New(dbDriver)
	defer func() {
		if err := storeInstance.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
		}
	}()

	var metricsManager *metrics.Manager
	if runner.settings.MetricsEnabled {
		metricsManager = metrics.NewManager(runner.settings.MetricsNamespace)
	}

	// setup server
	ctrls := controllers.New(runner.settings, storeInstance)
	srv := server.NewServer(runner.settings, storeInstance, ctrls, metricsManager)

	srv.Start()
	log.Info().Msg("Server stopped")
}
