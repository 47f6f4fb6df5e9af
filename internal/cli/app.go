package cli

import (
	"github.com/zamm-dev/interaccion-usuario/internal/config"
	"github.com/zamm-dev/interaccion-usuario/internal/logging"
	"github.com/zamm-dev/interaccion-usuario/internal/models"
)

// App represents the CLI application
type App struct {
	configPath string
	debug      bool

	config *config.Config
	logger *logging.Logger
}

// NewApp creates a new CLI application. Configuration is loaded once the
// command line has been parsed.
func NewApp() *App {
	return &App{logger: logging.Discard()}
}

// setup loads configuration and opens the log file
func (a *App) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Logging.Level = "debug"
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return models.NewAppErrorWithCause(models.ErrTypeValidation, "invalid log level", err)
	}

	logger, err := logging.Open(cfg.Logging.File, level)
	if err != nil {
		return models.NewAppErrorWithCause(models.ErrTypeSystem, "failed to open log file", err)
	}

	a.config = cfg
	a.logger = logger
	a.logger.Debugf("config loaded: %+v", *cfg)
	return nil
}

// Close closes the application and cleans up resources
func (a *App) Close() error {
	return a.logger.Close()
}
