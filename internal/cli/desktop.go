package cli

import (
	"github.com/zamm-dev/interaccion-usuario/internal/config"
	"github.com/zamm-dev/interaccion-usuario/internal/gui"
)

// windowOptions converts validated configuration into window options
func windowOptions(cfg *config.Config) (gui.WindowOptions, error) {
	behavior, err := cfg.CloseBehavior()
	if err != nil {
		return gui.WindowOptions{}, err
	}
	return gui.WindowOptions{
		Width:         float32(cfg.Window.Width),
		Height:        float32(cfg.Window.Height),
		CloseBehavior: behavior,
	}, nil
}

// runDesktop shows the form window and blocks until it is closed, which
// ends the process.
func (a *App) runDesktop() error {
	opts, err := windowOptions(a.config)
	if err != nil {
		return err
	}

	a.logger.Infof("starting desktop form")
	gui.NewApp(opts, a.logger).Run()
	return nil
}
