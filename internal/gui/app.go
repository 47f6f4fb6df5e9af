// Package gui provides the Fyne desktop rendition of the form.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/zamm-dev/interaccion-usuario/internal/logging"
)

// AppID is the unique identifier for the application
const AppID = "com.sprid.formacion.interaccion"

// App wraps the Fyne application
type App struct {
	fyneApp fyne.App
	opts    WindowOptions
	logger  *logging.Logger
	window  *FormWindow
}

// NewApp creates a GUI application backed by the native driver
func NewApp(opts WindowOptions, logger *logging.Logger) *App {
	return NewAppWithDriver(app.NewWithID(AppID), opts, logger)
}

// NewAppWithDriver wraps an existing Fyne app, such as a test app
func NewAppWithDriver(a fyne.App, opts WindowOptions, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		fyneApp: a,
		opts:    opts,
		logger:  logger,
	}
}

// Open constructs and shows the form window
func (a *App) Open() *FormWindow {
	if a.window == nil {
		a.window = NewFormWindow(a.fyneApp, a.opts, a.logger)
	}
	return a.window
}

// Run opens the window and blocks on the event loop until the app quits
func (a *App) Run() {
	a.Open()
	a.fyneApp.Lifecycle().SetOnStopped(func() {
		a.logger.Infof("event loop stopped")
	})
	a.fyneApp.Run()
}

// Quit stops the event loop
func (a *App) Quit() {
	a.fyneApp.Quit()
}
