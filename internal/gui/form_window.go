package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/zamm-dev/interaccion-usuario/internal/logging"
	"github.com/zamm-dev/interaccion-usuario/internal/models"
)

// WindowOptions configures a FormWindow
type WindowOptions struct {
	Width         float32
	Height        float32
	CloseBehavior models.CloseBehavior
}

// DefaultWindowOptions returns the stock 300x200 window that quits on close
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Width:         models.DefaultWindowWidth,
		Height:        models.DefaultWindowHeight,
		CloseBehavior: models.CloseTerminateProcess,
	}
}

// FormWindow owns the button, entry and label of the form. Widgets are only
// touched from the Fyne event goroutine.
type FormWindow struct {
	window fyne.Window
	button *widget.Button
	entry  *widget.Entry
	label  *widget.Label

	state         *models.FormState
	closeBehavior models.CloseBehavior
	quit          func()
	logger        *logging.Logger
}

// NewFormWindow builds the form inside a new master window of a and shows it
func NewFormWindow(a fyne.App, opts WindowOptions, logger *logging.Logger) *FormWindow {
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.CloseBehavior == "" {
		opts.CloseBehavior = models.CloseTerminateProcess
	}

	fw := &FormWindow{
		window:        a.NewWindow(models.WindowTitle),
		state:         models.NewFormState(),
		closeBehavior: opts.CloseBehavior,
		quit:          a.Quit,
		logger:        logger,
	}

	fw.button = widget.NewButton(models.ButtonLabel, fw.onButtonActivated)
	fw.entry = widget.NewEntry()
	fw.entry.OnChanged = fw.onInputChanged
	fw.label = widget.NewLabel("")

	entryCell := container.NewGridWrap(
		fyne.NewSize(entryWidth(models.EntryColumns), fw.entry.MinSize().Height),
		fw.entry,
	)

	fw.window.SetContent(container.New(NewFlowLayout(), fw.button, entryCell, fw.label))
	fw.window.SetMaster()
	fw.window.SetCloseIntercept(fw.handleClose)
	fw.window.Resize(fyne.NewSize(opts.Width, opts.Height))
	fw.window.Show()

	fw.logger.Infof("window %q opened (%gx%g, close=%s)", models.WindowTitle, opts.Width, opts.Height, opts.CloseBehavior)
	return fw
}

// entryWidth is the width of columns 'm' glyphs plus the entry's inner padding
func entryWidth(columns int) float32 {
	text := fyne.MeasureText(strings.Repeat("m", columns), theme.TextSize(), fyne.TextStyle{})
	return text.Width + 2*theme.InnerPadding()
}

func (fw *FormWindow) onInputChanged(text string) {
	fw.state.SetInput(text)
	fw.logger.Debugf("input changed: %q", text)
}

// onButtonActivated copies the entry into the label with the fixed prefix
func (fw *FormWindow) onButtonActivated() {
	if fw.state.State() == models.Closed {
		return
	}
	display := fw.state.Activate()
	fw.label.SetText(display)
	fw.logger.Debugf("activation %d: %q", fw.state.Activations(), display)
}

func (fw *FormWindow) handleClose() {
	if !fw.state.Close() {
		return
	}
	fw.logger.Infof("window closed after %d activations", fw.state.Activations())

	switch fw.closeBehavior {
	case models.CloseTerminateProcess:
		fw.quit()
	}
}

// Title returns the window title
func (fw *FormWindow) Title() string {
	return fw.window.Title()
}

// InputText returns the current contents of the text field
func (fw *FormWindow) InputText() string {
	return fw.state.Input()
}

// DisplayText returns the label's current text
func (fw *FormWindow) DisplayText() string {
	return fw.label.Text
}

// State returns the window lifecycle state
func (fw *FormWindow) State() models.Lifecycle {
	return fw.state.State()
}
