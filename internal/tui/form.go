// Package tui renders the form in a terminal with Bubble Tea.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/zamm-dev/interaccion-usuario/internal/logging"
	"github.com/zamm-dev/interaccion-usuario/internal/models"
)

type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
)

// FormModel is the terminal counterpart of the desktop window: a button, a
// text input and a label sharing one FormState.
type FormModel struct {
	state    *models.FormState
	input    textinput.Model
	focus    focusTarget
	showHelp bool
	width    int
	height   int
	logger   *logging.Logger
}

// NewFormModel creates an open form with the input focused
func NewFormModel(logger *logging.Logger) FormModel {
	if logger == nil {
		logger = logging.Discard()
	}

	input := textinput.New()
	input.Prompt = ""
	input.Width = models.EntryColumns
	input.Focus()

	return FormModel{
		state:  models.NewFormState(),
		input:  input,
		focus:  focusInput,
		logger: logger,
	}
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles tea messages and updates the form
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.State() == models.Closed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyEsc && m.showHelp:
			m.showHelp = false
			return m, nil
		case msg.Type == tea.KeyCtrlC, msg.Type == tea.KeyEsc:
			return m.close()
		case msg.Type == tea.KeyF1:
			m.showHelp = !m.showHelp
			return m, nil
		case msg.Type == tea.KeyTab, msg.Type == tea.KeyShiftTab:
			return m.toggleFocus()
		case m.focus == focusButton && (msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace):
			m.activate()
			return m, nil
		case m.focus == focusButton:
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.state.Input() {
		m.state.SetInput(m.input.Value())
		m.logger.Debugf("input changed: %q", m.input.Value())
	}
	return m, cmd
}

func (m FormModel) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusButton
		m.input.Blur()
		return m, nil
	}
	m.focus = focusInput
	return m, m.input.Focus()
}

func (m *FormModel) activate() {
	display := m.state.Activate()
	m.logger.Debugf("activation %d: %q", m.state.Activations(), display)
}

func (m FormModel) close() (tea.Model, tea.Cmd) {
	if m.state.Close() {
		m.logger.Infof("terminal form closed after %d activations", m.state.Activations())
	}
	return m, tea.Quit
}

// DisplayText returns the label's current text
func (m FormModel) DisplayText() string {
	return m.state.Display()
}

// InputText returns the current contents of the text input
func (m FormModel) InputText() string {
	return m.state.Input()
}

// State returns the form lifecycle state
func (m FormModel) State() models.Lifecycle {
	return m.state.State()
}

func (m FormModel) View() string {
	body := m.body()
	if !m.showHelp {
		return body
	}
	// the popup is taller than the bare form, so fill the terminal first
	bg := lipgloss.Place(
		max(m.width, lipgloss.Width(body)), max(m.height, lipgloss.Height(body)),
		lipgloss.Left, lipgloss.Top, body,
	)
	return overlay.New(helpView{}, staticView(bg), overlay.Center, overlay.Center, 0, 0).View()
}

func (m FormModel) body() string {
	var sb strings.Builder

	sb.WriteString(titleStyle().Render(models.WindowTitle) + "\n")
	sb.WriteString(strings.Repeat("=", lipgloss.Width(models.WindowTitle)) + "\n\n")

	button := buttonStyle().Render("[ " + models.ButtonLabel + " ]")
	if m.focus == focusButton {
		button = focusedButtonStyle().Render("[ " + models.ButtonLabel + " ]")
	}
	field := "|" + m.input.View() + "|"

	sb.WriteString(flow([]string{button, field, m.state.Display()}, m.width))
	sb.WriteString("\n\n")
	sb.WriteString(hintStyle().Render("Tab: focus  Enter: activate  F1: help  Esc: close"))

	return sb.String()
}

// flow joins items left to right with a single space, wrapping to a new line
// when the next item would exceed width. A width of zero never wraps.
func flow(items []string, width int) string {
	var lines []string
	var current []string
	used := 0

	for _, item := range items {
		w := lipgloss.Width(item)
		if len(current) > 0 && width > 0 && used+1+w > width {
			lines = append(lines, strings.Join(current, " "))
			current = nil
			used = 0
		}
		if len(current) > 0 {
			used++
		}
		used += w
		current = append(current, item)
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return strings.Join(lines, "\n")
}

// staticView adapts pre-rendered text to tea.Model for the overlay
type staticView string

func (s staticView) Init() tea.Cmd                       { return nil }
func (s staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return s, nil }
func (s staticView) View() string                        { return string(s) }

type helpView struct{}

func (h helpView) Init() tea.Cmd                       { return nil }
func (h helpView) Update(tea.Msg) (tea.Model, tea.Cmd) { return h, nil }

func (h helpView) View() string {
	var sb strings.Builder
	sb.WriteString("Keys\n\n")
	sb.WriteString("Tab / Shift+Tab  move focus\n")
	sb.WriteString("Enter / Space    press the button\n")
	sb.WriteString("F1 / Esc         close this help\n")
	sb.WriteString("Esc / Ctrl+C     close the form")
	return helpBoxStyle().Render(sb.String())
}

// Run starts the terminal form and blocks until it is closed
func Run(logger *logging.Logger, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewFormModel(logger), opts...).Run()
	return err
}
