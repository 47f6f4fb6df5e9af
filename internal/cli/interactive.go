package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/zamm-dev/interaccion-usuario/internal/tui"
)

// createTerminalCommand creates the terminal form command
func (a *App) createTerminalCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"terminal"},
		Short:   "Run the form in the terminal",
		Long:    "Start the same form inside the terminal. Tab moves focus, Enter presses the button, Esc closes.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Infof("starting terminal form")
			return tui.Run(a.logger, tea.WithAltScreen())
		},
	}
}
