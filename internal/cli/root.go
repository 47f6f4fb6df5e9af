package cli

import (
	"github.com/spf13/cobra"
)

// CreateRootCommand creates the root command for the CLI
func (a *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "interaccion",
		Short: "Interacción Usuario - a one-button desktop form",
		Long:  "Opens a window with a button, a text field and a label. Clicking the button copies the field into the label.",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDesktop()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default ~/.interaccion/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(a.createTerminalCommand())
	rootCmd.AddCommand(a.createConfigCommand())
	rootCmd.AddCommand(a.createVersionCommand())

	return rootCmd
}
