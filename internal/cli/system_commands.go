package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zamm-dev/interaccion-usuario/internal/config"
)

// Version is overridden at build time with -ldflags "-X .../internal/cli.Version=..."
var Version = "v0.1.0"

// createConfigCommand creates the config command group
func (a *App) createConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// a broken config file must not block rewriting it
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.WriteDefaultConfig(a.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !created {
				fmt.Fprintf(out, "Config file already exists: %s\n", path)
				return nil
			}
			fmt.Fprintf(out, "Config file: %s\n", path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				var err error
				if path, err = config.GetConfigPath(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return configCmd
}

// createVersionCommand creates the version command
func (a *App) createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Interacción Usuario %s\n", Version)
		},
	}
}
