package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zamm-dev/interaccion-usuario/internal/cli"
	"github.com/zamm-dev/interaccion-usuario/internal/models"
)

func main() {
	app := cli.NewApp()

	rootCmd := app.CreateRootCommand()
	err := rootCmd.Execute()
	app.Close()
	if err != nil {
		handleError(err)
		os.Exit(getExitCode(err))
	}
}

// handleError prints error messages in a user-friendly format
func handleError(err error) {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", appErr.Message)
		if appErr.Details != "" {
			fmt.Fprintf(os.Stderr, "Details: %s\n", appErr.Details)
		}
		if appErr.Cause != nil {
			fmt.Fprintf(os.Stderr, "Cause: %s\n", appErr.Cause)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
	}
}

// getExitCode returns appropriate exit code based on error type
func getExitCode(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case models.ErrTypeValidation, models.ErrTypeConfig:
			return 1 // User error
		default:
			return 2
		}
	}
	return 2 // Default to system error
}
