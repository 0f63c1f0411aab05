package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zamm-dev/navedit/internal/cli"
	"github.com/zamm-dev/navedit/internal/models"
)

func main() {
	app, err := cli.NewApp()
	if err != nil {
		handleError(err)
		os.Exit(getExitCode(err))
	}

	rootCmd := app.CreateRootCommand()
	err = rootCmd.Execute()
	_ = app.Close()
	if err != nil {
		handleError(err)
		os.Exit(getExitCode(err))
	}
}

// handleError prints error messages in a user-friendly format
func handleError(err error) {
	var navErr *models.NavError
	if errors.As(err, &navErr) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", navErr.Message)
		if navErr.Details != "" {
			fmt.Fprintf(os.Stderr, "Details: %s\n", navErr.Details)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}

// getExitCode returns appropriate exit code based on error type
func getExitCode(err error) int {
	var navErr *models.NavError
	if errors.As(err, &navErr) {
		switch navErr.Type {
		case models.ErrTypeValidation, models.ErrTypeNotFound, models.ErrTypeConflict:
			return 1 // User error
		default:
			return 2
		}
	}
	return 2 // Default to system error
}
