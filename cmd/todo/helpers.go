package main

import (
	"errors"
	"log"
	"os"

	"github.com/todokata/todoapi/internal/config"
	"github.com/todokata/todoapi/pkg/todoapi"
)

// configError marks failures to resolve settings or build a client from them.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// getClient creates a client from the resolved config and global flags
func getClient() (*todoapi.Client, error) {
	cfg, err := config.ResolveConfig(config.Overrides{BaseURL: baseURL, Timeout: timeout})
	if err != nil {
		return nil, &configError{err}
	}

	c, err := todoapi.NewClient(cfg.ClientOptions(requestLogger())...)
	if err != nil {
		return nil, &configError{err}
	}
	return c, nil
}

// requestLogger returns the logger for --verbose, or nil.
func requestLogger() *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(os.Stderr, "[todo] ", log.LstdFlags)
}

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cfgErr *configError
	switch {
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case todoapi.IsNetworkError(err):
		return ExitNetworkError
	case todoapi.IsItemNotFound(err):
		return ExitTaskNotFound
	case todoapi.IsUnknownError(err):
		return ExitUnknownStatus
	case todoapi.IsDecodingError(err):
		return ExitDecodingError
	default:
		return ExitGeneralError
	}
}

// handleError handles an error by printing it and exiting with the appropriate code
func handleError(err error) {
	if err == nil {
		return
	}

	printError(os.Stderr, err, jsonOutput)
	os.Exit(mapErrorToExitCode(err))
}
