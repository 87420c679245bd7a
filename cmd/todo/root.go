package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "TODO service CLI",
	Long: `A CLI for the TODO REST service.

The service address comes from --base-url, then todo.toml in the current
directory or a parent, then ~/.todo/config.toml.`,
}

// Global flags
var (
	jsonOutput bool
	baseURL    string
	timeout    time.Duration
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Service base URL (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-request timeout (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitGeneralError)
	}
}
