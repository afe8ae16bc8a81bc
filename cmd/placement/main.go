// Package main provides the entry point for the placement CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "placement",
	Short: "Placement Suite career-prep CLI",
	Long: "Placement Suite scores job listings against your preferences, builds a frozen daily digest, " +
		"analyzes job descriptions into a readiness plan, scores your resume for ATS completeness, " +
		"and tracks applications through the hiring pipeline.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupApp,
}

var (
	rootConfigPath string
	rootStore      string
	rootStorePath  string
	rootCatalog    string
	rootLogLevel   string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootConfigPath, "config", "", "Path to a JSON or YAML config file")
	flags.StringVar(&rootStore, "store", "", "State backend: sqlite, memory or postgres")
	flags.StringVar(&rootStorePath, "store-path", "", "SQLite database file")
	flags.StringVar(&rootCatalog, "catalog", "", "Path to the job catalog (JSON or YAML)")
	flags.StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	closeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
