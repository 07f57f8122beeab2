// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "release-notes",
	Short: "A CLI tool to generate release-notes pages from merged pull requests.",
	Long: `release-notes aggregates merged pull requests across the configured
repositories, condenses each one into a single display line, and renders a
versioned release-notes page plus its navigation entry.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Tokens usually live in a local .env during development.
	cobra.OnInitialize(func() { _ = godotenv.Load() })

	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
