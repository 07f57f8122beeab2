// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/revivehq/release-notes/internal/config"
	"github.com/revivehq/release-notes/internal/docs"
	"github.com/revivehq/release-notes/internal/domain"
	"github.com/revivehq/release-notes/internal/gateway"
	"github.com/revivehq/release-notes/internal/summary"
	"github.com/revivehq/release-notes/internal/usecase"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a release-notes page from merged pull requests",
	Long: `Fetches the pull requests merged into every configured repository since
the given date, condenses each into one line, and writes a versioned
release-notes page. With --from-file the pull requests are read from a
JSON fixture instead of the GitHub API.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		configPath, _ := cmd.Flags().GetString("config")
		version, _ := cmd.Flags().GetString("version")
		sinceStr, _ := cmd.Flags().GetString("since")
		fromFile, _ := cmd.Flags().GetString("from-file")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}

		since := time.Now().AddDate(0, 0, -14)
		if sinceStr != "" {
			const inputDateLayout = "2006/01/02"
			since, err = time.Parse(inputDateLayout, sinceStr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid --since date format. Please use YYYY/MM/DD. Error: %v\n", err)
				os.Exit(1)
			}
		}

		opts := usecase.Options{
			Org:              cfg.Org,
			Repositories:     cfg.Repositories,
			MaxSummaryLength: cfg.MaxSummaryLength,
			HighlightCount:   cfg.HighlightCount,
			Summary: summary.Options{
				ItemCap:         cfg.SummaryItemCap,
				SectionCap:      cfg.SummarySectionCap,
				DedupeFixPrefix: cfg.DedupeFixPrefix,
			},
		}

		var body string
		if fromFile != "" {
			// Fixture-driven run: no token and no network required.
			records, err := readRecords(fromFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to read fixture: %v\n", err)
				os.Exit(1)
			}
			if version == "" {
				fmt.Fprintln(os.Stderr, "Error: --version is required with --from-file.")
				os.Exit(1)
			}
			pipeline := usecase.NewPipeline(opts, nil, logger)
			body = pipeline.Render(version, records)
		} else {
			if cfg.Token == "" {
				fmt.Fprintln(os.Stderr, "Error: GITHUB_TOKEN environment variable is not set.")
				os.Exit(1)
			}
			githubGateway, err := gateway.NewGitHubGateway(cfg.Token, logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
				os.Exit(1)
			}
			if version == "" {
				// Fall back to the most recent release tag of the lead repository.
				version, err = githubGateway.FetchLatestReleaseTag(ctx, cfg.Org, cfg.Repositories[0])
				if err != nil {
					fmt.Fprintf(os.Stderr, "Failed to derive version from latest release: %v\n", err)
					os.Exit(1)
				}
			}
			pipeline := usecase.NewPipeline(opts, githubGateway, logger)
			body, err = pipeline.Generate(ctx, version, since)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to generate release notes: %v\n", err)
				os.Exit(1)
			}
		}

		if dryRun {
			fmt.Println(body)
			return
		}

		writer := docs.NewWriter(logger)
		path, err := writer.WritePage(cfg.DocsDir, version, body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write release page: %v\n", err)
			os.Exit(1)
		}
		if err := writer.UpdateNavigation(cfg.NavigationPath, cfg.NavigationGroup, "release-notes/"+version); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to update navigation: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
	},
}

func readRecords(path string) ([]domain.PullRequestRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []domain.PullRequestRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("config", "c", "release-notes.yaml", "Path to the YAML configuration file")
	generateCmd.Flags().String("version", "", "Version label for the release page (default: latest release tag)")
	generateCmd.Flags().String("since", "", "Only include PRs merged on or after this date (YYYY/MM/DD)")
	generateCmd.Flags().String("from-file", "", "Read pull requests from a JSON fixture instead of the GitHub API")
	generateCmd.Flags().Bool("dry-run", false, "Print the document to stdout instead of writing files")
}
