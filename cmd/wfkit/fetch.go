package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/wfkit/internal/config"
	"github.com/nao1215/wfkit/internal/database"
	"github.com/nao1215/wfkit/internal/github"
	"github.com/nao1215/wfkit/internal/model"
	"github.com/nao1215/wfkit/internal/report"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the GitHub catalog of Alfred workflow repositories",
		Long: `Fetch enumerates every page of GitHub's repository search for a topic
and writes the normalized results as a JSON array (keys sorted, two-space
indent). Progress and the completion summary go to standard error.

The fetch fails fast: any non-success HTTP status aborts the run before
the output file is touched. Successful fetches are also recorded in the
catalog history database unless --no-save is given.

A .wfkit file in the current or home directory may provide a GitHub API
token (github.token), which raises the search rate limit:

  github:
    token: <your token>
  fetch:
    topic: alfred-workflow
    output: workflows.json

Examples:
  # Default run: topic alfred-workflow, output workflows.json
  wfkit fetch

  # Merge two topics, deduplicated by repository
  wfkit fetch -t alfred-workflow -t alfred

  # Write a Markdown catalog summary instead of JSON
  wfkit fetch --markdown -o workflows.md`,
		Args: cobra.NoArgs,
		RunE: runFetchCmd,
	}

	cmd.Flags().StringArrayP("topic", "t", nil,
		fmt.Sprintf("GitHub topic to search for (repeatable; default %q)", config.DefaultTopic))
	cmd.Flags().StringP("output", "o", "",
		fmt.Sprintf("Output file path (default %q)", config.DefaultOutput))
	cmd.Flags().BoolP("markdown", "m", false,
		"Write a Markdown catalog summary instead of the JSON array")
	cmd.Flags().String("api-url", github.DefaultBaseURL,
		"Search API endpoint (for GitHub Enterprise)")
	cmd.Flags().Duration("timeout", config.DefaultTimeout,
		"Per-request timeout")
	cmd.Flags().Int("batch", config.DefaultBatchSize,
		"Number of topics fetched concurrently")
	cmd.Flags().Bool("no-save", false,
		"Skip recording the fetch in the catalog history database")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wfkit in current or home directory)")

	return cmd
}

// runFetchCmd executes the fetch command.
func runFetchCmd(cmd *cobra.Command, _ []string) error {
	cfg, apiURL, err := buildFetchConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.ValidateFetch(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runFetch(ctx, cfg, apiURL, logger)
}

// runFetch executes the fetch.
func runFetch(ctx context.Context, cfg *config.Config, apiURL string, logger *slog.Logger) error {
	client := github.NewClient(
		github.WithBaseURL(apiURL),
		github.WithToken(cfg.Token),
		github.WithTimeout(cfg.Timeout),
		github.WithLogger(logger),
	)

	result, err := client.FetchTopics(ctx, cfg.Topics, cfg.BatchSize)
	if err != nil {
		return err
	}

	// The output file is created only after the complete fetch
	// succeeded; a failed run leaves any previous catalog untouched.
	if err := writeCatalog(cfg, result); err != nil {
		return err
	}

	if cfg.SaveToDB {
		if err := saveCatalog(ctx, cfg, result, logger); err != nil {
			// History is best-effort; the output file is already on disk.
			logger.Warn("failed to record fetch history", "error", err)
		}
	}

	logger.Info(fmt.Sprintf("saved %d workflows to %s", len(result.Repos), cfg.Output))

	return nil
}

// writeCatalog writes the catalog to the configured output path.
func writeCatalog(cfg *config.Config, result *model.FetchResult) error {
	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(cfg.Output) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	var w report.Writer
	if cfg.MarkdownReport {
		w = report.NewMarkdownWriter(f)
	} else {
		w = report.NewJSONWriter(f)
	}

	// Verbose runs also print the terse summary to stderr alongside the
	// file; stdout stays clean either way.
	if cfg.Verbose {
		w = report.NewMultiWriter(w, report.NewSimpleWriter(os.Stderr))
	}

	if _, err := w.Write(result); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	return f.Close()
}

// saveCatalog records the fetch in the history database.
func saveCatalog(ctx context.Context, cfg *config.Config, result *model.FetchResult, logger *slog.Logger) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	fetchID, err := db.SaveFetch(ctx, result)
	if err != nil {
		return err
	}

	logger.Debug("fetch recorded", "fetch_id", fetchID, "db_dir", cfg.DBDir)

	return nil
}

// buildFetchConfig creates a Config from fetch command flags and the
// optional config file. File values apply first so explicit flags win.
func buildFetchConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := configPath != ""
	foundPath := config.FindConfigFile(configPath)

	if foundPath != "" {
		cf, err := config.LoadConfigFile(foundPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config file %s: %w", foundPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, "", fmt.Errorf("configuration file not found: %s", configPath)
	}

	if cmd.Flags().Changed("topic") {
		cfg.Topics, err = cmd.Flags().GetStringArray("topic")
		if err != nil {
			return nil, "", err
		}
	}

	if cmd.Flags().Changed("output") {
		cfg.Output, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, "", err
		}
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, "", err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, "", err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, "", err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, "", err
	}
	cfg.SaveToDB = !noSave

	apiURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		return nil, "", err
	}

	return cfg, apiURL, nil
}
