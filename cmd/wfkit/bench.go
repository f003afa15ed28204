package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/wfkit/internal/bench"
	"github.com/nao1215/wfkit/internal/config"
)

// NewBenchCmd creates the bench command.
func NewBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark Alfred scripting bridge call strategies",
		Long: `Bench times three strategies for setting workflow configuration values
through Alfred's JXA scripting bridge:

  single     one osascript process per value
  batch      one process; the script binds the Alfred handle once
  batch-alt  one process; independent statements joined by newlines

Each enabled strategy runs a fixed number of repetitions. Per-repetition
timings and the final summary go to standard error.

The benchmark genuinely writes configuration values into the target
workflow (scoped by --bundle-id); that is the cost of timing the real
call path.

Examples:
  # Default run: 5 reps, 5 values, all strategies
  wfkit bench

  # Compare only the batch strategies with a bigger payload
  wfkit bench --single=false --values 50

  # Target a different workflow
  wfkit bench --bundle-id com.example.myworkflow`,
		Args: cobra.NoArgs,
		RunE: runBenchCmd,
	}

	cmd.Flags().IntP("reps", "r", config.DefaultReps,
		"Repetitions per strategy")
	cmd.Flags().IntP("values", "n", config.DefaultValues,
		"Configuration values set per repetition")
	cmd.Flags().Bool("single", true,
		"Enable the one-process-per-value strategy")
	cmd.Flags().Bool("batch", true,
		"Enable the shared-handle batch strategy")
	cmd.Flags().Bool("batch-alt", true,
		"Enable the independent-statement batch strategy")
	cmd.Flags().StringP("bundle-id", "b", config.DefaultBundleID,
		"Workflow bundle identifier to write values into")
	cmd.Flags().String("interpreter", config.OsascriptPath,
		"Path to the osascript interpreter")

	return cmd
}

// runBenchCmd executes the bench command.
func runBenchCmd(cmd *cobra.Command, _ []string) error {
	cfg, interpreter, err := buildBenchConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.ValidateBench(); err != nil {
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

	runner := bench.NewOsascriptRunner(
		bench.WithInterpreterPath(interpreter),
		bench.WithRunnerLogger(logger),
	)

	b := bench.New(runner,
		bench.WithReps(cfg.Reps),
		bench.WithValues(cfg.Values),
		bench.WithBundleID(cfg.BundleID),
		bench.WithLogger(logger),
	)

	report, err := b.Run(ctx, cfg.Single, cfg.Batch, cfg.BatchAlt)
	if err != nil {
		return err
	}

	if summary := report.SummaryLine(); summary != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), summary)
	}

	return nil
}

// buildBenchConfig creates a Config from bench command flags.
// The interpreter path is returned separately; it configures the runner,
// not the benchmark itself.
func buildBenchConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.Reps, err = cmd.Flags().GetInt("reps")
	if err != nil {
		return nil, "", err
	}

	cfg.Values, err = cmd.Flags().GetInt("values")
	if err != nil {
		return nil, "", err
	}

	cfg.Single, err = cmd.Flags().GetBool("single")
	if err != nil {
		return nil, "", err
	}

	cfg.Batch, err = cmd.Flags().GetBool("batch")
	if err != nil {
		return nil, "", err
	}

	cfg.BatchAlt, err = cmd.Flags().GetBool("batch-alt")
	if err != nil {
		return nil, "", err
	}

	cfg.BundleID, err = cmd.Flags().GetString("bundle-id")
	if err != nil {
		return nil, "", err
	}

	interpreter, err := cmd.Flags().GetString("interpreter")
	if err != nil {
		return nil, "", err
	}

	return cfg, interpreter, nil
}
