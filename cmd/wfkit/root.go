// Package main provides the entry point for the wfkit CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	wflog "github.com/nao1215/wfkit/internal/log"
)

// NewRootCmd creates the root command for wfkit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wfkit",
		Short: "Developer tooling for the Alfred workflow ecosystem",
		Long: `wfkit is developer tooling for the Alfred workflow ecosystem.

It benchmarks strategies for driving Alfred's scripting bridge (bench)
and builds a catalog of workflow repositories tagged on GitHub (fetch).

All progress and summary output goes to standard error; standard output
stays clean for piping.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewBenchCmd())
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
// Progress lines are the product of both commands, so the default level
// is Info; verbose drops to Debug. The secure handler masks any GitHub
// credential that reaches a log call.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := wflog.NewSecureHandler(slog.NewTextHandler(os.Stderr, opts))
	return slog.New(handler)
}
