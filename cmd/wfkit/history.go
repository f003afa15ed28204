package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/wfkit/internal/config"
	"github.com/nao1215/wfkit/internal/database"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded catalog fetch runs",
		Long: `History lists the fetch runs recorded in the catalog database,
newest first, together with the number of distinct repositories ever
seen. Runs are recorded by fetch unless --no-save was given.

Examples:
  # The ten most recent runs
  wfkit history

  # Everything recorded this month
  wfkit history --limit 100`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "l", 10, "Maximum number of runs to list")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory holding the catalog database")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	// History is a read-only view; a missing database just means no run
	// has been recorded yet.
	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false})
	if err != nil {
		return fmt.Errorf("no fetch history recorded yet: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	records, err := db.RecentFetches(ctx, limit)
	if err != nil {
		return err
	}

	total, err := db.RepoCount(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, rec := range records {
		fmt.Fprintf(out, "%s  %-24s  %d repos  %d pages\n",
			rec.FetchedAt.Format("2006-01-02 15:04"), rec.Topic, rec.RepoCount, rec.Pages)
	}
	fmt.Fprintf(out, "%d distinct repositories recorded\n", total)

	return nil
}
