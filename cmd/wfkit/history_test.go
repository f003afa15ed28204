package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/wfkit/internal/database"
	"github.com/nao1215/wfkit/internal/model"
)

// runHistory executes the history command against the given database dir.
func runHistory(t *testing.T, dbDir string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"history", "--db-dir", dbDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// TestHistoryCmd verifies recorded runs are listed newest first.
func TestHistoryCmd(t *testing.T) {
	t.Parallel()

	dbDir := t.TempDir()
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	result := &model.FetchResult{
		Topic:      "alfred-workflow",
		TotalCount: 1,
		Pages:      1,
		FetchedAt:  time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
		Repos: []model.Repo{
			{Name: "one", Owner: "alice", URL: "https://github.com/alice/one"},
		},
	}
	if _, err := db.SaveFetch(context.Background(), result); err != nil {
		t.Fatalf("failed to save fetch: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	output, err := runHistory(t, dbDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(output, "alfred-workflow") {
		t.Errorf("expected recorded topic in output, got:\n%s", output)
	}
	if !strings.Contains(output, "1 distinct repositories recorded") {
		t.Errorf("expected repository count line, got:\n%s", output)
	}
}

// TestHistoryCmdNoDatabase verifies a missing database is reported, not
// silently created.
func TestHistoryCmdNoDatabase(t *testing.T) {
	t.Parallel()

	_, err := runHistory(t, t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing history database")
	}
	if !strings.Contains(err.Error(), "no fetch history") {
		t.Errorf("unexpected error: %v", err)
	}
}
