package database

import (
	"context"
	"testing"
	"time"

	"github.com/nao1215/wfkit/internal/model"
)

// testResult creates a fetch result with the given repos for testing.
func testResult(topic string, repos ...model.Repo) *model.FetchResult {
	return &model.FetchResult{
		Topic:      topic,
		TotalCount: len(repos),
		Pages:      1,
		FetchedAt:  time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
		Repos:      repos,
	}
}

// TestOpen tests database creation behavior.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database when allowed", func(t *testing.T) {
		t.Parallel()

		cdb, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cdb.Close()
	})

	t.Run("fails when database missing and creation disabled", func(t *testing.T) {
		t.Parallel()

		opts := Options{CreateIfNotExists: false}
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})
}

// TestSaveFetch tests recording runs and upserting repositories.
func TestSaveFetch(t *testing.T) {
	t.Parallel()

	t.Run("records run and repos", func(t *testing.T) {
		t.Parallel()

		cdb, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer cdb.Close()

		ctx := context.Background()
		result := testResult("alfred-workflow",
			model.Repo{Name: "one", Owner: "alice", URL: "https://github.com/alice/one",
				Stars: 10, Topics: []string{"alfred-workflow"}},
			model.Repo{Name: "two", Owner: "bob", URL: "https://github.com/bob/two",
				Stars: 5, Topics: []string{}},
		)

		fetchID, err := cdb.SaveFetch(ctx, result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fetchID == 0 {
			t.Error("expected non-zero fetch ID")
		}

		count, err := cdb.RepoCount(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 repos, got %d", count)
		}
	})

	t.Run("upsert updates stars and keeps one row", func(t *testing.T) {
		t.Parallel()

		cdb, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer cdb.Close()

		ctx := context.Background()
		repo := model.Repo{Name: "one", Owner: "alice",
			URL: "https://github.com/alice/one", Stars: 10, Topics: []string{"a"}}

		if _, err := cdb.SaveFetch(ctx, testResult("alfred-workflow", repo)); err != nil {
			t.Fatalf("first save failed: %v", err)
		}

		repo.Stars = 42
		repo.Topics = []string{"a", "b"}
		if _, err := cdb.SaveFetch(ctx, testResult("alfred-workflow", repo)); err != nil {
			t.Fatalf("second save failed: %v", err)
		}

		count, err := cdb.RepoCount(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 repo after upsert, got %d", count)
		}

		got, err := cdb.GetRepo(ctx, "alice/one")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Stars != 42 {
			t.Errorf("expected updated stars 42, got %d", got.Stars)
		}
		if len(got.Topics) != 2 {
			t.Errorf("expected updated topics, got %v", got.Topics)
		}
	})
}

// TestRecentFetches tests history queries.
func TestRecentFetches(t *testing.T) {
	t.Parallel()

	cdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer cdb.Close()

	ctx := context.Background()

	first := testResult("alfred-workflow")
	first.FetchedAt = time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)
	second := testResult("alfred")
	second.FetchedAt = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	if _, err := cdb.SaveFetch(ctx, first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if _, err := cdb.SaveFetch(ctx, second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	records, err := cdb.RecentFetches(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Topic != "alfred" {
		t.Errorf("expected newest fetch first, got %q", records[0].Topic)
	}

	limited, err := cdb.RecentFetches(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected limit respected, got %d records", len(limited))
	}
}

// TestGetRepoMissing verifies lookups for unknown repositories fail.
func TestGetRepoMissing(t *testing.T) {
	t.Parallel()

	cdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer cdb.Close()

	if _, err := cdb.GetRepo(context.Background(), "nobody/nothing"); err == nil {
		t.Error("expected error for unknown repo")
	}
}
