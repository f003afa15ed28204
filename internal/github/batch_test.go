package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// topicServer serves one fixed repo per topic, keyed by the q parameter.
func topicServer(t *testing.T, repos map[string][]map[string]any) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		topic := r.URL.Query().Get("q")
		items := repos[topic]

		if err := json.NewEncoder(w).Encode(map[string]any{
			"total_count": len(items),
			"items":       items,
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
}

// TestFetchTopics tests the multi-topic merge path.
func TestFetchTopics(t *testing.T) {
	t.Parallel()

	repo := func(name string) map[string]any {
		return map[string]any{
			"name":     name,
			"owner":    map[string]any{"login": "tester"},
			"html_url": "https://github.com/tester/" + name,
		}
	}

	t.Run("single topic takes the sequential path", func(t *testing.T) {
		t.Parallel()

		srv := topicServer(t, map[string][]map[string]any{
			"topic:alfred-workflow": {repo("one")},
		})
		defer srv.Close()

		client := NewClient(WithBaseURL(srv.URL))
		result, err := client.FetchTopics(context.Background(), []string{"alfred-workflow"}, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(result.Repos) != 1 {
			t.Fatalf("expected 1 repo, got %d", len(result.Repos))
		}
		if result.Topic != "alfred-workflow" {
			t.Errorf("expected topic preserved, got %q", result.Topic)
		}
	})

	t.Run("topics merge in given order with dedup", func(t *testing.T) {
		t.Parallel()

		srv := topicServer(t, map[string][]map[string]any{
			"topic:alfred-workflow": {repo("one"), repo("shared")},
			"topic:alfred":          {repo("shared"), repo("two")},
		})
		defer srv.Close()

		client := NewClient(WithBaseURL(srv.URL))
		result, err := client.FetchTopics(context.Background(),
			[]string{"alfred-workflow", "alfred"}, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(result.Repos) != 3 {
			t.Fatalf("expected 3 deduplicated repos, got %d", len(result.Repos))
		}
		if result.Repos[0].Name != "one" {
			t.Errorf("expected first topic's repos first, got %q", result.Repos[0].Name)
		}
	})

	t.Run("failing topic fails the whole fetch", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("q") == "topic:broken" {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{"total_count": 0, "items": []}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client := NewClient(WithBaseURL(srv.URL))
		_, err := client.FetchTopics(context.Background(),
			[]string{"alfred-workflow", "broken"}, 2)
		if err == nil {
			t.Fatal("expected error when one topic fails")
		}
	})
}
