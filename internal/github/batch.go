package github

import (
	"context"

	"github.com/nao1215/wfkit/internal/model"
	"golang.org/x/sync/errgroup"
)

// FetchTopics fetches several topics and merges their results into one
// catalog, deduplicated by owner/name with earlier topics taking
// precedence.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it is simpler and handles the concurrency limit correctly.
// Each topic gets its own goroutine running a normal sequential
// FetchRepos; only the topics are concurrent, never the pages within
// one. The first failing topic cancels the rest and the whole fetch
// fails with its error, matching the fail-fast contract of a single
// fetch.
func (c *Client) FetchTopics(ctx context.Context, topics []string, limit int) (*model.FetchResult, error) {
	if len(topics) == 1 {
		return c.FetchRepos(ctx, topics[0])
	}

	if limit <= 0 {
		limit = 1
	}

	// Results are collected per-slot so merge order matches the order
	// topics were given, regardless of completion order.
	results := make([]*model.FetchResult, len(topics))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, topic := range topics {
		g.Go(func() error {
			result, err := c.FetchRepos(gctx, topic)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := results[0]
	for _, result := range results[1:] {
		merged.Merge(result)
	}

	return merged, nil
}
