// Package github implements the GitHub repository search client.
//
// The client enumerates every page of the search API for repositories
// carrying a topic and normalizes the results into model.Repo records.
// Pagination within one topic is strictly sequential: the next page is
// requested only after the previous one has been decoded. When several
// topics are requested, each topic runs as its own sequential fetch and
// the topics are batched with a bounded errgroup.
//
// The page count is computed once from the first page's total_count and
// trusted for the remainder of the run. Later pages' total_count fields
// are ignored, so a count that changes mid-run (new repositories tagged
// while we fetch) can truncate or pad the final page. That is accepted:
// the catalog is a snapshot, not a ledger.
package github
