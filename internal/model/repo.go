package model

import (
	"time"
)

// Repo is a normalized GitHub repository record as written to the catalog.
//
// Design decision: Fields are declared in alphabetical order of their JSON
// keys. encoding/json emits struct fields in declaration order, so this is
// what guarantees the output contract of sorted object keys without a
// custom marshaler.
type Repo struct {
	// Description is the repository description. May be empty; the GitHub
	// API returns null for repositories without one.
	Description string `json:"description"`

	// Lang is the primary programming language. Empty string when GitHub
	// has not detected one.
	Lang string `json:"lang"`

	// Name is the repository name without the owner prefix.
	Name string `json:"name"`

	// Owner is the GitHub login of the repository owner.
	Owner string `json:"owner"`

	// Stars is the stargazer count at fetch time.
	Stars int64 `json:"stars"`

	// Topics are the repository topic labels in the order the API returned
	// them. Never nil: a repository without topics has an empty slice so
	// the serialized record always carries a "topics" array.
	Topics []string `json:"topics"`

	// URL is the canonical web URL (html_url) of the repository.
	URL string `json:"url"`
}

// FullName returns the standard "owner/name" identifier.
func (r *Repo) FullName() string {
	return r.Owner + "/" + r.Name
}

// FetchResult is the complete outcome of one catalog fetch.
// It is produced once per run and handed to report writers and the
// catalog database as a unit.
type FetchResult struct {
	// Topic is the GitHub topic that was searched for.
	Topic string `json:"topic"`

	// TotalCount is the total_count reported by the first page of results.
	// Later pages are trusted to agree with it; they are never re-checked.
	TotalCount int `json:"total_count"`

	// Pages is the number of pages that were fetched.
	Pages int `json:"pages"`

	// FetchedAt is the timestamp when the fetch completed.
	FetchedAt time.Time `json:"fetched_at"`

	// Repos holds the normalized records in API order.
	Repos []Repo `json:"repos"`
}

// Merge combines another fetch result into this one, skipping repositories
// already present. Deduplication is by FullName; the first occurrence wins,
// so the order of merged topics determines precedence.
func (f *FetchResult) Merge(other *FetchResult) {
	seen := make(map[string]bool, len(f.Repos))
	for i := range f.Repos {
		seen[f.Repos[i].FullName()] = true
	}

	for i := range other.Repos {
		repo := other.Repos[i]
		if seen[repo.FullName()] {
			continue
		}
		seen[repo.FullName()] = true
		f.Repos = append(f.Repos, repo)
	}

	f.TotalCount += other.TotalCount
	f.Pages += other.Pages
}
