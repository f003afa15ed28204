// Package model defines the core data structures used throughout wfkit.
//
// This package contains the following main types:
//   - Repo: A normalized GitHub repository record as persisted to output
//   - FetchResult: The complete result of one catalog fetch
//   - StrategyResult: Timing results for one benchmark strategy
//   - BenchReport: The combined result of one benchmark run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (github, bench, report, database) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
