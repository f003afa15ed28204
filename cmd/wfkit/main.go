// Package main provides the entry point for the wfkit CLI.
//
// wfkit is developer tooling for the Alfred workflow ecosystem:
// it benchmarks Alfred's scripting bridge and builds a catalog of
// workflow repositories published on GitHub.
//
// Usage:
//
//	wfkit bench
//	wfkit fetch
//
// See --help for all available options.
package main

// main is the entry point for wfkit.
func main() {
	Execute()
}
