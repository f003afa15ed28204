// Package report provides catalog output functionality.
//
// This package contains writers for different output formats:
//   - JSONWriter: The machine-readable catalog array (the output file)
//   - MarkdownWriter: A human-oriented catalog summary document
//   - SimpleWriter: Terse text output for terminal display
//
// Design decision: We separate report writing from the data structures
// (which are in the model package) so new output formats can be added
// without touching the core types. Writers implement the Writer
// interface, allowing them to be used interchangeably and composed for
// multi-destination output.
package report
