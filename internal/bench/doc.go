// Package bench implements the Alfred scripting bridge micro-benchmark.
//
// Alfred exposes a JXA (JavaScript for Automation) API for setting
// workflow configuration values. Each call to the bridge pays the cost
// of launching /usr/bin/osascript, so a workflow that sets many values
// should care whether those calls can be batched. The benchmark compares
// three payload strategies:
//
//   - single: one osascript process per value
//   - batch: one process running a script that binds the Alfred
//     application handle once and reuses it for every value
//   - batch-alt: one process running independently generated statements
//     concatenated with newlines, each re-resolving the application
//
// The bridge genuinely mutates the target workflow's configuration as a
// byproduct of timing. That is intentional: a no-op payload would not
// measure the real call path.
//
// Execution is strictly sequential. A non-zero exit from osascript
// aborts the whole run with no partial summary.
package bench
