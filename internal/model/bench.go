package model

import (
	"fmt"
	"strings"
	"time"
)

// StrategyResult holds the accumulated timing for one benchmark strategy
// across all repetitions.
type StrategyResult struct {
	// Name identifies the strategy ("single", "batch", "batch-alt").
	Name string `json:"name"`

	// Reps is the number of repetitions that were timed.
	Reps int `json:"reps"`

	// Values is the number of configuration values set per repetition.
	Values int `json:"values"`

	// Invocations is the total number of scripting bridge processes
	// launched by this strategy across all repetitions.
	Invocations int `json:"invocations"`

	// Total is the accumulated wall-clock time across all repetitions.
	// Non-negative and monotonically increasing while a run accumulates.
	Total time.Duration `json:"total_ns"`
}

// PerRep returns the average wall-clock time per repetition.
// Returns zero when no repetitions were run.
func (s *StrategyResult) PerRep() time.Duration {
	if s.Reps == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Reps)
}

// Summary returns the one-strategy summary fragment, e.g.
// "single: 2.1s (0.412s/rep)".
func (s *StrategyResult) Summary() string {
	return fmt.Sprintf("%s: %0.1fs (%0.3fs/rep)",
		s.Name, s.Total.Seconds(), s.PerRep().Seconds())
}

// BenchReport is the combined outcome of one benchmark run.
// Results appear in execution order and contain only strategies that
// were enabled for the run.
type BenchReport struct {
	// Results holds one entry per executed strategy.
	Results []StrategyResult `json:"results"`
}

// SummaryLine joins the per-strategy summaries into the single line
// emitted at the end of a run. Empty when no strategy was enabled.
func (b *BenchReport) SummaryLine() string {
	parts := make([]string, 0, len(b.Results))
	for i := range b.Results {
		parts = append(parts, b.Results[i].Summary())
	}
	return strings.Join(parts, ", ")
}

// TotalInvocations returns the process launch count across all strategies.
func (b *BenchReport) TotalInvocations() int {
	var n int
	for i := range b.Results {
		n += b.Results[i].Invocations
	}
	return n
}
