package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/wfkit/internal/config"
	"github.com/nao1215/wfkit/internal/model"
)

// Strategy names as they appear in results and the summary line.
const (
	StrategySingle   = "single"
	StrategyBatch    = "batch"
	StrategyBatchAlt = "batch-alt"
)

// Benchmark times the enabled scripting bridge strategies.
// One Benchmark runs once; create a new one for another run.
type Benchmark struct {
	// runner executes script payloads.
	runner Runner

	// logger receives per-repetition timing lines.
	logger *slog.Logger

	// reps is the number of repetitions per strategy.
	reps int

	// values is the number of configuration values set per repetition.
	values int

	// bundleID scopes the configuration writes to one workflow.
	bundleID string

	// invocations counts runner calls for the strategy in progress.
	invocations int
}

// BenchOption configures a Benchmark.
type BenchOption func(*Benchmark)

// WithReps sets the repetition count per strategy.
func WithReps(reps int) BenchOption {
	return func(b *Benchmark) {
		b.reps = reps
	}
}

// WithValues sets how many configuration values each repetition sets.
func WithValues(values int) BenchOption {
	return func(b *Benchmark) {
		b.values = values
	}
}

// WithBundleID sets the target workflow bundle identifier.
func WithBundleID(bundleID string) BenchOption {
	return func(b *Benchmark) {
		b.bundleID = bundleID
	}
}

// WithLogger sets the logger for timing output.
func WithLogger(logger *slog.Logger) BenchOption {
	return func(b *Benchmark) {
		b.logger = logger
	}
}

// New creates a Benchmark that drives the given runner.
func New(runner Runner, opts ...BenchOption) *Benchmark {
	b := &Benchmark{
		runner:   runner,
		reps:     config.DefaultReps,
		values:   config.DefaultValues,
		bundleID: config.DefaultBundleID,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// Run executes the enabled strategies in fixed order (single, batch,
// batch-alt) and returns their accumulated timings. The first runner
// failure aborts the whole run; no result is reported for a strategy
// that did not complete all repetitions.
func (b *Benchmark) Run(ctx context.Context, single, batch, batchAlt bool) (*model.BenchReport, error) {
	report := &model.BenchReport{}

	strategies := []struct {
		name    string
		enabled bool
		fn      func(context.Context) error
	}{
		{name: StrategySingle, enabled: single, fn: b.runSingle},
		{name: StrategyBatch, enabled: batch, fn: b.runBatch},
		{name: StrategyBatchAlt, enabled: batchAlt, fn: b.runBatchAlt},
	}

	for _, s := range strategies {
		if !s.enabled {
			continue
		}

		result, err := b.runStrategy(ctx, s.name, s.fn)
		if err != nil {
			return nil, fmt.Errorf("benchmark %s: %w", s.name, err)
		}
		report.Results = append(report.Results, *result)
	}

	return report, nil
}

// runStrategy times reps repetitions of one strategy.
// Each repetition is wrapped in a scoped Timer whose "took" line is
// emitted even when the repetition fails partway through.
func (b *Benchmark) runStrategy(ctx context.Context, name string, fn func(context.Context) error) (*model.StrategyResult, error) {
	b.invocations = 0

	result := &model.StrategyResult{
		Name:   name,
		Reps:   b.reps,
		Values: b.values,
	}

	for rep := 0; rep < b.reps; rep++ {
		elapsed, err := b.timedRep(ctx, name, fn)
		result.Total += elapsed
		if err != nil {
			return nil, err
		}
	}

	result.Invocations = b.invocations

	return result, nil
}

// timedRep runs one repetition under a scoped timer.
func (b *Benchmark) timedRep(ctx context.Context, name string, fn func(context.Context) error) (elapsed time.Duration, err error) {
	timer := StartTimer(b.logger, fmt.Sprintf("%s (%d values)", name, b.values))
	defer func() {
		elapsed = timer.Stop()
	}()

	err = fn(ctx)
	return
}

// invoke runs one payload through the runner, counting the invocation.
func (b *Benchmark) invoke(ctx context.Context, script string) error {
	b.invocations++
	return b.runner.Run(ctx, script)
}

// runSingle sets each value with its own osascript process.
func (b *Benchmark) runSingle(ctx context.Context) error {
	for _, kv := range benchPairs(b.values) {
		if err := b.invoke(ctx, SingleStatement(kv, b.bundleID)); err != nil {
			return err
		}
	}
	return nil
}

// runBatch sets all values in one process via a shared handle.
func (b *Benchmark) runBatch(ctx context.Context) error {
	return b.invoke(ctx, BatchScript(benchPairs(b.values), b.bundleID))
}

// runBatchAlt sets all values in one process via concatenated
// independent statements.
func (b *Benchmark) runBatchAlt(ctx context.Context) error {
	return b.invoke(ctx, BatchAltScript(benchPairs(b.values), b.bundleID))
}
