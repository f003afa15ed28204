package bench

import (
	"fmt"
	"log/slog"
	"time"
)

// Timer measures one scoped section of work and logs its duration
// exactly once. Callers defer Stop immediately after StartTimer so the
// "took" line is emitted on both normal and error exit paths; explicit
// early Stop calls are harmless because Stop is idempotent.
type Timer struct {
	title   string
	start   time.Time
	logger  *slog.Logger
	elapsed time.Duration
	stopped bool
}

// StartTimer begins timing a titled section.
func StartTimer(logger *slog.Logger, title string) *Timer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Timer{
		title:  title,
		start:  time.Now(),
		logger: logger,
	}
}

// Stop ends the measurement, logs the duration, and returns it.
// Subsequent calls return the original duration without logging again.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return t.elapsed
	}
	t.stopped = true
	t.elapsed = time.Since(t.start)

	t.logger.Info(fmt.Sprintf("%s took %0.3fs", t.title, t.elapsed.Seconds()))

	return t.elapsed
}
