package bench

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/nao1215/wfkit/internal/config"
)

// Runner executes one scripting bridge payload.
//
// Design decision: The benchmark drives everything through this
// interface rather than calling osascript directly so that tests can
// count invocations and inject failures without macOS or a running
// Alfred.
type Runner interface {
	// Run executes the script and blocks until the process exits.
	// A non-zero exit returns an error carrying the process stderr.
	Run(ctx context.Context, script string) error
}

// OsascriptRunner invokes the macOS scripting bridge interpreter with
// the fixed three-argument form: language selector flag, inline script.
type OsascriptRunner struct {
	// path is the interpreter location, normally config.OsascriptPath.
	path string

	// logger receives per-invocation debug output.
	logger *slog.Logger
}

// OsascriptOption configures an OsascriptRunner.
type OsascriptOption func(*OsascriptRunner)

// WithInterpreterPath overrides the osascript location. Used by
// integration tests that substitute a stub executable.
func WithInterpreterPath(path string) OsascriptOption {
	return func(r *OsascriptRunner) {
		r.path = path
	}
}

// WithRunnerLogger sets the logger for invocation output.
func WithRunnerLogger(logger *slog.Logger) OsascriptOption {
	return func(r *OsascriptRunner) {
		r.logger = logger
	}
}

// NewOsascriptRunner creates a runner for the system osascript.
func NewOsascriptRunner(opts ...OsascriptOption) *OsascriptRunner {
	r := &OsascriptRunner{
		path: config.OsascriptPath,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Run executes the script via osascript -l JavaScript -e <script>.
func (r *OsascriptRunner) Run(ctx context.Context, script string) error {
	cmd := exec.CommandContext(ctx, r.path, "-l", "JavaScript", "-e", script)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	r.logger.Debug("invoking scripting bridge",
		"interpreter", r.path,
		"script_bytes", len(script),
	)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("osascript failed: %w (stderr: %s)", err, stderr.String())
	}

	return nil
}
