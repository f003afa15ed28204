package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The benchmark and fetch defaults reproduce the behavior of the original
// AwGo helper scripts, so running either command without flags performs
// the historic fixed-constant run.
const (
	// DefaultReps is how many times each benchmark strategy is repeated.
	// Five repetitions smooth out scheduler noise without making a full
	// run (which launches real processes) take minutes.
	DefaultReps = 5

	// DefaultValues is how many workflow configuration values each
	// repetition sets. Five is enough to show the per-process overhead
	// difference between the strategies.
	DefaultValues = 5

	// DefaultBundleID is the workflow bundle identifier the benchmark
	// writes its throwaway configuration values into.
	DefaultBundleID = "net.deanishe.awgo"

	// OsascriptPath is the fixed location of the scripting bridge
	// interpreter on macOS. It has not moved since OS X 10.0 and there is
	// no reliable discovery mechanism, so we hard-code it.
	OsascriptPath = "/usr/bin/osascript"

	// DefaultTopic is the GitHub topic to search for.
	DefaultTopic = "alfred-workflow"

	// DefaultOutput is the catalog output path, relative to the current
	// working directory.
	DefaultOutput = "workflows.json"

	// PerPage is the fixed page size for search requests. 100 is the
	// maximum the GitHub search API allows, and the page-count formula
	// assumes it, so it is a constant rather than a flag.
	PerPage = 100

	// DefaultTimeout is the per-request timeout for the GitHub API.
	// The search endpoint normally answers in well under a second;
	// 60 seconds only guards against a wedged connection.
	DefaultTimeout = 60 * time.Second

	// DefaultBatchSize is the number of topics fetched concurrently when
	// multiple --topic flags are given. The search API rate limit is 10
	// requests per minute unauthenticated, so a small limit is kinder.
	DefaultBatchSize = 3

	// DefaultUserAgent identifies wfkit in HTTP requests. GitHub requires
	// a User-Agent header and asks that it name the calling project.
	DefaultUserAgent = "wfkit (+https://github.com/nao1215/wfkit)"

	// AppName is the application name used for XDG directory paths.
	AppName = "wfkit"
)

// Config holds all configuration options for wfkit.
// The bench and fetch commands populate and read disjoint field groups;
// Verbose is shared.
type Config struct {
	// === Benchmark options ===

	// Reps is the number of repetitions per benchmark strategy.
	Reps int

	// Values is the number of configuration values set per repetition.
	Values int

	// Single enables the one-process-per-value strategy.
	Single bool

	// Batch enables the shared-handle batch strategy.
	Batch bool

	// BatchAlt enables the independent-statement batch strategy.
	BatchAlt bool

	// BundleID is the workflow bundle identifier the benchmark targets.
	BundleID string

	// === Fetch options ===

	// Topics are the GitHub topics to search for. Each topic is fetched
	// as its own paginated run; results are merged and deduplicated.
	Topics []string

	// Output is the path the catalog JSON is written to.
	Output string

	// MarkdownReport enables Markdown catalog output instead of JSON.
	MarkdownReport bool

	// Token is an optional GitHub API token. When set it is sent as a
	// bearer Authorization header, which raises the search rate limit.
	// Loaded from the .wfkit config file, never from a flag, so it does
	// not end up in shell history.
	Token string

	// Timeout is the per-request timeout for GitHub API calls.
	Timeout time.Duration

	// BatchSize is the number of topics fetched concurrently.
	// Pagination within one topic is always sequential.
	BatchSize int

	// SaveToDB controls whether successful fetches are recorded in the
	// catalog history database under the XDG data directory.
	SaveToDB bool

	// DBDir is the directory holding the catalog history database.
	DBDir string

	// === Shared options ===

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only progress, warnings, and errors are logged.
	Verbose bool
}

// NewConfig returns a Config populated with default values.
func NewConfig() *Config {
	return &Config{
		Reps:      DefaultReps,
		Values:    DefaultValues,
		Single:    true,
		Batch:     true,
		BatchAlt:  true,
		BundleID:  DefaultBundleID,
		Topics:    []string{DefaultTopic},
		Output:    DefaultOutput,
		Timeout:   DefaultTimeout,
		BatchSize: DefaultBatchSize,
		SaveToDB:  true,
		DBDir:     XDGDataDir(),
	}
}

// ValidateBench checks the benchmark option group.
func (c *Config) ValidateBench() error {
	if c.Reps <= 0 {
		return ErrInvalidReps
	}
	if c.Values <= 0 {
		return ErrInvalidValues
	}
	if c.BundleID == "" {
		return ErrNoBundleID
	}
	return nil
}

// ValidateFetch checks the fetch option group.
func (c *Config) ValidateFetch() error {
	if len(c.Topics) == 0 {
		return ErrNoTopic
	}
	for _, topic := range c.Topics {
		if topic == "" {
			return ErrNoTopic
		}
	}
	if c.Output == "" {
		return ErrNoOutput
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	return nil
}

// XDGDataDir returns the XDG data directory for wfkit.
// This is where the catalog history database lives.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
