package config

import "errors"

// Configuration validation errors.
// These errors are returned by the Validate methods and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in the Validate methods. This allows
// callers to use errors.Is() for programmatic error handling while still
// providing human-readable messages.
var (
	// ErrInvalidReps is returned when the repetition count is not positive.
	// Zero repetitions would produce a summary of nothing.
	ErrInvalidReps = errors.New("invalid reps: must be positive")

	// ErrInvalidValues is returned when the per-repetition value count is
	// not positive.
	ErrInvalidValues = errors.New("invalid values: must be positive")

	// ErrNoBundleID is returned when the workflow bundle identifier is
	// empty. The scripting bridge requires one to scope configuration.
	ErrNoBundleID = errors.New("no bundle ID specified")

	// ErrNoTopic is returned when no search topic is specified or a topic
	// is the empty string.
	ErrNoTopic = errors.New("no topic specified")

	// ErrNoOutput is returned when the catalog output path is empty.
	ErrNoOutput = errors.New("no output path specified")

	// ErrInvalidTimeout is returned when the request timeout is not
	// positive. A zero timeout would fail every request immediately.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidBatchSize is returned when the topic concurrency limit is
	// not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")
)
