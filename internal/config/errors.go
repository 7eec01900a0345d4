package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoInput is returned when no analysis input is specified.
	// This error occurs when neither a positional file argument nor
	// --archive-id provides an input.
	ErrNoInput = errors.New("no input specified: provide an analysis file or use --archive-id")

	// ErrInvalidEncodeDelay is returned when the encode delay is negative.
	// A negative delay is invalid; use 0 to disable the simulated latency.
	ErrInvalidEncodeDelay = errors.New("invalid encode delay: must be non-negative")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent generations, effectively
	// stopping the batch.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when more than one of --json,
	// --markdown, and --text is specified. Only one output format can be
	// used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: choose at most one of --json, --markdown, and --text")
)
