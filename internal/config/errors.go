package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic error handling while still providing human-readable
// messages.
var (
	// ErrNoSitemap is returned when no sitemap path is configured.
	ErrNoSitemap = errors.New("no sitemap path specified")

	// ErrInvalidBatchLimit is returned when the batch limit is zero or negative.
	ErrInvalidBatchLimit = errors.New("batch limit must be positive")

	// ErrInvalidTimeout is returned when the request timeout is zero or negative.
	ErrInvalidTimeout = errors.New("timeout must be positive")

	// ErrConflictingReportFormats is returned when both JSON and Markdown
	// report formats are requested.
	ErrConflictingReportFormats = errors.New("--json and --markdown are mutually exclusive")
)
