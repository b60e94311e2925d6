package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultSitemapPath is where the submit command looks for the sitemap
	// when --sitemap is not given. Static site generators conventionally
	// emit the RSS sitemap next to the built site.
	DefaultSitemapPath = "./sitemap.xml"

	// DefaultBatchLimit caps the number of URLs sampled into one Bing batch.
	// The URL Submission API has a daily quota, so a small sample per run
	// keeps scheduled runs within it.
	DefaultBatchLimit = 10

	// DefaultTimeout bounds each submission request. Both APIs normally
	// answer within a few seconds; 20 seconds leaves room for slow networks
	// without hanging a scheduled run indefinitely.
	DefaultTimeout = 20 * time.Second

	// DefaultUserAgent identifies urlsub in HTTP requests.
	DefaultUserAgent = "urlsub/1.0 (+https://github.com/nao1215/urlsub)"

	// AppName is the application name used for XDG directory paths.
	AppName = "urlsub"

	// BingKeyEnv is the environment variable holding the Bing API key.
	BingKeyEnv = "BING_API_KEY"

	// IndexNowKeyEnv is the environment variable holding the IndexNow key.
	IndexNowKeyEnv = "INDEXNOW_API_KEY"
)

// Config holds all configuration options for a urlsub run.
// This struct is populated from CLI flags and the optional config file and
// passed through the application via dependency injection rather than
// global state.
//
// API keys are deliberately not part of Config: they are secrets and are
// read from the environment at the last moment before submission.
type Config struct {
	// SitemapPath is the RSS sitemap file to parse.
	SitemapPath string

	// LogFile, when set, mirrors log output to this file in addition
	// to standard error.
	LogFile string

	// BatchLimit caps the number of URLs sampled into one Bing batch.
	BatchLimit int

	// Timeout bounds each submission request.
	Timeout time.Duration

	// BingEndpoint is the Bing URL Submission API endpoint.
	// Empty means the submitter default.
	BingEndpoint string

	// IndexNowEndpoint is the IndexNow API endpoint.
	// Empty means the submitter default.
	IndexNowEndpoint string

	// UserAgent is the User-Agent header sent with submission requests.
	UserAgent string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .urlsub in the current directory,
	// the home directory, and the XDG config directory.
	ConfigFilePath string

	// Verbose enables debug-level log output.
	Verbose bool

	// JSONReport renders the submission report as JSON.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport renders the submission report as Markdown.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile, when set, writes the report to this path instead of stdout.
	ReportFile string

	// DryRun parses the sitemap and derives the site origin but performs
	// no network calls.
	DryRun bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		SitemapPath: DefaultSitemapPath,
		BatchLimit:  DefaultBatchLimit,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
	}
}

// XDGConfigDir returns the XDG config directory for urlsub.
// On Linux: ~/.config/urlsub
// On macOS: ~/Library/Application Support/urlsub
// On Windows: %APPDATA%\urlsub
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error so callers can
// use errors.Is for programmatic handling.
func (c *Config) Validate() error {
	if c.SitemapPath == "" {
		return ErrNoSitemap
	}

	if c.BatchLimit <= 0 {
		return ErrInvalidBatchLimit
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}

// ApplyFile overlays values from a loaded config file onto the defaults.
// Only fields the file actually sets are applied; CLI flags are applied
// afterwards by the command layer and take precedence.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}

	if f.Endpoints.Bing != "" {
		c.BingEndpoint = f.Endpoints.Bing
	}
	if f.Endpoints.IndexNow != "" {
		c.IndexNowEndpoint = f.Endpoints.IndexNow
	}
	if f.Limit > 0 {
		c.BatchLimit = f.Limit
	}
	if f.Timeout > 0 {
		c.Timeout = time.Duration(f.Timeout)
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
}
