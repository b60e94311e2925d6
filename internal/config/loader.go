package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".urlsub"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Duration wraps time.Duration so yaml values like "20s" parse naturally.
type Duration time.Duration

// UnmarshalYAML parses a duration string ("20s", "1m30s") from yaml.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("timeout must be a duration string like \"20s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// File is the on-disk configuration file format.
// API keys never appear here; they come from the environment only.
type File struct {
	// Endpoints overrides the submission API endpoints.
	Endpoints Endpoints `yaml:"endpoints"`

	// Limit caps the number of URLs sampled into one Bing batch.
	Limit int `yaml:"limit"`

	// Timeout bounds each submission request (duration string, e.g. "20s").
	Timeout Duration `yaml:"timeout"`

	// UserAgent is the User-Agent header for outbound requests.
	UserAgent string `yaml:"user_agent"`
}

// Endpoints holds the submission API endpoint overrides.
type Endpoints struct {
	// Bing is the Bing URL Submission API endpoint.
	Bing string `yaml:"bing"`

	// IndexNow is the IndexNow API endpoint.
	IndexNow string `yaml:"indexnow"`
}

// LoadConfigFile loads settings from a yaml file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this based on whether the path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .urlsub in the current directory
//  3. Look for .urlsub in the user's home directory
//  4. Look for .urlsub in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
