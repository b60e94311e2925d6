// Package config provides configuration structures and utilities for urlsub.
// It defines the defaults for sitemap parsing and URL submission, the yaml
// config file format, and validation of the assembled configuration.
package config
