// Package log provides the logging setup for urlsub, built on top of the
// standard slog package.
//
// The ColorHandler renders records as timestamped, human-readable lines with
// the level name colored on the console:
//
//	[2026-08-25 10:30:00-INFO]: sitemap parsed path=./sitemap.xml urls=15
//
// Attribute values whose keys look like credentials (apikey, key, token, ...)
// are masked before they reach any sink, so API keys never end up in log
// files that may be shared.
//
// Setup wires the handler to standard error and, optionally, mirrors the
// same lines to a log file.
package log
