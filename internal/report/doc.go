// Package report renders submission reports in multiple output formats:
// human-readable text (default), JSON, and Markdown.
package report
