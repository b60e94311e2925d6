package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nao1215/urlsub/internal/model"
)

// SimpleWriter outputs reports in a compact human-readable text format.
// This is the default report format.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report as human-readable text.
func (w *SimpleWriter) Write(report *model.SubmissionReport) (int, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "URL Submission Report")
	fmt.Fprintln(&buf, "=====================")
	fmt.Fprintf(&buf, "Sitemap:   %s\n", report.SitemapPath)
	fmt.Fprintf(&buf, "Site:      %s\n", report.SiteURL)
	fmt.Fprintf(&buf, "URLs:      %d\n", report.URLCount)
	fmt.Fprintf(&buf, "Submitted: %s\n", report.SubmittedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintln(&buf)

	for _, result := range report.Results {
		if result.StatusCode != 0 {
			fmt.Fprintf(&buf, "[%s] %s: %s (HTTP %d)\n",
				result.Engine, result.Status, result.Message, result.StatusCode)
		} else {
			fmt.Fprintf(&buf, "[%s] %s: %s\n", result.Engine, result.Status, result.Message)
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Summary: %d succeeded, %d failed\n",
		report.SuccessCount(), report.ErrorCount())

	return w.output.Write(buf.Bytes())
}
