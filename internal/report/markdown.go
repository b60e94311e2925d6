package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/urlsub/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// This format is designed for sharing and for job summaries in CI.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.SubmissionReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("URL Submission Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Sitemap", "`" + report.SitemapPath + "`"},
			{"Site", report.SiteURL},
			{"URLs found", strconv.Itoa(report.URLCount)},
			{"Submitted", report.SubmittedAt.Format("2006-01-02 15:04:05 MST")},
			{"Outcome", fmt.Sprintf("%d succeeded, %d failed",
				report.SuccessCount(), report.ErrorCount())},
		},
	})
	md.PlainText("")

	for _, result := range report.Results {
		md.H2(result.Engine)
		md.PlainText("")

		rows := [][]string{
			{"Status", statusText(result)},
			{"Message", result.Message},
		}
		if result.StatusCode != 0 {
			rows = append(rows, []string{"HTTP status", strconv.Itoa(result.StatusCode)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Field", "Value"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// statusText renders a result status with an indicator glyph.
func statusText(result model.SubmissionResult) string {
	if result.IsSuccess() {
		return "✅ success"
	}
	return "❌ error"
}
