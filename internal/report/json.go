package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/urlsub/internal/model"
)

// JSONWriter outputs reports as indented JSON.
// This format is intended for machine consumption (CI pipelines, cron
// wrappers that post results elsewhere).
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report as indented JSON.
func (w *JSONWriter) Write(report *model.SubmissionReport) (int, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}
