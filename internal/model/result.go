package model

import "time"

// Status represents the outcome of a single submission attempt.
type Status string

const (
	// StatusSuccess indicates the indexing API accepted the submission.
	StatusSuccess Status = "success"

	// StatusError indicates the submission failed, either before the
	// request was sent (missing credentials) or because the API rejected it.
	StatusError Status = "error"
)

// SubmissionResult is the outcome of one submitter invocation.
//
// Design decision: Every failure mode is expressed as a SubmissionResult
// rather than a Go error. Submitters absorb transport failures, non-2xx
// responses, and missing credentials at their boundary so that one failing
// engine never prevents the other from being attempted.
type SubmissionResult struct {
	// Engine is the name of the submission target (e.g. "bing", "indexnow").
	Engine string `json:"engine"`

	// Status is "success" or "error".
	Status Status `json:"status"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`

	// StatusCode is the HTTP status code returned by the API.
	// Zero when no HTTP response was received (transport failure,
	// missing API key).
	StatusCode int `json:"statusCode,omitempty"`

	// Response is the raw API response payload, when one was received.
	// For JSON APIs this is the decoded body; otherwise the body text.
	Response any `json:"response,omitempty"`
}

// NewSuccessResult creates a success result for the given engine.
func NewSuccessResult(engine, message string, statusCode int, response any) SubmissionResult {
	return SubmissionResult{
		Engine:     engine,
		Status:     StatusSuccess,
		Message:    message,
		StatusCode: statusCode,
		Response:   response,
	}
}

// NewErrorResult creates an error result for the given engine.
// Use it for failures that happen before any HTTP response exists.
func NewErrorResult(engine, message string) SubmissionResult {
	return SubmissionResult{
		Engine:  engine,
		Status:  StatusError,
		Message: message,
	}
}

// NewHTTPErrorResult creates an error result carrying the HTTP status code
// and the raw response body returned by the API.
func NewHTTPErrorResult(engine, message string, statusCode int, body string) SubmissionResult {
	return SubmissionResult{
		Engine:     engine,
		Status:     StatusError,
		Message:    message,
		StatusCode: statusCode,
		Response:   body,
	}
}

// IsSuccess reports whether the submission succeeded.
func (r SubmissionResult) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// SubmissionReport aggregates the outcome of one urlsub run.
// It is created after the sitemap has been parsed and filled in as each
// submitter completes, then rendered by the report package.
type SubmissionReport struct {
	// SitemapPath is the path of the sitemap file that was parsed.
	SitemapPath string `json:"sitemapPath"`

	// SiteURL is the site origin (scheme + host) derived from the first URL.
	SiteURL string `json:"siteUrl"`

	// URLCount is the number of URLs extracted from the sitemap.
	URLCount int `json:"urlCount"`

	// SubmittedAt is the time the run started submitting.
	SubmittedAt time.Time `json:"submittedAt"`

	// Results holds one entry per submitter, in invocation order.
	Results []SubmissionResult `json:"results"`
}

// NewSubmissionReport creates a report for a run over the given sitemap.
func NewSubmissionReport(sitemapPath, siteURL string, urlCount int) *SubmissionReport {
	return &SubmissionReport{
		SitemapPath: sitemapPath,
		SiteURL:     siteURL,
		URLCount:    urlCount,
		SubmittedAt: time.Now(),
		Results:     make([]SubmissionResult, 0, 2),
	}
}

// Add appends a submission result to the report.
func (r *SubmissionReport) Add(result SubmissionResult) {
	r.Results = append(r.Results, result)
}

// SuccessCount returns the number of successful submissions.
func (r *SubmissionReport) SuccessCount() int {
	count := 0
	for _, result := range r.Results {
		if result.IsSuccess() {
			count++
		}
	}
	return count
}

// ErrorCount returns the number of failed submissions.
func (r *SubmissionReport) ErrorCount() int {
	return len(r.Results) - r.SuccessCount()
}
