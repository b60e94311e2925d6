package model

import "testing"

// TestSubmissionResultIsSuccess verifies the success predicate for both statuses.
func TestSubmissionResultIsSuccess(t *testing.T) {
	t.Parallel()

	t.Run("success result", func(t *testing.T) {
		t.Parallel()
		result := NewSuccessResult("bing", "submitted 10 of 15 URLs", 200, map[string]any{"d": nil})
		if !result.IsSuccess() {
			t.Error("expected IsSuccess to be true")
		}
		if result.Status != StatusSuccess {
			t.Errorf("expected status %q, got %q", StatusSuccess, result.Status)
		}
		if result.StatusCode != 200 {
			t.Errorf("expected status code 200, got %d", result.StatusCode)
		}
	})

	t.Run("error result", func(t *testing.T) {
		t.Parallel()
		result := NewErrorResult("indexnow", "missing API key")
		if result.IsSuccess() {
			t.Error("expected IsSuccess to be false")
		}
		if result.StatusCode != 0 {
			t.Errorf("expected zero status code, got %d", result.StatusCode)
		}
	})

	t.Run("http error result carries status and body", func(t *testing.T) {
		t.Parallel()
		result := NewHTTPErrorResult("bing", "submission failed with status 403", 403, "Forbidden")
		if result.IsSuccess() {
			t.Error("expected IsSuccess to be false")
		}
		if result.StatusCode != 403 {
			t.Errorf("expected status code 403, got %d", result.StatusCode)
		}
		if result.Response != "Forbidden" {
			t.Errorf("expected response body to be preserved, got %v", result.Response)
		}
	})
}

// TestSubmissionReportCounts verifies the success/error counters.
func TestSubmissionReportCounts(t *testing.T) {
	t.Parallel()

	report := NewSubmissionReport("./sitemap.xml", "https://example.com", 15)
	if report.URLCount != 15 {
		t.Errorf("expected URLCount 15, got %d", report.URLCount)
	}
	if report.SubmittedAt.IsZero() {
		t.Error("expected SubmittedAt to be set")
	}

	report.Add(NewSuccessResult("bing", "ok", 200, nil))
	report.Add(NewHTTPErrorResult("indexnow", "rejected", 403, "Forbidden"))

	if got := report.SuccessCount(); got != 1 {
		t.Errorf("expected 1 success, got %d", got)
	}
	if got := report.ErrorCount(); got != 1 {
		t.Errorf("expected 1 error, got %d", got)
	}
	if len(report.Results) != 2 {
		t.Errorf("expected 2 results, got %d", len(report.Results))
	}
}
