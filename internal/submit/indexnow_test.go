package submit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// TestIndexNowSubmitterSubmit tests the IndexNow submitter against a local
// HTTP server standing in for the API.
func TestIndexNowSubmitterSubmit(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}

	t.Run("missing API key fails before any network call", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		s := NewIndexNowSubmitter("", WithIndexNowEndpoint(server.URL))
		result := s.Submit(context.Background(), urls, "https://example.com")

		if result.IsSuccess() {
			t.Error("expected error result for missing API key")
		}
		if got := calls.Load(); got != 0 {
			t.Errorf("expected zero outbound calls, got %d", got)
		}
	})

	t.Run("payload carries host, key, keyLocation, and the full URL list", func(t *testing.T) {
		t.Parallel()
		var payload indexNowPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		s := NewIndexNowSubmitter("indexnow-key", WithIndexNowEndpoint(server.URL))
		result := s.Submit(context.Background(), urls, "https://example.com")

		if !result.IsSuccess() {
			t.Fatalf("expected success, got %s", result.Message)
		}
		if payload.Host != "https://example.com" {
			t.Errorf("expected host 'https://example.com', got %q", payload.Host)
		}
		if payload.Key != "indexnow-key" {
			t.Errorf("expected key 'indexnow-key', got %q", payload.Key)
		}
		if payload.KeyLocation != "https://example.com/indexnow-key.txt" {
			t.Errorf("unexpected keyLocation %q", payload.KeyLocation)
		}
		if len(payload.URLList) != len(urls) {
			t.Errorf("expected full URL list of %d, got %d", len(urls), len(payload.URLList))
		}
		for i, u := range urls {
			if payload.URLList[i] != u {
				t.Errorf("urlList[%d]: expected %q, got %q", i, u, payload.URLList[i])
			}
		}
	})

	t.Run("202 accepted counts as success", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		s := NewIndexNowSubmitter("indexnow-key", WithIndexNowEndpoint(server.URL))
		result := s.Submit(context.Background(), urls, "https://example.com")

		if !result.IsSuccess() {
			t.Errorf("expected 202 to be success, got %q: %s", result.Status, result.Message)
		}
		if result.StatusCode != http.StatusAccepted {
			t.Errorf("expected status code 202, got %d", result.StatusCode)
		}
	})

	t.Run("non-2xx response yields error with status and body", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("In case of key not valid")) //nolint:errcheck // test handler
		}))
		defer server.Close()

		s := NewIndexNowSubmitter("indexnow-key", WithIndexNowEndpoint(server.URL))
		result := s.Submit(context.Background(), urls, "https://example.com")

		if result.IsSuccess() {
			t.Error("expected error result for 403")
		}
		if result.StatusCode != http.StatusForbidden {
			t.Errorf("expected status code 403, got %d", result.StatusCode)
		}
		if body, ok := result.Response.(string); !ok || body != "In case of key not valid" {
			t.Errorf("expected raw body in response, got %v", result.Response)
		}
	})

	t.Run("connection failure yields error result", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		server.Close() // Shut down before submitting

		s := NewIndexNowSubmitter("indexnow-key", WithIndexNowEndpoint(server.URL))
		result := s.Submit(context.Background(), urls, "https://example.com")

		if result.IsSuccess() {
			t.Error("expected error result for connection failure")
		}
	})
}
