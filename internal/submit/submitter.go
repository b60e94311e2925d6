package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nao1215/urlsub/internal/model"
)

// maxResponseBody limits how much of an API response is read.
// Indexing APIs return short JSON or text bodies; 1MB is far more than
// any legitimate response while preventing memory exhaustion.
const maxResponseBody = 1 << 20

// contentTypeJSON is the Content-Type header sent with every submission.
const contentTypeJSON = "application/json; charset=utf-8"

// Submitter is the contract shared by all indexing API clients.
//
// Design decision: We model the two engines as implementations of a small
// interface rather than an inheritance-style base type. They differ only in
// payload shape and in which status codes count as success, so the interface
// stays minimal and the orchestration layer can iterate over them uniformly.
type Submitter interface {
	// Name identifies the submission target in results and logs.
	Name() string

	// Submit sends the URLs to the indexing API on behalf of siteURL.
	// It never returns an error; all failures are expressed in the result.
	Submit(ctx context.Context, urls []string, siteURL string) model.SubmissionResult
}

// postJSON marshals payload and POSTs it to endpoint with the standard
// submission headers. It returns the HTTP status code and the (size-limited)
// response body.
//
// Design decision: The shared helper owns only the wire mechanics. Success
// interpretation differs per engine (IndexNow accepts 202), so status
// handling stays with the callers.
func postJSON(ctx context.Context, client *http.Client, endpoint, userAgent string, payload any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", contentTypeJSON)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort cleanup

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, body, nil
}
