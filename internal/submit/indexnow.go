package submit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/nao1215/urlsub/internal/model"
)

// DefaultIndexNowEndpoint is the shared IndexNow submission endpoint.
// https://www.bing.com/indexnow/getstarted
const DefaultIndexNowEndpoint = "https://api.indexnow.org/IndexNow"

// engineIndexNow is the engine name used in results and logs.
const engineIndexNow = "indexnow"

// IndexNowSubmitter submits the full URL list to the IndexNow API.
// Authentication is a key embedded in the payload; the API verifies it
// against a <key>.txt file hosted at the site origin.
type IndexNowSubmitter struct {
	// apiKey is the IndexNow key. It must match the key file hosted
	// at <siteURL>/<key>.txt.
	apiKey string

	// endpoint is the IndexNow submission URL.
	endpoint string

	// userAgent is the User-Agent header for outbound requests.
	userAgent string

	// client is owned by the submitter.
	client *http.Client
}

// IndexNowOption configures an IndexNowSubmitter.
type IndexNowOption func(*IndexNowSubmitter)

// WithIndexNowEndpoint overrides the submission endpoint.
func WithIndexNowEndpoint(endpoint string) IndexNowOption {
	return func(s *IndexNowSubmitter) {
		if endpoint != "" {
			s.endpoint = endpoint
		}
	}
}

// WithIndexNowTimeout sets the per-request timeout.
func WithIndexNowTimeout(timeout time.Duration) IndexNowOption {
	return func(s *IndexNowSubmitter) {
		if timeout > 0 {
			s.client.Timeout = timeout
		}
	}
}

// WithIndexNowUserAgent sets the User-Agent header.
func WithIndexNowUserAgent(ua string) IndexNowOption {
	return func(s *IndexNowSubmitter) {
		s.userAgent = ua
	}
}

// NewIndexNowSubmitter creates an IndexNow submitter with the given key.
func NewIndexNowSubmitter(apiKey string, opts ...IndexNowOption) *IndexNowSubmitter {
	s := &IndexNowSubmitter{
		apiKey:   apiKey,
		endpoint: DefaultIndexNowEndpoint,
		client:   &http.Client{Timeout: DefaultSubmitTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the engine name.
func (s *IndexNowSubmitter) Name() string {
	return engineIndexNow
}

// indexNowPayload is the JSON body of an IndexNow submission.
type indexNowPayload struct {
	Host        string   `json:"host"`
	Key         string   `json:"key"`
	KeyLocation string   `json:"keyLocation"`
	URLList     []string `json:"urlList"`
}

// Submit sends the entire URL list to the IndexNow endpoint.
// HTTP 200 and 202 both count as success: the API answers 202 when the
// submission is accepted but the key has not been validated yet.
// https://www.indexnow.org/documentation
func (s *IndexNowSubmitter) Submit(ctx context.Context, urls []string, siteURL string) model.SubmissionResult {
	if s.apiKey == "" {
		return model.NewErrorResult(engineIndexNow,
			"missing API key: set the INDEXNOW_API_KEY environment variable or submit manually")
	}

	payload := indexNowPayload{
		Host:        siteURL,
		Key:         s.apiKey,
		KeyLocation: siteURL + "/" + s.apiKey + ".txt",
		URLList:     urls,
	}

	statusCode, body, err := postJSON(ctx, s.client, s.endpoint, s.userAgent, payload)
	if err != nil {
		return model.NewErrorResult(engineIndexNow, fmt.Sprintf("request failed: %v", err))
	}

	if statusCode != http.StatusOK && statusCode != http.StatusAccepted {
		return model.NewHTTPErrorResult(engineIndexNow,
			fmt.Sprintf("submission failed with status %d", statusCode),
			statusCode, string(body))
	}

	return model.NewSuccessResult(engineIndexNow,
		fmt.Sprintf("submitted %d URLs with status %d", len(urls), statusCode),
		statusCode, string(body))
}
