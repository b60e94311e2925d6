package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/nao1215/urlsub/internal/model"
)

// Bing URL Submission API defaults.
// https://www.bing.com/webmasters/url-submission-api#APIs
const (
	// DefaultBingEndpoint is the JSON batch submission endpoint.
	DefaultBingEndpoint = "https://ssl.bing.com/webmaster/api.svc/json/SubmitUrlbatch"

	// DefaultBatchLimit caps how many URLs are sampled into one batch.
	// The API enforces daily quotas, so a small random sample per run
	// keeps repeated runs within them.
	DefaultBatchLimit = 10

	// DefaultSubmitTimeout bounds each submission request.
	DefaultSubmitTimeout = 20 * time.Second
)

// engineBing is the engine name used in results and logs.
const engineBing = "bing"

// BingSubmitter submits URL batches to the Bing URL Submission API.
// Authentication is an API key passed as the apikey query parameter.
type BingSubmitter struct {
	// apiKey authenticates the request. Empty key fails fast without
	// any network call.
	apiKey string

	// endpoint is the batch submission URL.
	endpoint string

	// limit caps the number of URLs sampled into one batch.
	limit int

	// userAgent is the User-Agent header for outbound requests.
	userAgent string

	// client is owned by the submitter so its timeout configuration
	// cannot be affected by other components.
	client *http.Client
}

// BingOption configures a BingSubmitter.
type BingOption func(*BingSubmitter)

// WithBingEndpoint overrides the submission endpoint. Used by tests and
// by config-file endpoint overrides.
func WithBingEndpoint(endpoint string) BingOption {
	return func(s *BingSubmitter) {
		if endpoint != "" {
			s.endpoint = endpoint
		}
	}
}

// WithBingLimit sets the batch sample cap.
func WithBingLimit(limit int) BingOption {
	return func(s *BingSubmitter) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithBingTimeout sets the per-request timeout.
func WithBingTimeout(timeout time.Duration) BingOption {
	return func(s *BingSubmitter) {
		if timeout > 0 {
			s.client.Timeout = timeout
		}
	}
}

// WithBingUserAgent sets the User-Agent header.
func WithBingUserAgent(ua string) BingOption {
	return func(s *BingSubmitter) {
		s.userAgent = ua
	}
}

// NewBingSubmitter creates a Bing batch submitter with the given API key.
func NewBingSubmitter(apiKey string, opts ...BingOption) *BingSubmitter {
	s := &BingSubmitter{
		apiKey:   apiKey,
		endpoint: DefaultBingEndpoint,
		limit:    DefaultBatchLimit,
		client:   &http.Client{Timeout: DefaultSubmitTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the engine name.
func (s *BingSubmitter) Name() string {
	return engineBing
}

// bingPayload is the JSON body of a batch submission.
type bingPayload struct {
	SiteURL string   `json:"siteUrl"`
	URLList []string `json:"urlList"`
}

// Submit sends a random sample of at most limit URLs to the batch endpoint.
// HTTP 200 is success; every other outcome becomes an error result.
func (s *BingSubmitter) Submit(ctx context.Context, urls []string, siteURL string) model.SubmissionResult {
	if s.apiKey == "" {
		return model.NewErrorResult(engineBing,
			"missing API key: set the BING_API_KEY environment variable or submit manually")
	}

	sample := sampleURLs(urls, s.limit)
	payload := bingPayload{SiteURL: siteURL, URLList: sample}
	endpoint := s.endpoint + "?apikey=" + url.QueryEscape(s.apiKey)

	statusCode, body, err := postJSON(ctx, s.client, endpoint, s.userAgent, payload)
	if err != nil {
		return model.NewErrorResult(engineBing, fmt.Sprintf("request failed: %v", err))
	}

	if statusCode != http.StatusOK {
		return model.NewHTTPErrorResult(engineBing,
			fmt.Sprintf("submission failed with status %d", statusCode),
			statusCode, string(body))
	}

	// The API answers with JSON ({"d": null} on success). Fall back to the
	// raw text if the body is not valid JSON.
	var response any
	if err := json.Unmarshal(body, &response); err != nil {
		response = string(body)
	}

	return model.NewSuccessResult(engineBing,
		fmt.Sprintf("submitted %d of %d URLs", len(sample), len(urls)),
		statusCode, response)
}

// sampleURLs returns a uniform random sample of min(len(urls), limit) URLs
// without replacement. The input slice is not modified.
func sampleURLs(urls []string, limit int) []string {
	n := min(len(urls), limit)
	sample := make([]string, 0, n)
	for _, i := range rand.Perm(len(urls))[:n] {
		sample = append(sample, urls[i])
	}
	return sample
}
