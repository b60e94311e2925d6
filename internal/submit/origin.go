package submit

import (
	"fmt"
	"net/url"
)

// SiteOrigin derives the site origin (scheme + host) from a page URL.
// Both submission APIs identify the submitting site by its origin, so it is
// computed once from the first sitemap URL.
func SiteOrigin(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL %q: %w", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("URL %q has no scheme or host", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}
