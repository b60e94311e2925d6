package sitemap

import (
	"encoding/xml"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// rssFeed mirrors the rss/channel/item/link structure of an RSS sitemap.
// Other RSS fields (title, description, pubDate) are intentionally not
// mapped; only the link values matter for submission.
type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

// rssChannel holds the item list of the feed.
type rssChannel struct {
	Items []rssItem `xml:"item"`
}

// rssItem is a single feed entry. Only the link child is read.
type rssItem struct {
	Link string `xml:"link"`
}

// Parser extracts URLs from RSS-formatted sitemap files.
type Parser struct {
	// logger receives the cause of any parse failure.
	logger *slog.Logger
}

// NewParser creates a sitemap parser.
// If logger is nil, slog.Default() is used.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse reads the sitemap file at path and returns the link values of all
// item elements, trimmed, in document order. Duplicates are preserved and
// no URL validation or normalization is performed.
//
// Any failure (missing file, malformed XML, read error) is logged and an
// empty list is returned.
func (p *Parser) Parse(path string) []string {
	f, err := os.Open(path) //nolint:gosec // User-provided sitemap path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			p.logger.Error("sitemap file not found", "path", path)
		} else {
			p.logger.Error("failed to open sitemap", "path", path, "error", err)
		}
		return nil
	}
	defer f.Close() //nolint:errcheck // Read-only file

	urls, err := extractLinks(f)
	if err != nil {
		p.logger.Error("failed to parse sitemap XML", "path", path, "error", err)
		return nil
	}

	p.logger.Info("sitemap parsed", "path", path, "urls", len(urls))
	return urls
}

// extractLinks decodes the RSS document and collects non-empty link values.
// The decoder is charset-aware so sitemaps declaring non-UTF-8 encodings
// still parse.
func extractLinks(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var feed rssFeed
	if err := decoder.Decode(&feed); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(feed.Channel.Items))
	for _, item := range feed.Channel.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" {
			continue
		}
		urls = append(urls, link)
	}
	return urls, nil
}
