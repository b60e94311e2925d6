// Package sitemap parses RSS-formatted sitemap files and extracts the page
// URLs listed as rss/channel/item/link entries.
//
// Design decision: Parse never returns an error. Every failure mode (missing
// file, malformed XML, I/O errors) is logged with its cause and reduced to an
// empty URL list, so callers only have to handle the "nothing to submit" case.
package sitemap
