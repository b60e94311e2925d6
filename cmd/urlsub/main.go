// Package main provides the entry point for the urlsub CLI.
//
// urlsub extracts URLs from an RSS-formatted sitemap file and submits them
// to search engine indexing APIs: the Bing URL Submission API and IndexNow.
//
// Usage:
//
//	urlsub submit --sitemap ./sitemap.xml
//	urlsub init
//
// See --help for all available options.
package main

// main is the entry point for urlsub.
func main() {
	Execute()
}
