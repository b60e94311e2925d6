// Package submit sends sitemap URLs to search engine indexing APIs.
//
// Two submitters implement the Submitter interface:
//
//   - BingSubmitter posts a capped random sample of URLs to the Bing URL
//     Submission API, authenticated by an API key query parameter.
//   - IndexNowSubmitter posts the full URL list to the IndexNow endpoint,
//     authenticated by a key embedded in the payload plus a key-verification
//     file hosted on the site.
//
// Submitters never return Go errors: missing credentials, transport failures,
// and non-2xx responses are all converted into error-status SubmissionResults
// at the component boundary.
package submit
