// Package scraper acquires the assessment catalog from the vendor site.
//
// Acquisition runs in two passes. ScrapeCatalog walks the paged product
// table and yields one bare Assessment per row (URL, name, feature flags,
// test-type codes). EnrichDetails then visits each product page to pull
// the description paragraph and the approximate completion time.
//
// Both passes are polite: fixed delays between requests and bounded
// linear-backoff retry per request. Detail failures degrade to bare
// records rather than aborting the crawl.
package scraper
