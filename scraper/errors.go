package scraper

import "errors"

var (
	// ErrMaxRetriesExceeded is returned when a page could not be fetched
	// within the configured attempt budget.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")

	// ErrBaseURLRequired is returned when no catalog base URL is configured.
	ErrBaseURLRequired = errors.New("base URL required")
)
