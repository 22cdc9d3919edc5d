package config

import "errors"

var (
	// ErrStoragePathRequired is returned when neither a storage path nor
	// in-memory mode is configured.
	ErrStoragePathRequired = errors.New("storage path required")

	// ErrAIHostRequired is returned when the AI service host is empty.
	ErrAIHostRequired = errors.New("ai host required")

	// ErrInvalidClassifierAttempts is returned when the classifier attempt
	// count is not positive.
	ErrInvalidClassifierAttempts = errors.New("classifier attempts must be at least 1")

	// ErrScraperBaseURLRequired is returned when the scraper base URL is empty.
	ErrScraperBaseURLRequired = errors.New("scraper base url required")

	// ErrInvalidPageSize is returned when the scraper page size is not positive.
	ErrInvalidPageSize = errors.New("scraper page size must be at least 1")
)
