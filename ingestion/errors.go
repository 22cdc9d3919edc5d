package ingestion

import "errors"

var (
	// ErrCatalogRepositoryRequired is returned when a catalog repository is not provided.
	ErrCatalogRepositoryRequired = errors.New("catalog repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrInvalidMaxAttempts is returned when maxAttempts is not positive.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmbeddingCountMismatch is returned when the embedder returns the
	// wrong number of vectors for a batch.
	ErrEmbeddingCountMismatch = errors.New("embedding count mismatch")
)
