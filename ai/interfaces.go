package ai

import (
	"context"

	"github.com/sievelabs/assessrec/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// IntentClassifier interprets a free-text query as a structured Intent.
// Implementations must be thread-safe for concurrent use.
//
// A non-nil error means the classification capability was unavailable
// (timeout, malformed output after retries, provider error). Callers are
// expected to substitute core.NeutralIntent() and proceed; classification
// failures must never surface past the recommendation pipeline boundary.
type IntentClassifier interface {
	// Classify analyzes a query and extracts categories, explicit keywords,
	// behavioral and entry-level signals, and a duration ceiling.
	Classify(ctx context.Context, query string) (core.Intent, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and IntentClassifier instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// IntentClassifier returns the query intent classification service.
	// The returned IntentClassifier is safe for concurrent use.
	IntentClassifier() IntentClassifier

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
