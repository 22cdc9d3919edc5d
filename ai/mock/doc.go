// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.IntentClassifier,
// and ai.AIProvider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	embedding, err := mockProvider.Embedder().EmbedText(ctx, "entry level sales")
//
//	// Custom behavior injection
//	mockClassifier := mock.NewMockIntentClassifier()
//	mockClassifier.ClassifyFunc = func(ctx context.Context, query string) (core.Intent, error) {
//	    return core.Intent{Categories: []string{"tech"}}, nil
//	}
//
//	// Check call counts
//	count := mockClassifier.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockIntentClassifier: Matches a few obvious cue words in the query
//   - MockProvider: Aggregates mock embedder and classifier
package mock
