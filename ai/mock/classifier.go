package mock

import (
	"context"
	"strings"

	"github.com/sievelabs/assessrec/core"
)

// MockIntentClassifier is a test double for ai.IntentClassifier.
// It allows custom behavior injection via function fields.
type MockIntentClassifier struct {
	// ClassifyFunc is called by Classify if set.
	// If nil, uses default keyword-based classification.
	ClassifyFunc func(ctx context.Context, query string) (core.Intent, error)

	callCount int
}

// NewMockIntentClassifier creates a mock classifier with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockClassifier().
func NewMockIntentClassifier() *MockIntentClassifier {
	return &MockIntentClassifier{}
}

// Classify derives a simple mock intent from the query.
// Default behavior: matches a handful of obvious cue words so tests can
// exercise category-dependent code paths without a live model.
func (m *MockIntentClassifier) Classify(ctx context.Context, query string) (core.Intent, error) {
	m.callCount++

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, query)
	}

	lower := strings.ToLower(query)
	intent := core.NeutralIntent()

	cues := []struct {
		word     string
		category string
	}{
		{"java", "tech"},
		{"python", "tech"},
		{"developer", "tech"},
		{"sales", "sales"},
		{"manager", "leadership"},
		{"leadership", "leadership"},
		{"admin", "admin"},
		{"marketing", "marketing"},
		{"accounting", "finance"},
		{"human resources", "hr"},
	}
	for _, cue := range cues {
		if strings.Contains(lower, cue.word) && !intent.HasCategory(cue.category) {
			intent.Categories = append(intent.Categories, cue.category)
		}
	}

	if strings.Contains(lower, "collaborat") || strings.Contains(lower, "teamwork") ||
		strings.Contains(lower, "personality") {
		intent.Behavioral = true
	}

	return intent, nil
}

// CallCount returns the number of times Classify was called.
func (m *MockIntentClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockIntentClassifier) Reset() {
	m.callCount = 0
	m.ClassifyFunc = nil
}
