package storage

import (
	"context"

	"github.com/sievelabs/assessrec/core"
)

// Repository provides common storage operations shared across repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindSimilar finds assessments similar to the given query vector.
	// Returns candidates with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.Candidate, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// CatalogRepository provides operations for managing the assessment catalog.
type CatalogRepository interface {
	Repository

	// AddAssessments adds one or more assessments to storage.
	// IDs are derived from the assessment URL, so re-adding an assessment
	// with the same URL overwrites the stored copy.
	// Sets InsertedAt timestamp if not already set.
	// Returns the assessments with timestamps populated.
	AddAssessments(ctx context.Context, assessments ...*core.Assessment) ([]*core.Assessment, error)

	// UpdateAssessments updates existing assessments.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any assessment doesn't exist.
	UpdateAssessments(ctx context.Context, assessments ...*core.Assessment) ([]*core.Assessment, error)

	// DeleteAssessments removes assessments by their IDs.
	// Returns ErrNotFound if any assessment doesn't exist.
	DeleteAssessments(ctx context.Context, ids ...core.ID) error

	// GetAssessment retrieves a single assessment by ID.
	// Returns ErrNotFound if the assessment doesn't exist.
	GetAssessment(ctx context.Context, id core.ID) (*core.Assessment, error)

	// GetAssessments retrieves multiple assessments by their IDs.
	// Returns only the assessments that exist (no error for missing entries).
	GetAssessments(ctx context.Context, ids ...core.ID) ([]*core.Assessment, error)

	// AllAssessments iterates over every assessment in the catalog.
	// Iteration stops early if fn returns an error, which is then returned.
	AllAssessments(ctx context.Context, fn func(a *core.Assessment) error) error

	// Count returns the number of assessments in the catalog.
	Count(ctx context.Context) (int, error)
}
