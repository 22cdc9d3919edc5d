package retrieval

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sievelabs/assessrec/ai"
	"github.com/sievelabs/assessrec/core"
	"github.com/sievelabs/assessrec/storage"
)

// Retriever performs semantic search over the assessment catalog.
// It embeds the query text and scans the catalog for the nearest vectors.
type Retriever struct {
	catalog       storage.CatalogRepository
	embedder      ai.Embedder
	minSimilarity float32
	logger        *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithMinSimilarity sets the minimum similarity threshold for matches.
// Default is -1, which admits every indexed assessment up to k; ordering
// is what matters, the scorer downstream handles relevance.
func WithMinSimilarity(min float32) Option {
	return func(r *Retriever) error {
		r.minSimilarity = min
		return nil
	}
}

// NewRetriever creates a new retriever.
func NewRetriever(catalog storage.CatalogRepository, embedder ai.Embedder, opts ...Option) (*Retriever, error) {
	if catalog == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	r := &Retriever{
		catalog:       catalog,
		embedder:      embedder,
		minSimilarity: -1,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Search returns up to k catalog candidates for the query, ordered by
// descending vector similarity.
func (r *Retriever) Search(ctx context.Context, query string, k int) ([]core.Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	embedding, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	matches, err := r.catalog.FindSimilar(ctx, embedding, r.minSimilarity, k)
	if err != nil {
		r.logger.Error("error querying for similar assessments", "err", err)
		return nil, err
	}

	candidates := make([]core.Candidate, 0, len(matches))
	for _, match := range matches {
		candidates = append(candidates, *match)
	}

	r.logger.Debug("retrieval complete", "query", query, "k", k, "hits", len(candidates))
	return candidates, nil
}
