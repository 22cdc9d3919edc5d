package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sievelabs/assessrec/ai/mock"
	"github.com/sievelabs/assessrec/core"
	"github.com/sievelabs/assessrec/storage/badger"
)

func TestNewRetriever_Validation(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	embedder := mock.NewMockEmbedder()

	t.Run("nil catalog", func(t *testing.T) {
		_, err := NewRetriever(nil, embedder)
		assert.ErrorIs(t, err, ErrCatalogRepositoryRequired)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewRetriever(repo, nil)
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})

	t.Run("valid", func(t *testing.T) {
		r, err := NewRetriever(repo, embedder)
		require.NoError(t, err)
		assert.NotNil(t, r)
	})
}

func TestSearch_EmptyQuery(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	r, err := NewRetriever(repo, mock.NewMockEmbedder())
	require.NoError(t, err)

	_, err = r.Search(context.Background(), "   ", 10)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearch_OrdersBySimilarity(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	_, err = repo.AddAssessments(ctx,
		&core.Assessment{
			URL:    "https://catalog.example.com/close",
			Name:   "Close Match",
			Vector: []float32{1.0, 0.0},
		},
		&core.Assessment{
			URL:    "https://catalog.example.com/far",
			Name:   "Far Match",
			Vector: []float32{0.0, 1.0},
		},
	)
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1.0, 0.1}, nil
	}

	r, err := NewRetriever(repo, embedder)
	require.NoError(t, err)

	candidates, err := r.Search(ctx, "closeness test", 10)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Close Match", candidates[0].Name)
	assert.Equal(t, "Far Match", candidates[1].Name)
	assert.Greater(t, candidates[0].VectorScore, candidates[1].VectorScore)
}

func TestSearch_RespectsK(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := repo.AddAssessments(ctx, &core.Assessment{
			URL:    "https://catalog.example.com/" + name,
			Name:   name,
			Vector: []float32{1.0},
		})
		require.NoError(t, err)
	}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1.0}, nil
	}

	r, err := NewRetriever(repo, embedder)
	require.NoError(t, err)

	candidates, err := r.Search(ctx, "anything", 2)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestSearch_EmbedderFailure(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding service down")
	}

	r, err := NewRetriever(repo, embedder)
	require.NoError(t, err)

	_, err = r.Search(context.Background(), "java developer", 10)
	assert.Error(t, err)
}

func TestSearch_MinSimilarityFilters(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	_, err = repo.AddAssessments(ctx,
		&core.Assessment{
			URL:    "https://catalog.example.com/weak",
			Name:   "Weak Match",
			Vector: []float32{0.1, 0.9},
		},
	)
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1.0, 0.0}, nil
	}

	r, err := NewRetriever(repo, embedder, WithMinSimilarity(0.5))
	require.NoError(t, err)

	candidates, err := r.Search(ctx, "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
