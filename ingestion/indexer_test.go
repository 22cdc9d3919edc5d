package ingestion

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sievelabs/assessrec/ai/mock"
	"github.com/sievelabs/assessrec/core"
	"github.com/sievelabs/assessrec/storage/badger"
)

func TestNewIndexer_Validation(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	t.Run("nil catalog", func(t *testing.T) {
		_, err := NewIndexer(nil, mock.NewMockEmbedder())
		assert.ErrorIs(t, err, ErrCatalogRepositoryRequired)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewIndexer(repo, nil)
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})
}

func TestIndexAssessments_PersistsNormalizedVectors(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{3.0, 4.0} // magnitude 5
		}
		return out, nil
	}

	ix, err := NewIndexer(repo, embedder)
	require.NoError(t, err)
	defer ix.Release()

	assessments := []*core.Assessment{
		{URL: "https://catalog.example.com/a", Name: "A"},
		{URL: "https://catalog.example.com/b", Name: "B"},
	}

	err = ix.IndexAssessments(context.Background(), assessments)
	require.NoError(t, err)

	got, err := repo.GetAssessment(context.Background(), assessments[0].ID())
	require.NoError(t, err)
	require.Len(t, got.Vector, 2)
	assert.InDelta(t, 0.6, got.Vector[0], 0.0001)
	assert.InDelta(t, 0.8, got.Vector[1], 0.0001)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIndexAssessments_Batches(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	var batches atomic.Int32
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		batches.Add(1)
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{1.0}
		}
		return out, nil
	}

	ix, err := NewIndexer(repo, embedder, WithBatchSize(2))
	require.NoError(t, err)
	defer ix.Release()

	assessments := []*core.Assessment{
		{URL: "https://catalog.example.com/1", Name: "1"},
		{URL: "https://catalog.example.com/2", Name: "2"},
		{URL: "https://catalog.example.com/3", Name: "3"},
		{URL: "https://catalog.example.com/4", Name: "4"},
		{URL: "https://catalog.example.com/5", Name: "5"},
	}

	err = ix.IndexAssessments(context.Background(), assessments)
	require.NoError(t, err)
	assert.Equal(t, int32(3), batches.Load())
}

func TestIndexAssessments_CountMismatch(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{}, nil
	}

	ix, err := NewIndexer(repo, embedder, WithRetry(1, 1))
	require.NoError(t, err)
	defer ix.Release()

	err = ix.IndexAssessments(context.Background(), []*core.Assessment{
		{URL: "https://catalog.example.com/x", Name: "X"},
	})
	assert.ErrorIs(t, err, ErrEmbeddingCountMismatch)
}

func TestIndexAssessments_EmbedderFailureSurfaces(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("service down")
	}

	ix, err := NewIndexer(repo, embedder, WithRetry(2, 1))
	require.NoError(t, err)
	defer ix.Release()

	err = ix.IndexAssessments(context.Background(), []*core.Assessment{
		{URL: "https://catalog.example.com/x", Name: "X"},
	})
	assert.Error(t, err)
}

func TestReindexCatalog(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	_, err = repo.AddAssessments(ctx, &core.Assessment{
		URL:  "https://catalog.example.com/stale",
		Name: "Stale",
	})
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{1.0}
		}
		return out, nil
	}

	ix, err := NewIndexer(repo, embedder)
	require.NoError(t, err)
	defer ix.Release()

	err = ix.ReindexCatalog(ctx)
	require.NoError(t, err)

	got, err := repo.GetAssessment(ctx, core.IDFromURL("https://catalog.example.com/stale"))
	require.NoError(t, err)
	assert.NotEmpty(t, got.Vector)
}
