package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sievelabs/assessrec/core"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestFindSimilar_EmptyCatalog(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	vector := []float32{0.1, 0.2, 0.3}

	results, err := backend.FindSimilar(ctx, vector, 0.5, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindSimilar_WithAssessments(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	assessments := []*core.Assessment{
		{
			URL:    "https://catalog.example.com/java-test",
			Name:   "Java Programming Test",
			Vector: []float32{1.0, 0.0, 0.0}, // Very similar to query
		},
		{
			URL:    "https://catalog.example.com/python-test",
			Name:   "Python Programming Test",
			Vector: []float32{0.9, 0.1, 0.0}, // Somewhat similar
		},
		{
			URL:    "https://catalog.example.com/sales-test",
			Name:   "Sales Aptitude Test",
			Vector: []float32{0.0, 0.0, 1.0}, // Not similar
		},
		{
			URL:  "https://catalog.example.com/unindexed-test",
			Name: "Unindexed Test", // No vector, should be skipped
		},
	}

	added, err := repo.AddAssessments(ctx, assessments...)
	require.NoError(t, err)
	require.Len(t, added, 4)

	queryVector := []float32{1.0, 0.0, 0.0}
	results, err := repo.FindSimilar(ctx, queryVector, 0.8, 10)
	require.NoError(t, err)

	require.Len(t, results, 2)

	// Ordered by similarity descending
	assert.Equal(t, "Java Programming Test", results[0].Name)
	assert.Equal(t, "Python Programming Test", results[1].Name)
	assert.Greater(t, results[0].VectorScore, results[1].VectorScore)
}

func TestFindSimilar_RespectsLimit(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		_, err := repo.AddAssessments(ctx, &core.Assessment{
			URL:    "https://catalog.example.com/" + name,
			Name:   name,
			Vector: []float32{1.0, 0.0, 0.0},
		})
		require.NoError(t, err)
	}

	results, err := repo.FindSimilar(ctx, []float32{1.0, 0.0, 0.0}, 0.0, 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestDotProduct(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"identical unit vectors", []float32{1, 0, 0}, []float32{1, 0, 0}, 1.0},
		{"orthogonal vectors", []float32{1, 0, 0}, []float32{0, 1, 0}, 0.0},
		{"mismatched lengths", []float32{1, 1}, []float32{1, 1, 1}, 2.0},
		{"empty vectors", []float32{}, []float32{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, dotProduct(tt.a, tt.b), 0.0001)
		})
	}
}
