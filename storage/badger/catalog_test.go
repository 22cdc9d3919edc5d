package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sievelabs/assessrec/core"
	"github.com/sievelabs/assessrec/storage"
)

func newTestAssessment(url, name string) *core.Assessment {
	return &core.Assessment{
		URL:             url,
		Name:            name,
		Description:     "A test of " + name,
		Duration:        30,
		RemoteSupport:   true,
		AdaptiveSupport: false,
		TestTypes:       []string{core.TestTypeKnowledge},
	}
}

func TestAddAndGetAssessment(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	assessment := newTestAssessment("https://catalog.example.com/java-8", "Java 8 (New)")
	added, err := repo.AddAssessments(ctx, assessment)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.False(t, added[0].InsertedAt.IsZero())
	assert.False(t, added[0].UpdatedAt.IsZero())

	got, err := repo.GetAssessment(ctx, assessment.ID())
	require.NoError(t, err)
	assert.Equal(t, "Java 8 (New)", got.Name)
	assert.Equal(t, 30, got.Duration)
	assert.True(t, got.RemoteSupport)
	assert.Equal(t, []string{"K"}, got.TestTypes)
}

func TestAddAssessments_SameURLOverwrites(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	first := newTestAssessment("https://catalog.example.com/java-8", "Java 8")
	_, err = repo.AddAssessments(ctx, first)
	require.NoError(t, err)

	second := newTestAssessment("https://catalog.example.com/java-8", "Java 8 (New)")
	_, err = repo.AddAssessments(ctx, second)
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := repo.GetAssessment(ctx, first.ID())
	require.NoError(t, err)
	assert.Equal(t, "Java 8 (New)", got.Name)
}

func TestAddAssessments_Invalid(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	_, err = repo.AddAssessments(ctx, &core.Assessment{Name: "No URL"})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrEmptyURL)
}

func TestGetAssessment_NotFound(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.GetAssessment(context.Background(), core.ID(12345))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetAssessments_SkipsMissing(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	a := newTestAssessment("https://catalog.example.com/a", "A")
	b := newTestAssessment("https://catalog.example.com/b", "B")
	_, err = repo.AddAssessments(ctx, a, b)
	require.NoError(t, err)

	got, err := repo.GetAssessments(ctx, a.ID(), core.ID(99999), b.ID())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpdateAssessments(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	assessment := newTestAssessment("https://catalog.example.com/verify-g", "Verify G+")
	_, err = repo.AddAssessments(ctx, assessment)
	require.NoError(t, err)
	inserted := assessment.InsertedAt

	assessment.Vector = []float32{0.5, 0.5}
	updated, err := repo.UpdateAssessments(ctx, assessment)
	require.NoError(t, err)
	require.Len(t, updated, 1)

	got, err := repo.GetAssessment(ctx, assessment.ID())
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, got.Vector)
	assert.Equal(t, inserted.Unix(), got.InsertedAt.Unix())
}

func TestUpdateAssessments_NotFound(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	missing := newTestAssessment("https://catalog.example.com/missing", "Missing")
	_, err = repo.UpdateAssessments(context.Background(), missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteAssessments(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	assessment := newTestAssessment("https://catalog.example.com/opq", "OPQ32")
	_, err = repo.AddAssessments(ctx, assessment)
	require.NoError(t, err)

	err = repo.DeleteAssessments(ctx, assessment.ID())
	require.NoError(t, err)

	_, err = repo.GetAssessment(ctx, assessment.ID())
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = repo.DeleteAssessments(ctx, assessment.ID())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAllAssessmentsAndCount(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	urls := []string{"one", "two", "three"}
	for _, u := range urls {
		_, err := repo.AddAssessments(ctx, newTestAssessment("https://catalog.example.com/"+u, u))
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	err = repo.AllAssessments(ctx, func(a *core.Assessment) error {
		seen[a.Name] = true
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 3)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
