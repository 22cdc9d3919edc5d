package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/sievelabs/assessrec/core"
	"github.com/sievelabs/assessrec/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a catalog repository backed by a database at path.
func NewCatalogRepository(path string) (storage.CatalogRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return newCatalogRepository(backend), nil
}

// newCatalogRepository wraps an already-open backend.
func newCatalogRepository(backend *Backend) *CatalogRepository {
	return &CatalogRepository{backend: backend}
}

// NewCatalogRepositoryWithBackend wraps an already-open backend. The
// caller keeps ownership of the backend and is responsible for closing
// it exactly once.
func NewCatalogRepositoryWithBackend(backend *Backend) storage.CatalogRepository {
	return newCatalogRepository(backend)
}

// Close closes the underlying backend.
func (r *CatalogRepository) Close() error {
	return r.backend.Close()
}

// FindSimilar delegates to the backend.
func (r *CatalogRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.Candidate, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *CatalogRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddAssessments adds one or more assessments to storage.
// IDs are content-derived from the URL, so adding the same URL twice
// overwrites the stored copy rather than duplicating it.
func (r *CatalogRepository) AddAssessments(ctx context.Context, assessments ...*core.Assessment) ([]*core.Assessment, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, assessment := range assessments {
			if err := core.ValidateAssessment(assessment); err != nil {
				return err
			}

			if assessment.InsertedAt.IsZero() {
				assessment.InsertedAt = now
			}
			assessment.UpdatedAt = now

			value, err := storage.MarshalAssessment(assessment)
			if err != nil {
				return err
			}
			if err := tx.Set(makeAssessmentKey(assessment.ID()), value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return assessments, err
}

// UpdateAssessments updates existing assessments.
func (r *CatalogRepository) UpdateAssessments(ctx context.Context, assessments ...*core.Assessment) ([]*core.Assessment, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, assessment := range assessments {
			key := makeAssessmentKey(assessment.ID())

			old, err := r.readAssessment(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			assessment.InsertedAt = old.InsertedAt
			assessment.UpdatedAt = time.Now().UTC()

			value, err := storage.MarshalAssessment(assessment)
			if err != nil {
				return err
			}
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return assessments, err
}

// DeleteAssessments removes assessments by their IDs.
func (r *CatalogRepository) DeleteAssessments(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeAssessmentKey(id)

			record, err := r.readAssessment(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetAssessment retrieves a single assessment by ID.
func (r *CatalogRepository) GetAssessment(ctx context.Context, id core.ID) (*core.Assessment, error) {
	var result *core.Assessment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readAssessment(tx, makeAssessmentKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAssessments retrieves multiple assessments by their IDs.
// Missing entries are skipped without error.
func (r *CatalogRepository) GetAssessments(ctx context.Context, ids ...core.ID) ([]*core.Assessment, error) {
	results := make([]*core.Assessment, 0, len(ids))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			record, err := r.readAssessment(tx, makeAssessmentKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)
	return results, err
}

// AllAssessments iterates over every assessment in the catalog.
func (r *CatalogRepository) AllAssessments(ctx context.Context, fn func(a *core.Assessment) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(assessmentPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var assessment *core.Assessment
			err := iter.Item().Value(func(val []byte) error {
				var err error
				assessment, err = storage.UnmarshalAssessment(val)
				return err
			})
			if err != nil {
				return err
			}
			if assessment == nil {
				continue
			}
			if err := fn(assessment); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// Count returns the number of assessments in the catalog.
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(assessmentPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readAssessment reads an assessment by key within a transaction.
// Returns nil (not an error) if the key does not exist.
func (r *CatalogRepository) readAssessment(tx *badger.Txn, key []byte) (*core.Assessment, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var assessment *core.Assessment
	err = item.Value(func(val []byte) error {
		var err error
		assessment, err = storage.UnmarshalAssessment(val)
		return err
	})
	return assessment, err
}
