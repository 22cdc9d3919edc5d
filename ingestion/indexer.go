package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/sievelabs/assessrec/ai"
	"github.com/sievelabs/assessrec/core"
	"github.com/sievelabs/assessrec/storage"
)

const defaultBatchSize = 32

// Indexer builds embedding vectors for catalog assessments and persists them.
// Batches are embedded concurrently through a bounded worker pool.
type Indexer struct {
	catalog        storage.CatalogRepository
	embedder       ai.Embedder
	pool           *ants.Pool
	batchSize      int
	maxRetries     int
	retryBaseDelay time.Duration
	logger         *slog.Logger
}

// Option configures an Indexer.
type Option func(*Indexer) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}
		if ix.pool != nil {
			ix.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		ix.pool = pool
		return nil
	}
}

// WithBatchSize sets how many assessments are embedded per request.
// Default is 32.
func WithBatchSize(size int) Option {
	return func(ix *Indexer) error {
		if size > 0 {
			ix.batchSize = size
		}
		return nil
	}
}

// WithRetry sets the retry policy for embedding API calls.
// Defaults: 3 attempts, 1s base delay.
func WithRetry(maxRetries int, baseDelay time.Duration) Option {
	return func(ix *Indexer) error {
		if maxRetries > 0 {
			ix.maxRetries = maxRetries
		}
		if baseDelay > 0 {
			ix.retryBaseDelay = baseDelay
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Indexer) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// NewIndexer creates a new indexer.
func NewIndexer(catalog storage.CatalogRepository, embedder ai.Embedder, opts ...Option) (*Indexer, error) {
	if catalog == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	ix := &Indexer{
		catalog:        catalog,
		embedder:       embedder,
		pool:           pool,
		batchSize:      defaultBatchSize,
		maxRetries:     3,
		retryBaseDelay: time.Second,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(ix); optErr != nil {
			ix.Release()
			return nil, optErr
		}
	}

	return ix, nil
}

// IndexAssessments embeds the given assessments and persists them to the
// catalog. Existing entries with the same URL are overwritten; vectors are
// normalized to unit length so retrieval can use dot-product similarity.
//
// Batches run concurrently; the first batch error is returned after all
// in-flight batches finish.
func (ix *Indexer) IndexAssessments(ctx context.Context, assessments []*core.Assessment) error {
	if len(assessments) == 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	recordErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for start := 0; start < len(assessments); start += ix.batchSize {
		end := start + ix.batchSize
		if end > len(assessments) {
			end = len(assessments)
		}
		batch := assessments[start:end]

		wg.Add(1)
		submitErr := ix.pool.Submit(func() {
			defer wg.Done()
			if err := ix.processBatch(ctx, batch); err != nil {
				ix.logger.Error("error indexing batch", "size", len(batch), "err", err)
				recordErr(err)
			}
		})
		if submitErr != nil {
			wg.Done()
			recordErr(submitErr)
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}

	ix.logger.Info("indexing complete", "assessments", len(assessments))
	return nil
}

// ReindexCatalog re-embeds every assessment already stored in the catalog.
// Use after changing the embedding model or the document format.
func (ix *Indexer) ReindexCatalog(ctx context.Context) error {
	var all []*core.Assessment
	err := ix.catalog.AllAssessments(ctx, func(a *core.Assessment) error {
		all = append(all, a)
		return nil
	})
	if err != nil {
		return err
	}
	return ix.IndexAssessments(ctx, all)
}

// processBatch embeds one batch with retry and persists it.
func (ix *Indexer) processBatch(ctx context.Context, batch []*core.Assessment) error {
	texts := make([]string, len(batch))
	for i, a := range batch {
		texts[i] = BuildEmbeddingDocument(a)
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = ix.embedder.EmbedTexts(ctx, texts)
		return err
	}, ix.maxRetries, ix.retryBaseDelay)
	if err != nil {
		return err
	}

	if len(embeddings) != len(batch) {
		return ErrEmbeddingCountMismatch
	}

	for i := range batch {
		batch[i].Vector = NormalizeVector(embeddings[i])
	}

	_, err = ix.catalog.AddAssessments(ctx, batch...)
	return err
}

// Release releases the worker pool.
// The indexer should not be used after calling Release.
func (ix *Indexer) Release() {
	if ix.pool != nil {
		ix.pool.Release()
	}
}
