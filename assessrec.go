// Copyright 2026 SieveLabs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package assessrec

import (
	"log/slog"

	"github.com/sievelabs/assessrec/ai"
	"github.com/sievelabs/assessrec/ai/openai"
	"github.com/sievelabs/assessrec/ingestion"
	"github.com/sievelabs/assessrec/recommend"
	"github.com/sievelabs/assessrec/retrieval"
	"github.com/sievelabs/assessrec/storage"
	"github.com/sievelabs/assessrec/storage/badger"
)

// Engine wires the catalog store and the AI provider together and hands
// out the pipeline components built on top of them.
type Engine struct {
	backend  *badger.Backend
	catalog  storage.CatalogRepository
	provider ai.AIProvider
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig sets the configuration used to build the default AI provider.
func WithAIConfig(cfg *ai.Config) EngineOption {
	return func(o *engineOptions) {
		o.aiConfig = cfg
	}
}

// WithAIProvider supplies a prebuilt AI provider instead of building one
// from config. Used with the mock provider in tests and evaluation runs.
func WithAIProvider(provider ai.AIProvider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithInMemoryStorage runs the catalog store without persistence.
func WithInMemoryStorage() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// NewEngine opens the catalog database at filePath and builds the AI
// provider.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	catalog := badger.NewCatalogRepositoryWithBackend(backend)

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	return &Engine{
		backend:  backend,
		catalog:  catalog,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

func (e *Engine) Close() error {
	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}

	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (e *Engine) CatalogRepository() storage.CatalogRepository {
	return e.catalog
}

func (e *Engine) NewIndexer(opts ...ingestion.Option) (*ingestion.Indexer, error) {
	return ingestion.NewIndexer(e.catalog, e.provider.Embedder(), opts...)
}

func (e *Engine) NewRetriever(opts ...retrieval.Option) (*retrieval.Retriever, error) {
	return retrieval.NewRetriever(e.catalog, e.provider.Embedder(), opts...)
}

func (e *Engine) NewRecommender(opts ...recommend.Option) (*recommend.Recommender, error) {
	retriever, err := e.NewRetriever()
	if err != nil {
		return nil, err
	}
	return recommend.NewRecommender(retriever, e.provider.IntentClassifier(), opts...)
}
