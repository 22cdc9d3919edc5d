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


// Package ai provides abstractions for the AI services used by assessrec.
//
// This package defines interfaces for the two external AI capabilities the
// recommendation pipeline consumes: text embeddings (for vector retrieval)
// and intent classification (for query understanding). It follows the
// dependency inversion principle, allowing the pipeline to depend on
// abstractions rather than concrete providers.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Embedder: Generates vector embeddings from text
//   - IntentClassifier: Interprets a query as a structured core.Intent
//   - AIProvider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Failure Semantics
//
// Embedding failures are ordinary errors; the retrieval path treats a failed
// primary embedding as fatal for the request. Classification failures are
// error-as-value substitutions: the pipeline converts any IntentClassifier
// error into core.NeutralIntent() and proceeds, so a broken or unreachable
// classifier degrades result quality but never the availability of the
// recommendation endpoint.
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vector, err := provider.Embedder().EmbedText(ctx, "java developer assessment")
//	intent, err := provider.IntentClassifier().Classify(ctx, "need a python developer test")
package ai
