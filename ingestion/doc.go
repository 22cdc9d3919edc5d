// Package ingestion builds the searchable assessment catalog.
//
// The Indexer renders one embedding document per assessment, batch-embeds
// documents through a bounded worker pool with exponential-backoff retry,
// normalizes the resulting vectors to unit length, and persists everything
// to the catalog repository. Retrieval relies on the unit-length invariant
// to use dot products as cosine similarity.
package ingestion
