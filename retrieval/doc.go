// Package retrieval implements semantic search over the assessment catalog.
//
// A Retriever embeds the query text with the configured ai.Embedder and
// scans the catalog repository for the k nearest stored vectors. Results
// come back as core.Candidate values carrying the similarity score that
// surfaced them.
//
// Retrieval is deliberately recall-oriented: the default similarity
// threshold admits everything, and the recommendation pipeline's scorer
// decides relevance. Callers that want precision can tighten the
// threshold with WithMinSimilarity.
package retrieval
