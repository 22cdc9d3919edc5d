package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog entities.
// It is derived from content-based hashing of the canonical source URL.
type ID uint64

// IDFromURL generates a deterministic ID from a canonical URL using BLAKE2b hashing.
// This ensures that identical URLs produce identical IDs across catalog rebuilds.
func IDFromURL(url string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(url))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Assessment is one catalog item: a single product in the assessment catalog.
// It may be enriched with an embedding vector during indexing.
type Assessment struct {
	URL             string    // Canonical source URL, the primary identity; never mutated
	Name            string
	Description     string
	Duration        int       // Completion time in minutes; 0 means unknown
	RemoteSupport   bool
	AdaptiveSupport bool
	TestTypes       []string  // Single-letter test-type codes; may be empty
	Vector          []float32 // Embedding vector for semantic search (populated by the indexer)
	InsertedAt      time.Time // When the record was inserted into the catalog
	UpdatedAt       time.Time // When the record was last updated
}

// ID returns the content-derived identifier of the assessment.
func (a *Assessment) ID() ID {
	return IDFromURL(a.URL)
}

// HasTestType reports whether the assessment carries the given test-type code.
func (a *Assessment) HasTestType(code string) bool {
	for _, t := range a.TestTypes {
		if t == code {
			return true
		}
	}
	return false
}

// Candidate is one catalog item surfaced by retrieval for a given query.
// It is a per-request copy of the catalog record plus the similarity score
// that surfaced it. Candidates live only for one pipeline invocation.
type Candidate struct {
	Assessment
	VectorScore float32 // Similarity score from retrieval; advisory only
}

// Intent is the normalized, structured interpretation of a free-text query.
// An Intent is always fully populated: when classification fails, the neutral
// Intent is substituted, so downstream code never distinguishes "failed" from
// "concluded neutral".
type Intent struct {
	Categories       []string // Drawn from ai.IntentCategories; may be empty
	ExplicitKeywords []string // Free-text skill/tool tokens extracted from the query
	Behavioral       bool     // True if the query is about soft skills or culture fit
	DurationMax      int      // Soft ceiling on acceptable duration in minutes; 0 means unset
	IsEntryLevel     bool
}

// NeutralIntent returns the Intent substituted when classification is
// unavailable or concludes nothing.
func NeutralIntent() Intent {
	return Intent{
		Categories:       []string{},
		ExplicitKeywords: []string{},
	}
}

// HasCategory reports whether the intent contains the given category.
func (i Intent) HasCategory(category string) bool {
	for _, c := range i.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ScoredCandidate pairs a candidate with its heuristic relevance score.
// The score is an explainable additive sum and can be negative.
type ScoredCandidate struct {
	Candidate Candidate
	Score     float64
}
