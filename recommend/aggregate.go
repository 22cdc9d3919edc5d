package recommend

import "github.com/sievelabs/assessrec/core"

// Aggregate merges the primary result set followed by each auxiliary result
// set, in the order the auxiliary queries were generated, into a single
// sequence deduplicated by candidate identity (the catalog URL).
//
// The first occurrence of an assessment wins: its vector score is retained
// and later duplicates are discarded. Output order is insertion order, not
// score order; ranking is the scorer's job.
func Aggregate(resultSets ...[]core.Candidate) []core.Candidate {
	seen := make(map[string]bool)
	var merged []core.Candidate

	for _, results := range resultSets {
		for _, candidate := range results {
			if seen[candidate.URL] {
				continue
			}
			seen[candidate.URL] = true
			merged = append(merged, candidate)
		}
	}

	return merged
}
