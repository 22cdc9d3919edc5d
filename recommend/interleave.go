package recommend

import (
	"strings"

	"github.com/sievelabs/assessrec/core"
)

// Interleave selects the final ordered output of length <= topK from the
// score-sorted sequence.
//
// When the intent names at least one category AND signals a behavioral need,
// the sorted candidates are partitioned into three buckets:
//
//   - soft: personality/biodata/competency codes or a communication-theme
//     name, checked first (soft wins when a candidate qualifies for both)
//   - hard: knowledge/simulation/ability codes
//   - other: neither
//
// and the output is built round-robin hard, soft, hard, soft... draining
// the other bucket only once both hard and soft are exhausted. Otherwise
// the output is simply the first topK of the sorted sequence.
func Interleave(scored []core.ScoredCandidate, topK int, intent core.Intent) []core.Candidate {
	if topK <= 0 {
		return nil
	}

	if len(intent.Categories) == 0 || !intent.Behavioral {
		limit := topK
		if len(scored) < limit {
			limit = len(scored)
		}
		results := make([]core.Candidate, 0, limit)
		for _, sc := range scored[:limit] {
			results = append(results, sc.Candidate)
		}
		return results
	}

	var hard, soft, other []core.Candidate
	for _, sc := range scored {
		candidate := sc.Candidate
		name := strings.ToLower(candidate.Name)

		isSoft := candidate.HasTestType(core.TestTypePersonality) ||
			candidate.HasTestType(core.TestTypeBiodata) ||
			candidate.HasTestType(core.TestTypeCompetency) ||
			strings.Contains(name, "communication")
		isHard := candidate.HasTestType(core.TestTypeKnowledge) ||
			candidate.HasTestType(core.TestTypeSimulation) ||
			candidate.HasTestType(core.TestTypeAbility)

		switch {
		case isSoft:
			soft = append(soft, candidate)
		case isHard:
			hard = append(hard, candidate)
		default:
			other = append(other, candidate)
		}
	}

	results := make([]core.Candidate, 0, topK)
	for len(results) < topK {
		if len(hard) > 0 {
			results = append(results, hard[0])
			hard = hard[1:]
		}
		if len(results) >= topK {
			break
		}

		if len(soft) > 0 {
			results = append(results, soft[0])
			soft = soft[1:]
		}
		if len(results) >= topK {
			break
		}

		if len(hard) == 0 && len(soft) == 0 {
			if len(other) == 0 {
				break
			}
			results = append(results, other[0])
			other = other[1:]
		}
	}

	return results
}
