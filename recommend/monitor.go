package recommend

import "github.com/sievelabs/assessrec/core"

// RankMonitor provides hooks to observe the recommendation pipeline.
// Implement this interface to track intermediate steps for explainability.
type RankMonitor interface {
	Start(query string, topK int)
	AfterClassification(intent core.Intent)
	AfterPrimaryRetrieval(candidates []core.Candidate)
	AfterExpansion(queries []string)
	AfterAuxiliaryRetrieval(query string, candidates []core.Candidate)
	AfterAggregation(candidates []core.Candidate)
	AfterScoring(scored []core.ScoredCandidate)
	Finish(results []core.Candidate)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ int)                                {}
func (n *noopMonitor) AfterClassification(_ core.Intent)                    {}
func (n *noopMonitor) AfterPrimaryRetrieval(_ []core.Candidate)             {}
func (n *noopMonitor) AfterExpansion(_ []string)                            {}
func (n *noopMonitor) AfterAuxiliaryRetrieval(_ string, _ []core.Candidate) {}
func (n *noopMonitor) AfterAggregation(_ []core.Candidate)                  {}
func (n *noopMonitor) AfterScoring(_ []core.ScoredCandidate)                {}
func (n *noopMonitor) Finish(_ []core.Candidate)                            {}
