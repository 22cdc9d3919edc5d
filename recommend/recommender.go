package recommend

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sievelabs/assessrec/ai"
	"github.com/sievelabs/assessrec/core"
)

const (
	// DefaultTopK bounds the result list when the caller does not say.
	DefaultTopK = 5

	defaultPrimaryK   = 60
	defaultAuxiliaryK = 20
)

// Searcher is the retrieval capability consumed by the pipeline.
// retrieval.Retriever satisfies it; tests substitute stubs.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]core.Candidate, error)
}

// Recommender sequences the recommendation pipeline: classify intent, run
// primary and auxiliary retrieval, aggregate, score, and interleave.
type Recommender struct {
	searcher   Searcher
	classifier ai.IntentClassifier
	planner    *Planner
	primaryK   int
	auxiliaryK int
	logger     *slog.Logger
}

// Option configures a Recommender.
type Option func(*Recommender) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recommender) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithPlanner sets a custom expansion planner.
// Default uses DefaultExpansionRules().
func WithPlanner(planner *Planner) Option {
	return func(r *Recommender) error {
		if planner != nil {
			r.planner = planner
		}
		return nil
	}
}

// WithPrimaryK sets the candidate count requested from the primary search.
// Default is 60.
func WithPrimaryK(k int) Option {
	return func(r *Recommender) error {
		if k > 0 {
			r.primaryK = k
		}
		return nil
	}
}

// WithAuxiliaryK sets the candidate count requested per auxiliary search.
// Default is 20.
func WithAuxiliaryK(k int) Option {
	return func(r *Recommender) error {
		if k > 0 {
			r.auxiliaryK = k
		}
		return nil
	}
}

// NewRecommender creates a new recommender.
func NewRecommender(searcher Searcher, classifier ai.IntentClassifier, opts ...Option) (*Recommender, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}

	r := &Recommender{
		searcher:   searcher,
		classifier: classifier,
		planner:    NewPlanner(DefaultExpansionRules()),
		primaryK:   defaultPrimaryK,
		auxiliaryK: defaultAuxiliaryK,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Recommend runs the full pipeline for a query and returns up to topK
// candidates in final presentation order. topK values <= 0 fall back to
// DefaultTopK.
func (r *Recommender) Recommend(ctx context.Context, query string, topK int) ([]core.Candidate, error) {
	return r.RecommendWithMonitor(ctx, query, topK, nil)
}

// RecommendWithMonitor runs the full pipeline with monitoring callbacks at
// each stage. Pass a nil monitor for no observation.
//
// Failure semantics: a classification failure degrades to the neutral
// intent; an auxiliary retrieval failure skips that expansion; a primary
// retrieval failure is fatal because there is nothing to rank.
func (r *Recommender) RecommendWithMonitor(ctx context.Context, query string, topK int, monitor RankMonitor) ([]core.Candidate, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	monitor.Start(query, topK)

	intent, err := r.classifier.Classify(ctx, query)
	if err != nil {
		r.logger.Warn("intent classification unavailable, proceeding with neutral intent", "query", query, "err", err)
		intent = core.NeutralIntent()
	}
	monitor.AfterClassification(intent)

	primary, err := r.searcher.Search(ctx, query, r.primaryK)
	if err != nil {
		r.logger.Error("primary retrieval failed", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterPrimaryRetrieval(primary)

	auxQueries := r.planner.Plan(intent)
	monitor.AfterExpansion(auxQueries)

	resultSets := make([][]core.Candidate, 0, len(auxQueries)+1)
	resultSets = append(resultSets, primary)
	for _, auxQuery := range auxQueries {
		auxResults, err := r.searcher.Search(ctx, auxQuery, r.auxiliaryK)
		if err != nil {
			// Auxiliary expansions only widen recall; losing one must not
			// abort the request.
			r.logger.Warn("auxiliary retrieval failed, skipping expansion", "query", auxQuery, "err", err)
			continue
		}
		monitor.AfterAuxiliaryRetrieval(auxQuery, auxResults)
		resultSets = append(resultSets, auxResults)
	}

	deduped := Aggregate(resultSets...)
	monitor.AfterAggregation(deduped)

	scored := ScoreCandidates(deduped, query, intent)
	monitor.AfterScoring(scored)

	results := Interleave(scored, topK, intent)

	// Never return an empty list while candidates exist.
	if len(results) == 0 && len(deduped) > 0 {
		limit := topK
		if len(deduped) < limit {
			limit = len(deduped)
		}
		results = deduped[:limit]
	}

	monitor.Finish(results)
	return results, nil
}
