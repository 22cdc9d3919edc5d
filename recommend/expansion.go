package recommend

import "github.com/sievelabs/assessrec/core"

// ExpansionRule produces zero or more auxiliary retrieval queries when an
// intent matches it. Rules are evaluated independently; any subset may fire.
type ExpansionRule struct {
	// Name identifies the rule in logs and monitor callbacks.
	Name string

	// Applies reports whether the rule fires for the given intent.
	Applies func(intent core.Intent) bool

	// Queries returns the auxiliary query strings the rule contributes.
	Queries func(intent core.Intent) []string
}

// categoryRule builds a rule that contributes one fixed query string when
// the intent carries the given category.
func categoryRule(category, query string) ExpansionRule {
	return ExpansionRule{
		Name: category,
		Applies: func(intent core.Intent) bool {
			return intent.HasCategory(category)
		},
		Queries: func(core.Intent) []string {
			return []string{query}
		},
	}
}

// DefaultExpansionRules is the static rule table used by the pipeline.
// Rule order fixes the priority in which auxiliary result sets are merged.
func DefaultExpansionRules() []ExpansionRule {
	return []ExpansionRule{
		categoryRule("sales", "sales negotiation business development commercial awareness"),
		categoryRule("leadership", "leadership management executive strategy people management opq"),
		categoryRule("admin", "administrative clerical data entry typing microsoft office"),
		categoryRule("marketing", "marketing digital brand strategy creative"),
		{
			// Technical queries fan out one auxiliary search per explicit
			// keyword so narrow skills ("sql", "react") get their own recall.
			Name: "tech",
			Applies: func(intent core.Intent) bool {
				return intent.HasCategory("tech")
			},
			Queries: func(intent core.Intent) []string {
				return intent.ExplicitKeywords
			},
		},
		{
			Name: "behavioral",
			Applies: func(intent core.Intent) bool {
				return intent.Behavioral
			},
			Queries: func(core.Intent) []string {
				return []string{"workplace collaboration interpersonal skills teamwork communication culture"}
			},
		},
	}
}

// Planner turns an intent into an ordered list of auxiliary queries.
type Planner struct {
	rules []ExpansionRule
}

// NewPlanner creates a planner with the given rule table.
// Pass DefaultExpansionRules() for the standard pipeline behavior.
func NewPlanner(rules []ExpansionRule) *Planner {
	return &Planner{rules: rules}
}

// Plan evaluates every rule against the intent and returns the auxiliary
// queries in rule-table order. An empty result means no expansion applies.
func (p *Planner) Plan(intent core.Intent) []string {
	var queries []string
	for _, rule := range p.rules {
		if !rule.Applies(intent) {
			continue
		}
		queries = append(queries, rule.Queries(intent)...)
	}
	return queries
}
