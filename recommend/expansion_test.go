package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sievelabs/assessrec/core"
)

func TestPlan_NeutralIntent(t *testing.T) {
	planner := NewPlanner(DefaultExpansionRules())

	queries := planner.Plan(core.NeutralIntent())
	assert.Empty(t, queries)
}

func TestPlan_CategoryRules(t *testing.T) {
	planner := NewPlanner(DefaultExpansionRules())

	tests := []struct {
		category string
		expected string
	}{
		{"sales", "sales negotiation business development commercial awareness"},
		{"leadership", "leadership management executive strategy people management opq"},
		{"admin", "administrative clerical data entry typing microsoft office"},
		{"marketing", "marketing digital brand strategy creative"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			queries := planner.Plan(core.Intent{Categories: []string{tt.category}})
			assert.Equal(t, []string{tt.expected}, queries)
		})
	}
}

func TestPlan_TechFansOutExplicitKeywords(t *testing.T) {
	planner := NewPlanner(DefaultExpansionRules())

	intent := core.Intent{
		Categories:       []string{"tech"},
		ExplicitKeywords: []string{"python", "sql"},
	}

	queries := planner.Plan(intent)
	assert.Equal(t, []string{"python", "sql"}, queries)
}

func TestPlan_BehavioralRule(t *testing.T) {
	planner := NewPlanner(DefaultExpansionRules())

	queries := planner.Plan(core.Intent{Behavioral: true})
	assert.Equal(t, []string{"workplace collaboration interpersonal skills teamwork communication culture"}, queries)
}

func TestPlan_RulesFireIndependently(t *testing.T) {
	planner := NewPlanner(DefaultExpansionRules())

	intent := core.Intent{
		Categories:       []string{"sales", "tech"},
		ExplicitKeywords: []string{"sql"},
		Behavioral:       true,
	}

	queries := planner.Plan(intent)
	// Fixed rule-table order: sales, tech keywords, behavioral.
	assert.Equal(t, []string{
		"sales negotiation business development commercial awareness",
		"sql",
		"workplace collaboration interpersonal skills teamwork communication culture",
	}, queries)
}

func TestPlan_CustomRuleTable(t *testing.T) {
	planner := NewPlanner([]ExpansionRule{
		categoryRule("operations", "logistics supply chain planning"),
	})

	queries := planner.Plan(core.Intent{Categories: []string{"operations"}})
	assert.Equal(t, []string{"logistics supply chain planning"}, queries)
}
