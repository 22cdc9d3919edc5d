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


package recommend

import (
	"sort"
	"strings"

	"github.com/sievelabs/assessrec/core"
)

// Keyword match rewards.
const (
	nameMatchPoints        = 30.0
	descriptionMatchPoints = 10.0
)

// categoryBonus awards points when a candidate satisfies its constraints.
// A rule fires when the candidate carries one of the codes (if any are
// listed) AND its lowercase name contains one of the tokens (if any are
// listed). Empty constraint slices impose nothing.
type categoryBonus struct {
	codes  []string
	tokens []string
	points float64
}

func (b categoryBonus) matches(name string, candidate *core.Candidate) bool {
	if len(b.codes) > 0 && !hasAnyCode(candidate, b.codes) {
		return false
	}
	if len(b.tokens) > 0 && !containsAny(name, b.tokens) {
		return false
	}
	return true
}

// categoryBonuses is the per-category rule table. Scores are additive;
// every matching rule contributes independently.
var categoryBonuses = map[string][]categoryBonus{
	"tech": {
		{codes: []string{core.TestTypeKnowledge}, points: 5},
		{codes: []string{core.TestTypeSimulation}, tokens: []string{"coding", "automata"}, points: 15},
		{tokens: []string{"development", "engineering", "programming"}, points: 5},
	},
	"sales": {
		{tokens: []string{"sales"}, points: 20},
		{tokens: []string{"negotiation", "commercial"}, points: 10},
	},
	"leadership": {
		{tokens: []string{"manager", "leader", "executive", "strategic"}, points: 15},
		{tokens: []string{"opq", "leadership"}, points: 15},
	},
	"admin": {
		{tokens: []string{"admin", "clerical", "typing", "data entry", "office", "outlook", "word"}, points: 20},
	},
	"marketing": {
		{tokens: []string{"marketing", "brand", "advertising", "seo", "digital"}, points: 20},
	},
	"finance": {
		{tokens: []string{"accounting", "financial", "payable", "receivable", "money"}, points: 20},
	},
	"hr": {
		{tokens: []string{"human resources", "training"}, points: 20},
	},
	"general": {
		{tokens: []string{"verify", "reasoning", "calculation", "comprehension"}, points: 25},
		{codes: []string{core.TestTypeAbility}, points: 10},
	},
}

var behavioralBonuses = []categoryBonus{
	{codes: []string{core.TestTypePersonality, core.TestTypeBiodata, core.TestTypeCompetency}, points: 15},
	{tokens: []string{"communication", "team", "interpersonal", "motivation", "personality"}, points: 15},
}

var entryLevelBonuses = []categoryBonus{
	{tokens: []string{"graduate", "entry level", "screen", "fundamental", "basic"}, points: 15},
}

// customerServiceTokens flags cross-domain noise suppressed on purely
// technical queries.
var customerServiceTokens = []string{"customer service", "call center"}

// wellKnownLanguages are programming-language tokens matched literally
// against the raw query text; "java" and "javascript" get dedicated
// handling for their substring collision.
var wellKnownLanguages = []string{"python", "sql", "c++", "c#", ".net", "react", "node.js", "js"}

// generalSignalTokens activate the "general" bonus table off the raw query
// even when the classifier did not emit the category.
var generalSignalTokens = []string{"aptitude", "reasoning", "cognitive", "ability"}

// buildSearchKeywords assembles the final keyword set for scoring: the
// intent's explicit keywords run through the normalizer, plus any
// programming-language token literally present in the raw query.
func buildSearchKeywords(query string, intent core.Intent) []string {
	q := strings.ToLower(query)
	keywords := NormalizeKeywords(intent.ExplicitKeywords)

	contains := func(kw string) bool {
		for _, k := range keywords {
			if strings.EqualFold(k, kw) {
				return true
			}
		}
		return false
	}

	// "javascript" anywhere in the query trumps a bare "java"; only credit
	// "java" when the query can't mean JavaScript.
	if strings.Contains(q, "java script") || strings.Contains(q, "javascript") {
		if !contains("javascript") {
			keywords = append(keywords, "javascript")
		}
	} else if strings.Contains(q, "java") {
		if !contains("java") {
			keywords = append(keywords, "java")
		}
	}

	for _, lang := range wellKnownLanguages {
		if strings.Contains(q, lang) && !contains(lang) {
			keywords = append(keywords, lang)
		}
	}

	return NormalizeKeywords(keywords)
}

// keywordPoints scores a single keyword against a candidate's name and
// description. A "javascript" hit must never double-count as a "java" hit.
func keywordPoints(keyword, name, description string) float64 {
	switch strings.ToLower(keyword) {
	case "javascript", "js":
		if strings.Contains(name, "javascript") {
			return nameMatchPoints
		}
		if strings.Contains(description, "javascript") {
			return descriptionMatchPoints
		}
	case "java":
		if !strings.Contains(name, "javascript") && strings.Contains(name, "java") {
			return nameMatchPoints
		}
		if !strings.Contains(description, "javascript") && strings.Contains(description, "java") {
			return descriptionMatchPoints
		}
	default:
		kw := strings.ToLower(keyword)
		if strings.Contains(name, kw) {
			return nameMatchPoints
		}
		if strings.Contains(description, kw) {
			return descriptionMatchPoints
		}
	}
	return 0
}

// ScoreCandidates computes an additive heuristic score for every candidate
// and returns the candidates sorted by score descending. The sort is stable:
// equal scores keep aggregator insertion order.
//
// The function is pure and total; missing optional fields (duration,
// description, test types) contribute zero to the relevant rules.
func ScoreCandidates(candidates []core.Candidate, query string, intent core.Intent) []core.ScoredCandidate {
	q := strings.ToLower(query)
	keywords := buildSearchKeywords(query, intent)

	scored := make([]core.ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		score := 0.0
		name := strings.ToLower(candidate.Name)
		description := strings.ToLower(candidate.Description)

		for _, kw := range keywords {
			score += keywordPoints(kw, name, description)
		}

		for _, category := range intent.Categories {
			for _, bonus := range categoryBonuses[category] {
				if bonus.matches(name, &candidate) {
					score += bonus.points
				}
			}
		}

		// The finance and general tables also fire off raw-query signals,
		// independent of the classifier's category output.
		if !intent.HasCategory("finance") && strings.Contains(q, "accounting") {
			for _, bonus := range categoryBonuses["finance"] {
				if bonus.matches(name, &candidate) {
					score += bonus.points
				}
			}
		}
		if !intent.HasCategory("general") && containsAny(q, generalSignalTokens) {
			for _, bonus := range categoryBonuses["general"] {
				if bonus.matches(name, &candidate) {
					score += bonus.points
				}
			}
		}

		if intent.Behavioral {
			for _, bonus := range behavioralBonuses {
				if bonus.matches(name, &candidate) {
					score += bonus.points
				}
			}
		}

		if intent.IsEntryLevel {
			for _, bonus := range entryLevelBonuses {
				if bonus.matches(name, &candidate) {
					score += bonus.points
				}
			}
		}

		if intent.DurationMax > 0 && candidate.Duration > 0 {
			switch {
			case candidate.Duration <= intent.DurationMax:
				score += 10
			case candidate.Duration <= intent.DurationMax+15:
				// grace band, no adjustment
			default:
				score -= 15
			}
		}

		if intent.HasCategory("tech") && !intent.HasCategory("admin") && !intent.HasCategory("sales") {
			if containsAny(name, customerServiceTokens) {
				score -= 20
			}
		}

		scored = append(scored, core.ScoredCandidate{Candidate: candidate, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// containsAny reports whether s contains any of the tokens.
func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

// hasAnyCode reports whether the candidate carries any of the test-type codes.
func hasAnyCode(candidate *core.Candidate, codes []string) bool {
	for _, code := range codes {
		if candidate.HasTestType(code) {
			return true
		}
	}
	return false
}
