package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeywords_AddsSynonyms(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"js to javascript", []string{"js"}, []string{"js", "javascript"}},
		{"react to reactjs", []string{"react"}, []string{"react", "reactjs"}},
		{"qa to testing", []string{"qa"}, []string{"qa", "testing"}},
		{"ml to machine learning", []string{"ml"}, []string{"ml", "machine learning"}},
		{"aptitude to verify", []string{"aptitude"}, []string{"aptitude", "verify"}},
		{"reasoning to verify", []string{"reasoning"}, []string{"reasoning", "verify"}},
		{"no synonym", []string{"python"}, []string{"python"}},
		{"empty input", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.expected, NormalizeKeywords(tt.input))
		})
	}
}

func TestNormalizeKeywords_CaseInsensitiveLookup(t *testing.T) {
	result := NormalizeKeywords([]string{"JS", "Aptitude"})
	assert.Contains(t, result, "javascript")
	assert.Contains(t, result, "verify")
	// Originals kept as given
	assert.Contains(t, result, "JS")
	assert.Contains(t, result, "Aptitude")
}

func TestNormalizeKeywords_Monotonic(t *testing.T) {
	inputs := [][]string{
		{"js", "python", "qa"},
		{"java"},
		{"aptitude", "reasoning"},
		{},
	}

	for _, input := range inputs {
		output := NormalizeKeywords(input)
		for _, kw := range input {
			assert.Contains(t, output, kw, "output must contain every input token")
		}
	}
}

func TestNormalizeKeywords_Idempotent(t *testing.T) {
	input := []string{"js", "react", "aptitude", "python"}

	once := NormalizeKeywords(input)
	twice := NormalizeKeywords(once)

	assert.ElementsMatch(t, once, twice)
}

func TestNormalizeKeywords_Deduplicates(t *testing.T) {
	result := NormalizeKeywords([]string{"js", "javascript", "JS"})
	assert.ElementsMatch(t, []string{"js", "javascript"}, result)
}
