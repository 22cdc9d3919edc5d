package recommend

import "strings"

// keywordSynonyms maps lowercase keyword aliases to their canonical catalog
// form. The canonical form is appended alongside the original token, never
// in place of it.
var keywordSynonyms = map[string]string{
	"js":          "javascript",
	"java script": "javascript",
	"react":       "reactjs",
	"node":        "node.js",
	"dotnet":      ".net",
	"c#":          "c#",
	"cpp":         "c++",
	"qa":          "testing",
	"ml":          "machine learning",
	"ai":          "artificial intelligence",
	"db":          "database",
	"admin":       "administration",
	"hr":          "human resources",
	"accountant":  "accounting",
	"aptitude":    "verify",
	"reasoning":   "verify",
}

// NormalizeKeywords returns the input tokens plus the canonical synonym of
// any token found in the synonym table (case-insensitive lookup), with
// duplicates removed. Inputs are never dropped, only added to, so the output
// always contains the input set and applying the function twice changes
// nothing.
func NormalizeKeywords(keywords []string) []string {
	expanded := make([]string, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))

	add := func(kw string) {
		lower := strings.ToLower(kw)
		if seen[lower] {
			return
		}
		seen[lower] = true
		expanded = append(expanded, kw)
	}

	for _, kw := range keywords {
		add(kw)
	}
	for _, kw := range keywords {
		if canonical, ok := keywordSynonyms[strings.ToLower(kw)]; ok {
			add(canonical)
		}
	}

	return expanded
}
