package ai

// IntentCategories defines the fixed vocabulary for intent classification.
// Classifiers must only emit categories from this list; anything else is
// dropped during normalization.
var IntentCategories = []string{
	"tech",
	"sales",
	"admin",
	"leadership",
	"marketing",
	"general",
	"finance",
	"hr",
	"operations",
}

// ValidCategory reports whether a category belongs to the fixed vocabulary.
func ValidCategory(category string) bool {
	for _, c := range IntentCategories {
		if c == category {
			return true
		}
	}
	return false
}
