package core

// Test-type codes used on catalog items. Codes drive scoring bonuses and
// display-label mapping; unknown codes are tolerated everywhere.
const (
	TestTypeAbility     = "A" // Ability & Aptitude
	TestTypeBiodata     = "B" // Biodata & Situational Judgement
	TestTypeCompetency  = "C" // Competencies
	TestTypeDevelopment = "D" // Development & 360
	TestTypeExercise    = "E" // Assessment Exercises
	TestTypeKnowledge   = "K" // Knowledge & Skills
	TestTypePersonality = "P" // Personality & Behaviour
	TestTypeSimulation  = "S" // Simulations
)

// testTypeLabels maps test-type codes to human-readable display labels.
var testTypeLabels = map[string]string{
	TestTypeAbility:     "Ability & Aptitude",
	TestTypeBiodata:     "Biodata & Situational Judgement",
	TestTypeCompetency:  "Competencies",
	TestTypeDevelopment: "Development & 360",
	TestTypeExercise:    "Assessment Exercises",
	TestTypeKnowledge:   "Knowledge & Skills",
	TestTypePersonality: "Personality & Behaviour",
	TestTypeSimulation:  "Simulations",
}

// TestTypeLabel returns the display label for a test-type code.
// Unknown codes are returned unchanged.
func TestTypeLabel(code string) string {
	if label, ok := testTypeLabels[code]; ok {
		return label
	}
	return code
}

// TestTypeLabels maps a slice of test-type codes to display labels,
// preserving order. Unknown codes pass through unchanged.
func TestTypeLabels(codes []string) []string {
	labels := make([]string, len(codes))
	for i, code := range codes {
		labels[i] = TestTypeLabel(code)
	}
	return labels
}
