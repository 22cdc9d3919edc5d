package core

import (
	"testing"
)

func TestIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{
			name: "same url produces same ID",
			url:  "https://example.com/catalog/view/python-test/",
		},
		{
			name: "empty string",
			url:  "",
		},
		{
			name: "long url",
			url:  "https://example.com/products/product-catalog/view/some-very-long-assessment-name-with-many-segments/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromURL(tt.url)
			id2 := IDFromURL(tt.url)

			if id1 != id2 {
				t.Errorf("IDFromURL() produced different IDs for same url: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromURL_Different(t *testing.T) {
	id1 := IDFromURL("https://example.com/catalog/view/a/")
	id2 := IDFromURL("https://example.com/catalog/view/b/")

	if id1 == id2 {
		t.Errorf("IDFromURL() produced same ID for different urls")
	}
}

func TestAssessment_HasTestType(t *testing.T) {
	a := &Assessment{
		URL:       "https://example.com/catalog/view/x/",
		Name:      "X",
		TestTypes: []string{"K", "S"},
	}

	if !a.HasTestType("K") {
		t.Error("expected K to be present")
	}
	if a.HasTestType("P") {
		t.Error("expected P to be absent")
	}
}

func TestNeutralIntent(t *testing.T) {
	intent := NeutralIntent()

	if len(intent.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", intent.Categories)
	}
	if len(intent.ExplicitKeywords) != 0 {
		t.Errorf("ExplicitKeywords = %v, want empty", intent.ExplicitKeywords)
	}
	if intent.Behavioral {
		t.Error("Behavioral = true, want false")
	}
	if intent.DurationMax != 0 {
		t.Errorf("DurationMax = %d, want 0", intent.DurationMax)
	}
	if intent.IsEntryLevel {
		t.Error("IsEntryLevel = true, want false")
	}
}

func TestIntent_HasCategory(t *testing.T) {
	intent := Intent{Categories: []string{"tech", "sales"}}

	if !intent.HasCategory("tech") {
		t.Error("expected tech to be present")
	}
	if intent.HasCategory("hr") {
		t.Error("expected hr to be absent")
	}
	if NeutralIntent().HasCategory("tech") {
		t.Error("neutral intent should have no categories")
	}
}

func TestTestTypeLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"A", "Ability & Aptitude"},
		{"K", "Knowledge & Skills"},
		{"P", "Personality & Behaviour"},
		{"S", "Simulations"},
		{"Z", "Z"}, // unknown code passes through
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := TestTypeLabel(tt.code); got != tt.want {
				t.Errorf("TestTypeLabel(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestTestTypeLabels_PreservesOrder(t *testing.T) {
	got := TestTypeLabels([]string{"K", "A", "Z"})
	want := []string{"Knowledge & Skills", "Ability & Aptitude", "Z"}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
