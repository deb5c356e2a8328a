package core

import (
	"testing"
)

func TestRiskTable_CompliantScoresZero(t *testing.T) {
	table := NewRiskTable(DefaultRiskWeights())
	got := table.Score(Analysis{IsNonCompliant: false, Category: "Secrecy"})
	if got != 0 {
		t.Errorf("compliant email must score 0 regardless of category, got %d", got)
	}
}

func TestRiskTable_KnownCategories(t *testing.T) {
	table := NewRiskTable(DefaultRiskWeights())

	cases := map[string]int{
		"Secrecy":                        4,
		"Market Manipulation/Misconduct": 5,
		"Market Bribery":                 5,
		"Change in Communication":        3,
		"Complaints":                     2,
		"Employee Ethics":                3,
	}
	for category, want := range cases {
		got := table.Score(Analysis{IsNonCompliant: true, Category: category})
		if got != want {
			t.Errorf("category %q: expected %d, got %d", category, want, got)
		}
	}
}

func TestRiskTable_UnknownCategoryDefaultsToOne(t *testing.T) {
	table := NewRiskTable(DefaultRiskWeights())
	for _, category := range []string{"Nonexistent", "Unknown", ""} {
		got := table.Score(Analysis{IsNonCompliant: true, Category: category})
		if got != 1 {
			t.Errorf("category %q: expected default weight 1, got %d", category, got)
		}
	}
}

func TestNewRiskTable_CopiesWeights(t *testing.T) {
	weights := map[string]int{"Secrecy": 4}
	table := NewRiskTable(weights)
	weights["Secrecy"] = 99

	if got := table.Weight("Secrecy"); got != 4 {
		t.Errorf("table must be immutable after construction, got %d", got)
	}
}
