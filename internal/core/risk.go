package core

// defaultWeight is applied to any category outside the table, including
// "Unknown" and labels the model invented.
const defaultWeight = 1

// RiskTable maps compliance categories to integer risk weights. It is built
// once at startup and never mutated afterwards.
type RiskTable struct {
	weights map[string]int
}

// DefaultRiskWeights returns the standard category weighting
func DefaultRiskWeights() map[string]int {
	return map[string]int{
		"Secrecy":                        4,
		"Market Manipulation/Misconduct": 5,
		"Market Bribery":                 5,
		"Change in Communication":        3,
		"Complaints":                     2,
		"Employee Ethics":                3,
	}
}

// NewRiskTable creates a risk table from the given weights. The map is
// copied so later mutation by the caller cannot leak in.
func NewRiskTable(weights map[string]int) *RiskTable {
	w := make(map[string]int, len(weights))
	for k, v := range weights {
		w[k] = v
	}
	return &RiskTable{weights: w}
}

// Weight returns the risk weight for a category, defaulting to 1 for any
// category not in the table
func (t *RiskTable) Weight(category string) int {
	if w, ok := t.weights[category]; ok {
		return w
	}
	return defaultWeight
}

// Score computes the priority of an analyzed email. Compliant emails score 0
// unconditionally; the category is never consulted in that case.
func (t *RiskTable) Score(a Analysis) int {
	if !a.IsNonCompliant {
		return 0
	}
	return t.Weight(a.Category)
}
