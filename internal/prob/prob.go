// Package prob implements the probability evaluators for the four
// supported distributions. The package is pure computation: no I/O, no
// shared state, every method is deterministic for a given receiver.
//
// Construction validates parameters; evaluation methods never fail on a
// validated receiver.
package prob

import "strconv"

// Param is an echoed input parameter, kept in entry order for display.
type Param struct {
	Name  string
	Value string
}

// Stat is a derived numeric value computed alongside a probability,
// such as a Z-score or a distribution mean.
type Stat struct {
	Name  string
	Value float64
}

// Result holds one computed probability (or density) together with the
// formula that produced it. Produced by an evaluator, consumed once by
// the display layer.
type Result struct {
	// Distribution is the human-readable distribution name.
	Distribution string
	// Event describes what was computed, e.g. "P(X = 3)".
	Event string
	// Params echoes the validated inputs in entry order.
	Params []Param
	// Value is the computed probability in [0,1], or a non-negative
	// density when Density is true.
	Value float64
	// Density marks Value as a PDF evaluation rather than a probability.
	Density bool
	// Formula is the instantiated formula string used for the computation.
	Formula string
	// Derived holds intermediate values such as Z-scores or moments.
	Derived []Stat
}

// formatNum renders a float in the shortest exact form, matching how
// parameters are echoed back to the user.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// clampUnit forces a computed probability into [0,1], absorbing
// floating-point drift at the boundaries.
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
