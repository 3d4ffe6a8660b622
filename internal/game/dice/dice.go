// Package dice parses and rolls GURPS-style dice expressions such as "3d",
// "1d-2" and "2d+1". Dice are six-sided unless the expression says otherwise.
package dice

import (
	"fmt"
	"strings"
)

// RollResult is one evaluated Expression.
//
// Invariant: len(Dice) == Expr.Count.
type RollResult struct {
	// Label names what was rolled, e.g. "swing". May be empty.
	Label string
	Expr  Expression
	Dice  []int
}

// Total returns the sum of the dice plus the expression's modifier.
func (r RollResult) Total() int {
	total := r.Expr.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String renders the roll as "swing 1d+2: [4] +2 = 6". The modifier term is
// omitted when it is zero.
func (r RollResult) String() string {
	var b strings.Builder
	if r.Label != "" {
		b.WriteString(r.Label + " ")
	}
	fmt.Fprintf(&b, "%s: %v", r.Expr, r.Dice)
	if r.Expr.Modifier != 0 {
		fmt.Fprintf(&b, " %+d", r.Expr.Modifier)
	}
	fmt.Fprintf(&b, " = %d", r.Total())
	return b.String()
}

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
