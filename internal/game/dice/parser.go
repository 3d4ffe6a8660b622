package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSides is the die size assumed when an expression omits it.
const DefaultSides = 6

// Expression represents a parsed dice expression ready to be rolled.
//
// Invariant: Count >= 1, Sides >= 2 after successful Parse.
type Expression struct {
	Count    int // number of dice
	Sides    int // faces per die
	Modifier int // flat modifier (may be negative)
}

// Parse parses a dice expression.
// Supported forms: "d", "3d", "1d-2", "2d+1", "3d6", "2d6+3".
//
// Postcondition: Returns a valid Expression or a descriptive error.
func Parse(expr string) (Expression, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}

	dIdx := strings.IndexByte(s, 'd')
	if dIdx < 0 {
		return Expression{}, fmt.Errorf("dice: missing 'd' in expression %q", expr)
	}

	count := 1
	if countStr := s[:dIdx]; countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", expr, err)
		}
		if n <= 0 {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", expr)
		}
		count = n
	}

	rest := s[dIdx+1:]
	sidesStr, modStr := rest, ""
	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		sidesStr, modStr = rest[:i], rest[i:]
	}

	sides := DefaultSides
	if sidesStr != "" {
		n, err := strconv.Atoi(sidesStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", expr, err)
		}
		if n < 2 {
			return Expression{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 2", expr)
		}
		sides = n
	}

	modifier := 0
	if modStr != "" {
		n, err := strconv.Atoi(modStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", expr, err)
		}
		modifier = n
	}

	return Expression{Count: count, Sides: sides, Modifier: modifier}, nil
}

// MustParse parses expr and panics on error. Useful for package-level tables.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}

// String renders e in GURPS notation, omitting the die size for d6.
func (e Expression) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(e.Count))
	b.WriteByte('d')
	if e.Sides != DefaultSides {
		b.WriteString(strconv.Itoa(e.Sides))
	}
	if e.Modifier != 0 {
		fmt.Fprintf(&b, "%+d", e.Modifier)
	}
	return b.String()
}

// Min returns the lowest possible total.
func (e Expression) Min() int {
	return e.Count + e.Modifier
}

// Max returns the highest possible total.
func (e Expression) Max() int {
	return e.Count*e.Sides + e.Modifier
}

// Average returns the expected total.
func (e Expression) Average() float64 {
	return float64(e.Count)*float64(e.Sides+1)/2 + float64(e.Modifier)
}
