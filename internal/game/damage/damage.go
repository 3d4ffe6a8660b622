// Package damage maps Strength to basic thrust and swing damage.
package damage

import (
	"fmt"

	"github.com/cory-johannsen/pointbuy/internal/game/dice"
)

// MinST and MaxST bound the Strength values the table covers.
const (
	MinST = 7
	MaxST = 20
)

// Damage is the basic damage pair for one Strength value.
type Damage struct {
	Thrust dice.Expression
	Swing  dice.Expression
}

// String renders the pair as "thr 1d-2 / sw 1d".
func (d Damage) String() string {
	return fmt.Sprintf("thr %s / sw %s", d.Thrust, d.Swing)
}

var table = map[int]Damage{
	7:  {dice.MustParse("1d-3"), dice.MustParse("1d-2")},
	8:  {dice.MustParse("1d-3"), dice.MustParse("1d-1")},
	9:  {dice.MustParse("1d-2"), dice.MustParse("1d")},
	10: {dice.MustParse("1d-2"), dice.MustParse("1d")},
	11: {dice.MustParse("1d-1"), dice.MustParse("1d+1")},
	12: {dice.MustParse("1d-1"), dice.MustParse("1d+2")},
	13: {dice.MustParse("1d"), dice.MustParse("2d-1")},
	14: {dice.MustParse("1d"), dice.MustParse("2d")},
	15: {dice.MustParse("1d+1"), dice.MustParse("2d+1")},
	16: {dice.MustParse("1d+1"), dice.MustParse("2d+2")},
	17: {dice.MustParse("1d+2"), dice.MustParse("3d-1")},
	18: {dice.MustParse("1d+2"), dice.MustParse("3d")},
	19: {dice.MustParse("2d-1"), dice.MustParse("3d+1")},
	20: {dice.MustParse("2d-1"), dice.MustParse("3d+2")},
}

// For returns the basic damage for st.
//
// Postcondition: ok is false when st is outside [MinST, MaxST].
func For(st int) (Damage, bool) {
	d, ok := table[st]
	return d, ok
}
