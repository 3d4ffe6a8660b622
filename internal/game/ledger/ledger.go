// Package ledger aggregates point expenditure across a character sheet and
// decides whether a change fits within the remaining budget.
package ledger

import (
	"math"

	"github.com/cory-johannsen/pointbuy/internal/game/attribute"
	"github.com/cory-johannsen/pointbuy/internal/game/cost"
	"github.com/cory-johannsen/pointbuy/internal/game/skill"
	"github.com/cory-johannsen/pointbuy/internal/game/trait"
)

// Inputs is everything that contributes to spent points.
type Inputs struct {
	Primaries   attribute.Primaries
	Secondaries attribute.Secondaries
	Modifiers   *cost.ModifierSet
	Skills      []skill.Skill
	Traits      []trait.Trait
}

// Breakdown is spent points by category.
type Breakdown struct {
	Primary       int
	Secondary     int
	Skills        int
	Advantages    int // sum of non-negative trait costs
	Disadvantages int // sum of negative trait costs, <= 0
}

// Total returns the sum of every category.
func (b Breakdown) Total() int {
	return b.Primary + b.Secondary + b.Skills + b.Advantages + b.Disadvantages
}

// Totals is the budget summary shown to the player.
type Totals struct {
	Total     int
	Spent     int
	Remaining int
}

// PrimaryCost returns the point cost of p priced under mods.
func PrimaryCost(p attribute.Primary, mods *cost.ModifierSet) int {
	return p.Levels() * price(mods, p.CostPerLevel, p.ID)
}

// SecondaryCost returns the point cost of s's delta priced under mods, rounded up.
func SecondaryCost(s attribute.Secondary, mods *cost.ModifierSet) int {
	per := price(mods, s.CostPerLevel, attribute.ModifierKey(s.ID))
	return int(math.Ceil(s.Delta() * float64(per)))
}

func price(mods *cost.ModifierSet, base int, key string) int {
	if mods == nil {
		return base
	}
	return mods.Price(base, key)
}

// Spent prices every attribute, skill and trait in in.
//
// Postcondition: result.Total() == Σ(primary-10)·effective + Σceil((value-base)·effective)
// + Σskill.Points + Σtrait.Cost.
func Spent(in Inputs) Breakdown {
	var b Breakdown
	for _, p := range in.Primaries {
		b.Primary += PrimaryCost(p, in.Modifiers)
	}
	for _, s := range in.Secondaries {
		b.Secondary += SecondaryCost(s, in.Modifiers)
	}
	for _, s := range in.Skills {
		b.Skills += s.Points
	}
	for _, t := range in.Traits {
		if t.Cost < 0 {
			b.Disadvantages += t.Cost
		} else {
			b.Advantages += t.Cost
		}
	}
	return b
}

// Summarize returns the budget summary for total points against b.
//
// Postcondition: Remaining == Total - Spent.
func Summarize(total int, b Breakdown) Totals {
	spent := b.Total()
	return Totals{Total: total, Spent: spent, Remaining: total - spent}
}

// CanAfford reports whether a change with marginal cost delta is permitted.
// Refunds and free changes are always permitted; positive costs must fit in remaining.
func CanAfford(delta, remaining int) bool {
	if delta <= 0 {
		return true
	}
	return delta <= remaining
}
