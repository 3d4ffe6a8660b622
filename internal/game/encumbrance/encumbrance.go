// Package encumbrance derives load tiers and combat penalties from carried weight.
package encumbrance

import "math"

// Tier is a discrete load bracket and its combat penalties.
//
// Invariant: DXPenalty <= 0, DodgePenalty <= 0, 0 < MoveMultiplier <= 1.
type Tier struct {
	Level          int
	Label          string
	DXPenalty      int
	DodgePenalty   int
	MoveMultiplier float64
}

// tiers is ordered from heaviest to lightest; Threshold is exclusive-above.
var tiers = []struct {
	threshold float64
	tier      Tier
}{
	{10, Tier{Level: 4, Label: "Extra-Heavy", DXPenalty: -4, DodgePenalty: -4, MoveMultiplier: 0.2}},
	{6, Tier{Level: 3, Label: "Heavy", DXPenalty: -3, DodgePenalty: -3, MoveMultiplier: 0.4}},
	{3, Tier{Level: 2, Label: "Medium", DXPenalty: -2, DodgePenalty: -2, MoveMultiplier: 0.6}},
	{2, Tier{Level: 1, Label: "Light", DXPenalty: -1, DodgePenalty: -1, MoveMultiplier: 0.8}},
}

var unencumbered = Tier{Level: 0, Label: "None", MoveMultiplier: 1.0}

// LiftCapacity returns the basic lift for a Strength score: ST²/5.
func LiftCapacity(st int) float64 {
	return float64(st*st) / 5
}

// Ratio returns carried/lift. A non-positive lift yields +Inf for any positive
// load and 0 for an empty one.
func Ratio(carried, lift float64) float64 {
	if lift <= 0 {
		if carried > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return carried / lift
}

// TierFor selects the load tier for carried weight against lift capacity.
// Boundaries are exclusive-above: a ratio of exactly 2 is unencumbered.
func TierFor(carried, lift float64) Tier {
	return TierForRatio(Ratio(carried, lift))
}

// TierForRatio selects the load tier for a precomputed ratio.
func TierForRatio(ratio float64) Tier {
	for _, t := range tiers {
		if ratio > t.threshold {
			return t.tier
		}
	}
	return unencumbered
}

// Combat holds the encumbrance-adjusted combat values.
type Combat struct {
	BaseDodge int
	Dodge     int
	Move      int
	DX        int
}

// CombatFor applies tier penalties to Basic Speed, Basic Move and DX.
//
// Postcondition: Dodge == floor(speed+3) + DodgePenalty; Move == floor(move*MoveMultiplier).
func CombatFor(speed, move float64, dx int, t Tier) Combat {
	base := int(math.Floor(speed + 3))
	return Combat{
		BaseDodge: base,
		Dodge:     base + t.DodgePenalty,
		Move:      int(math.Floor(move * t.MoveMultiplier)),
		DX:        dx + t.DXPenalty,
	}
}

// Limit is the heaviest load that still falls within a tier.
type Limit struct {
	Tier      Tier
	Multiple  float64 // of lift; +Inf for the last tier
	MaxWeight float64 // +Inf for the last tier
}

// Limits returns the load table for lift, lightest tier first, consistent with TierFor.
func Limits(lift float64) []Limit {
	out := make([]Limit, 0, len(tiers)+1)
	prev := unencumbered
	for i := len(tiers) - 1; i >= 0; i-- {
		out = append(out, Limit{Tier: prev, Multiple: tiers[i].threshold, MaxWeight: lift * tiers[i].threshold})
		prev = tiers[i].tier
	}
	return append(out, Limit{Tier: prev, Multiple: math.Inf(1), MaxWeight: math.Inf(1)})
}
