package sheet

import (
	"github.com/cory-johannsen/pointbuy/internal/game/attribute"
	"github.com/cory-johannsen/pointbuy/internal/game/cost"
	"github.com/cory-johannsen/pointbuy/internal/game/damage"
	"github.com/cory-johannsen/pointbuy/internal/game/encumbrance"
	"github.com/cory-johannsen/pointbuy/internal/game/ledger"
	"github.com/cory-johannsen/pointbuy/internal/game/skill"
	"github.com/cory-johannsen/pointbuy/internal/game/trait"
)

// Snapshot is a read-only view of a sheet and every value derived from it.
// It shares no memory with the sheet.
type Snapshot struct {
	Totals      ledger.Totals
	Breakdown   ledger.Breakdown
	Primaries   []PrimaryView
	Secondaries []SecondaryView
	Modifiers   []ModifierView
	Skills      []SkillView
	Traits      []trait.Trait
	Encumbrance EncumbranceView
	Damage      damage.Damage
	HasDamage   bool // false when ST is outside the damage table
}

// PrimaryView is a primary attribute with its pricing.
type PrimaryView struct {
	ID            string
	Name          string
	Value         int
	CostPerLevel  int
	EffectiveCost int // per level after modifiers
	Spent         int
}

// SecondaryView is a secondary attribute with its base, delta and pricing.
type SecondaryView struct {
	ID            string
	Name          string
	Base          float64
	Value         float64
	Delta         float64
	Step          float64
	CostPerLevel  int
	EffectiveCost int // per level after modifiers
	Spent         int
}

// ModifierView is a cost modifier with a readable description.
type ModifierView struct {
	cost.Modifier
	Description string
}

// SkillView is a skill with its computed level. When HasLevel is false the
// skill is unset and Preset, if any, is the value to show.
type SkillView struct {
	skill.Skill
	Level     int
	HasLevel  bool
	Relative  string // e.g. "DX+2" or "unset"
	Rating    skill.Rating
	Automatic bool
}

// EncumbranceView holds load and the combat values it affects.
type EncumbranceView struct {
	Carried float64
	Lift    float64
	Ratio   float64
	Tier    encumbrance.Tier
	Limits  []encumbrance.Limit
	Combat  encumbrance.Combat
}

// Snapshot computes the current read model.
func (s *Sheet) Snapshot() Snapshot {
	b := s.build
	breakdown := b.spent()
	snap := Snapshot{
		Totals:    ledger.Summarize(s.total, breakdown),
		Breakdown: breakdown,
	}

	for _, id := range attribute.PrimaryIDs {
		p := b.primaries[id]
		snap.Primaries = append(snap.Primaries, PrimaryView{
			ID:            id,
			Name:          attribute.Name(id),
			Value:         p.Value,
			CostPerLevel:  p.CostPerLevel,
			EffectiveCost: b.modifiers.Price(p.CostPerLevel, id),
			Spent:         ledger.PrimaryCost(p, b.modifiers),
		})
	}

	for _, id := range attribute.SecondaryIDs {
		sec := b.secondaries[id]
		snap.Secondaries = append(snap.Secondaries, SecondaryView{
			ID:            id,
			Name:          attribute.Name(id),
			Base:          sec.Base,
			Value:         sec.Value,
			Delta:         sec.Delta(),
			Step:          attribute.StepFor(id),
			CostPerLevel:  sec.CostPerLevel,
			EffectiveCost: b.modifiers.Price(sec.CostPerLevel, attribute.ModifierKey(id)),
			Spent:         ledger.SecondaryCost(sec, b.modifiers),
		})
	}

	for _, m := range b.modifiers.All() {
		snap.Modifiers = append(snap.Modifiers, ModifierView{Modifier: m, Description: cost.Describe(m.Percent)})
	}

	for _, sk := range b.skills {
		v := SkillView{Skill: sk, Relative: skill.Describe(sk.Points, sk.Difficulty, sk.Attribute)}
		v.Level, v.HasLevel = sk.Level(b.primaries.Value(sk.Attribute))
		if v.HasLevel {
			v.Rating = skill.RatingFor(v.Level)
			v.Automatic = skill.Automatic(v.Level)
		}
		snap.Skills = append(snap.Skills, v)
	}

	for _, t := range b.traits {
		if t.Level != nil {
			lvl := *t.Level
			t.Level = &lvl
		}
		snap.Traits = append(snap.Traits, t)
	}

	st := b.primaries.Value(attribute.ST)
	lift := encumbrance.LiftCapacity(st)
	tier := encumbrance.TierFor(s.carried, lift)
	snap.Encumbrance = EncumbranceView{
		Carried: s.carried,
		Lift:    lift,
		Ratio:   encumbrance.Ratio(s.carried, lift),
		Tier:    tier,
		Limits:  encumbrance.Limits(lift),
		Combat: encumbrance.CombatFor(
			b.secondaries[attribute.BasicSpeed].Value,
			b.secondaries[attribute.BasicMove].Value,
			b.primaries.Value(attribute.DX),
			tier,
		),
	}

	snap.Damage, snap.HasDamage = damage.For(st)
	return snap
}
