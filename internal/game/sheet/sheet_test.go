package sheet_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pointbuy/internal/game/attribute"
	"github.com/cory-johannsen/pointbuy/internal/game/cost"
	"github.com/cory-johannsen/pointbuy/internal/game/sheet"
	"github.com/cory-johannsen/pointbuy/internal/game/skill"
	"github.com/cory-johannsen/pointbuy/internal/game/trait"
)

func newSheet(t *testing.T) *sheet.Sheet {
	t.Helper()
	s, err := sheet.New(sheet.Options{TotalPoints: 100}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return s
}

func secondary(snap sheet.Snapshot, id string) sheet.SecondaryView {
	for _, v := range snap.Secondaries {
		if v.ID == id {
			return v
		}
	}
	return sheet.SecondaryView{}
}

func primary(snap sheet.Snapshot, id string) sheet.PrimaryView {
	for _, v := range snap.Primaries {
		if v.ID == id {
			return v
		}
	}
	return sheet.PrimaryView{}
}

func TestNew_Defaults(t *testing.T) {
	s := newSheet(t)
	snap := s.Snapshot()
	assert.Equal(t, 100, snap.Totals.Total)
	assert.Equal(t, 0, snap.Totals.Spent)
	assert.Equal(t, 100, snap.Totals.Remaining)
	require.Len(t, snap.Primaries, 4)
	require.Len(t, snap.Secondaries, 6)
	assert.Equal(t, 5.0, secondary(snap, attribute.BasicSpeed).Value)
	assert.Equal(t, 5.0, secondary(snap, attribute.BasicMove).Value)
	assert.Equal(t, 20.0, snap.Encumbrance.Lift)
	assert.True(t, snap.HasDamage)
	assert.Equal(t, "thr 1d-2 / sw 1d", snap.Damage.String())
}

func TestNew_InvalidCosts(t *testing.T) {
	costs := attribute.DefaultCosts()
	costs.Primary[attribute.ST] = -1
	_, err := sheet.New(sheet.Options{Costs: costs}, zap.NewNop())
	assert.Error(t, err)
}

func TestNew_DefaultTotal(t *testing.T) {
	s, err := sheet.New(sheet.Options{}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, sheet.DefaultTotalPoints, s.TotalPoints())
}

func TestSetPrimaryAttribute_RebasesAndPreservesDelta(t *testing.T) {
	s := newSheet(t)
	require.NoError(t, s.AdjustSecondaryAttribute(attribute.HP, 1))
	require.NoError(t, s.AdjustSecondaryAttribute(attribute.HP, 1))
	require.NoError(t, s.SetPrimaryAttribute(attribute.ST, 12))

	snap := s.Snapshot()
	hp := secondary(snap, attribute.HP)
	assert.Equal(t, 12.0, hp.Base)
	assert.Equal(t, 14.0, hp.Value)
	assert.Equal(t, 2.0, hp.Delta)
	assert.Equal(t, 20+4, snap.Totals.Spent)
	assert.Equal(t, 20, primary(snap, attribute.ST).Spent)
}

func TestSetPrimaryAttribute_Rejections(t *testing.T) {
	s := newSheet(t)
	err := s.SetPrimaryAttribute("LUCK", 12)
	assert.True(t, errors.Is(err, sheet.ErrUnknownAttribute))
	err = s.SetPrimaryAttribute(attribute.DX, 0)
	assert.True(t, errors.Is(err, sheet.ErrBelowFloor))
	err = s.SetPrimaryAttribute(attribute.DX, 16)
	assert.True(t, errors.Is(err, sheet.ErrInsufficientPoints))
	assert.Equal(t, 10, primary(s.Snapshot(), attribute.DX).Value)
}

func TestBudgetExhaustion(t *testing.T) {
	s := newSheet(t)
	require.NoError(t, s.SetPrimaryAttribute(attribute.ST, 20))
	require.Equal(t, 0, s.Remaining())
	before := s.Snapshot()

	assert.ErrorIs(t, s.AdjustPrimaryAttribute(attribute.HT, 1), sheet.ErrInsufficientPoints)
	assert.ErrorIs(t, s.AdjustSecondaryAttribute(attribute.FP, 1), sheet.ErrInsufficientPoints)
	_, err := s.AddSkill(sheet.SkillSpec{Name: "Bow", Attribute: attribute.DX, Difficulty: skill.Average, Points: 1})
	assert.ErrorIs(t, err, sheet.ErrInsufficientPoints)
	_, err = s.AddTrait(sheet.TraitSpec{Name: "Luck", Kind: trait.Advantage, Cost: 15})
	assert.ErrorIs(t, err, sheet.ErrInsufficientPoints)
	assert.ErrorIs(t, s.SetCostModifier(attribute.ST, 10, true), sheet.ErrInsufficientPoints)
	assert.Equal(t, before, s.Snapshot(), "rejected mutations must not change state")

	// Free and refunding changes still apply.
	_, err = s.AddSkill(sheet.SkillSpec{Name: "Bow", Attribute: attribute.DX, Difficulty: skill.Average})
	require.NoError(t, err)
	require.NoError(t, s.SetCostModifier(attribute.ST, -20, true))
	assert.Equal(t, 20, s.Remaining())
}

func TestRefundsReachFloor(t *testing.T) {
	s := newSheet(t)
	require.NoError(t, s.SetPrimaryAttribute(attribute.ST, 20))
	for v := 19; v >= attribute.PrimaryFloor; v-- {
		require.NoError(t, s.AdjustPrimaryAttribute(attribute.ST, -1), "ST %d", v)
	}
	assert.ErrorIs(t, s.AdjustPrimaryAttribute(attribute.ST, -1), sheet.ErrBelowFloor)
	assert.Equal(t, 1, primary(s.Snapshot(), attribute.ST).Value)
	assert.Equal(t, -90, s.Snapshot().Totals.Spent)
}

func TestAdjustSecondaryAttribute_SpeedSteps(t *testing.T) {
	s := newSheet(t)
	require.NoError(t, s.AdjustSecondaryAttribute(attribute.BasicSpeed, 1))
	snap := s.Snapshot()
	assert.Equal(t, 5.25, secondary(snap, attribute.BasicSpeed).Value)
	assert.Equal(t, 5, snap.Totals.Spent)

	for i := 0; i < 20; i++ {
		require.NoError(t, s.AdjustSecondaryAttribute(attribute.BasicSpeed, -1))
	}
	assert.Equal(t, 0.25, secondary(s.Snapshot(), attribute.BasicSpeed).Value)
	assert.ErrorIs(t, s.AdjustSecondaryAttribute(attribute.BasicSpeed, -1), sheet.ErrBelowFloor)
	assert.ErrorIs(t, s.AdjustSecondaryAttribute("Luck", 1), sheet.ErrUnknownAttribute)
	require.NoError(t, s.AdjustSecondaryAttribute(attribute.BasicSpeed, 0))
}

func TestMovementModifierPricesBasicMove(t *testing.T) {
	s := newSheet(t)
	require.NoError(t, s.SetCostModifier(cost.KeyMove, 100, true))
	require.NoError(t, s.AdjustSecondaryAttribute(attribute.BasicMove, 1))
	snap := s.Snapshot()
	assert.Equal(t, 10, snap.Totals.Spent)
	assert.Equal(t, 10, secondary(snap, attribute.BasicMove).EffectiveCost)
	assert.Equal(t, 20, secondary(snap, attribute.BasicSpeed).EffectiveCost)
}

func TestSetCostModifier_ClampsAndRejectsUnknown(t *testing.T) {
	s := newSheet(t)
	require.NoError(t, s.SetCostModifier(attribute.ST, 500, true))
	require.NoError(t, s.SetCostModifier(attribute.DX, -95, true))
	snap := s.Snapshot()
	for _, m := range snap.Modifiers {
		switch m.Key {
		case attribute.ST:
			assert.Equal(t, cost.MaxPercent, m.Percent)
		case attribute.DX:
			assert.Equal(t, cost.MinPercent, m.Percent)
		}
	}
	assert.Equal(t, 4, primary(snap, attribute.DX).EffectiveCost)
	assert.ErrorIs(t, s.SetCostModifier("LUCK", 10, true), sheet.ErrUnknownModifier)
}

func TestSkills_LevelsAndAdjust(t *testing.T) {
	s := newSheet(t)
	require.NoError(t, s.SetPrimaryAttribute(attribute.DX, 12))
	id, err := s.AddSkill(sheet.SkillSpec{Name: "Broadsword", Attribute: attribute.DX, Difficulty: skill.Average, Points: 4})
	require.NoError(t, err)

	v := s.Snapshot().Skills[0]
	require.True(t, v.HasLevel)
	assert.Equal(t, 13, v.Level)
	assert.Equal(t, "DX+1", v.Relative)
	assert.Equal(t, skill.RatingFair, v.Rating)

	require.NoError(t, s.AdjustSkillPoints(id, 1))
	sk, _ := s.Skill(id)
	assert.Equal(t, 8, sk.Points)
	require.NoError(t, s.AdjustSkillPoints(id, -1))
	require.NoError(t, s.AdjustSkillPoints(id, -1))
	require.NoError(t, s.AdjustSkillPoints(id, -1))
	sk, _ = s.Skill(id)
	assert.Equal(t, 1, sk.Points)
	require.NoError(t, s.AdjustSkillPoints(id, -1))
	assert.False(t, s.Snapshot().Skills[0].HasLevel)
	assert.Equal(t, 40, s.Snapshot().Totals.Spent)
}

func TestSkills_HardOnePoint(t *testing.T) {
	s := newSheet(t)
	require.NoError(t, s.SetPrimaryAttribute(attribute.IQ, 12))
	_, err := s.AddSkill(sheet.SkillSpec{Name: "Diplomacy", Attribute: attribute.IQ, Difficulty: skill.Hard, Points: 1})
	require.NoError(t, err)
	_, err = s.AddSkill(sheet.SkillSpec{Name: "Shield", Attribute: attribute.DX, Difficulty: skill.Easy, Preset: "DX-4"})
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, 10, snap.Skills[0].Level)
	assert.False(t, snap.Skills[1].HasLevel)
	assert.Equal(t, "unset", snap.Skills[1].Relative)
	assert.Equal(t, "DX-4", snap.Skills[1].Preset)
}

func TestSkills_Extrapolation(t *testing.T) {
	s, err := sheet.New(sheet.Options{TotalPoints: 200}, zap.NewNop())
	require.NoError(t, err)
	_, err = s.AddSkill(sheet.SkillSpec{Name: "Bow", Attribute: attribute.DX, Difficulty: skill.Average, Points: 28})
	require.NoError(t, err)
	assert.Equal(t, 17, s.Snapshot().Skills[0].Level)
	assert.True(t, s.Snapshot().Skills[0].Automatic)
}

func TestSetSkillLevel(t *testing.T) {
	s := newSheet(t)
	require.NoError(t, s.SetPrimaryAttribute(attribute.DX, 12))
	id, err := s.AddSkill(sheet.SkillSpec{Name: "Crossbow", Attribute: attribute.DX, Difficulty: skill.Hard})
	require.NoError(t, err)

	require.NoError(t, s.SetSkillLevel(id, 13))
	sk, _ := s.Skill(id)
	assert.Equal(t, 8, sk.Points)

	err = s.SetSkillLevel(id, 9)
	assert.ErrorIs(t, err, sheet.ErrInfeasibleLevel)
	assert.ErrorIs(t, err, skill.ErrInfeasibleLevel)
	sk, _ = s.Skill(id)
	assert.Equal(t, 8, sk.Points, "infeasible request must not alter points")

	err = s.SetSkillLevel(id, 30)
	assert.ErrorIs(t, err, sheet.ErrInsufficientPoints)
}

func TestSkillEdits(t *testing.T) {
	s := newSheet(t)
	id, err := s.AddSkill(sheet.SkillSpec{Name: "Sword", Attribute: attribute.DX, Difficulty: skill.Average, Points: 2})
	require.NoError(t, err)

	require.NoError(t, s.SetSkillDifficulty(id, skill.VeryHard))
	require.NoError(t, s.SetSkillAttribute(id, attribute.ST))
	require.NoError(t, s.SetSkillPreset(id, "ST-5"))
	require.NoError(t, s.RenameSkill(id, "Two-Handed Sword"))
	assert.ErrorIs(t, s.SetSkillAttribute(id, "Will"), sheet.ErrUnknownAttribute)

	v := s.Snapshot().Skills[0]
	assert.Equal(t, "Two-Handed Sword", v.Name)
	assert.Equal(t, 8, v.Level)
	assert.Equal(t, "ST-2", v.Relative)
	assert.Equal(t, 2, s.Snapshot().Totals.Spent)

	require.NoError(t, s.RemoveSkill(id))
	assert.Empty(t, s.Snapshot().Skills)
	assert.ErrorIs(t, s.RemoveSkill(id), sheet.ErrUnknownSkill)
	assert.ErrorIs(t, s.AdjustSkillPoints("missing", 1), sheet.ErrUnknownSkill)
}

func TestAddSkill_Invalid(t *testing.T) {
	s := newSheet(t)
	_, err := s.AddSkill(sheet.SkillSpec{Name: "Sword", Attribute: attribute.DX, Difficulty: skill.Average, Points: 3})
	assert.ErrorIs(t, err, sheet.ErrInvalidSkill)
	_, err = s.AddSkill(sheet.SkillSpec{Name: "Sword", Attribute: "XX", Difficulty: skill.Average})
	assert.ErrorIs(t, err, sheet.ErrUnknownAttribute)
	assert.Empty(t, s.Snapshot().Skills)
}

func TestTraits_SignAndBudget(t *testing.T) {
	s := newSheet(t)
	id, err := s.AddTrait(sheet.TraitSpec{Name: "Combat Reflexes", Kind: trait.Advantage, Cost: 15})
	require.NoError(t, err)
	assert.Equal(t, 15, s.Snapshot().Breakdown.Advantages)

	require.NoError(t, s.EditTrait(id, trait.SetKind(trait.Disadvantage)))
	tr, _ := s.Trait(id)
	assert.Equal(t, -15, tr.Cost)
	require.NoError(t, s.EditTrait(id, trait.SetCost(5)))
	tr, _ = s.Trait(id)
	assert.Equal(t, -5, tr.Cost)
	assert.Equal(t, -5, s.Snapshot().Breakdown.Disadvantages)

	err = s.EditTrait(id, trait.SetKind("talent"))
	assert.ErrorIs(t, err, sheet.ErrInvalidTrait)
	assert.ErrorIs(t, err, trait.ErrUnknownKind)
	assert.ErrorIs(t, s.EditTrait("missing", trait.SetName("x")), sheet.ErrUnknownTrait)
}

func TestTraits_RemovingDisadvantageNeedsBudget(t *testing.T) {
	s := newSheet(t)
	id, err := s.AddTrait(sheet.TraitSpec{Name: "Bad Temper", Kind: trait.Disadvantage, Cost: 10})
	require.NoError(t, err)
	require.NoError(t, s.SetPrimaryAttribute(attribute.ST, 21))
	require.Equal(t, 0, s.Remaining())

	assert.ErrorIs(t, s.RemoveTrait(id), sheet.ErrInsufficientPoints)
	assert.ErrorIs(t, s.EditTrait(id, trait.SetKind(trait.Advantage)), sheet.ErrInsufficientPoints)
	require.NoError(t, s.EditTrait(id, trait.SetCost(15)), "raising a disadvantage refunds")
	require.NoError(t, s.EditTrait(id, trait.SetName("Short Temper")))
}

func TestAddTrait_InvalidLevel(t *testing.T) {
	s := newSheet(t)
	zero := 0
	_, err := s.AddTrait(sheet.TraitSpec{Name: "Acute Vision", Kind: trait.Advantage, Cost: 2, Level: &zero})
	assert.ErrorIs(t, err, sheet.ErrInvalidTrait)
	assert.ErrorIs(t, err, trait.ErrInvalidLevel)
}

func TestCarriedWeight_TouchesEncumbranceOnly(t *testing.T) {
	s := newSheet(t)
	require.NoError(t, s.SetPrimaryAttribute(attribute.ST, 11))
	before := s.Snapshot().Totals

	s.SetCarriedWeight(48.4) // ratio exactly 2
	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Encumbrance.Tier.Level)
	assert.Equal(t, before, snap.Totals)

	s.SetCarriedWeightText("50")
	snap = s.Snapshot()
	assert.Equal(t, 1, snap.Encumbrance.Tier.Level)
	assert.Equal(t, 7, snap.Encumbrance.Combat.Dodge)
	assert.Equal(t, 4, snap.Encumbrance.Combat.Move)
	assert.Equal(t, 9, snap.Encumbrance.Combat.DX)

	s.SetCarriedWeightText("lots")
	assert.Zero(t, s.CarriedWeight())
	s.SetCarriedWeight(-3)
	assert.Zero(t, s.CarriedWeight())
}

// Property: changing difficulty never changes the points invested.
func TestSetSkillDifficulty_KeepsPointsProperty(t *testing.T) {
	difficulties := []skill.Difficulty{skill.Easy, skill.Average, skill.Hard, skill.VeryHard}
	rapid.Check(t, func(rt *rapid.T) {
		s, err := sheet.New(sheet.Options{TotalPoints: 1000}, zap.NewNop())
		if err != nil {
			rt.Fatalf("New: %v", err)
		}
		from := rapid.SampledFrom(difficulties).Draw(rt, "from")
		points := 0
		for n := rapid.IntRange(0, 12).Draw(rt, "steps"); n > 0; n-- {
			points = skill.NextValidPointCost(points, from, 1)
		}
		id, err := s.AddSkill(sheet.SkillSpec{Name: "Sword", Attribute: attribute.DX, Difficulty: from, Points: points})
		if err != nil {
			rt.Fatalf("AddSkill(%d): %v", points, err)
		}
		to := rapid.SampledFrom(difficulties).Draw(rt, "to")
		if err := s.SetSkillDifficulty(id, to); err != nil {
			rt.Fatalf("SetSkillDifficulty: %v", err)
		}
		if got := s.Snapshot().Skills[0].Points; got != points {
			rt.Fatalf("points %d became %d moving %v to %v", points, got, from, to)
		}
	})
}

func TestSetTotalPoints(t *testing.T) {
	s := newSheet(t)
	require.NoError(t, s.SetPrimaryAttribute(attribute.ST, 14))
	s.SetTotalPointsText(" 150 ")
	assert.Equal(t, 110, s.Remaining())
	s.SetTotalPointsText("abc")
	assert.Equal(t, 0, s.TotalPoints())
	assert.Equal(t, -40, s.Remaining())
	assert.ErrorIs(t, s.AdjustPrimaryAttribute(attribute.ST, 1), sheet.ErrInsufficientPoints)
	require.NoError(t, s.AdjustPrimaryAttribute(attribute.ST, -1))
	s.SetTotalPoints(-5)
	assert.Equal(t, 0, s.TotalPoints())
}

func TestDamageOutsideTable(t *testing.T) {
	s, err := sheet.New(sheet.Options{TotalPoints: 500}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.SetPrimaryAttribute(attribute.ST, 25))
	assert.False(t, s.Snapshot().HasDamage)
}

func TestRejectionsLoggedAtDebug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s, err := sheet.New(sheet.Options{TotalPoints: 10}, zap.New(core))
	require.NoError(t, err)
	require.Error(t, s.SetPrimaryAttribute(attribute.DX, 11))
	entries := logs.FilterMessage("sheet change rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "set primary", entries[0].ContextMap()["op"])
}

// Property: starting from a fresh sheet, spent never exceeds the budget and a
// rejected mutation leaves the snapshot untouched.
func TestBudgetNeverExceededProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s, err := sheet.New(sheet.Options{TotalPoints: rapid.IntRange(0, 150).Draw(rt, "total")}, zap.NewNop())
		if err != nil {
			rt.Fatal(err)
		}
		var skillIDs, traitIDs []string
		n := rapid.IntRange(1, 40).Draw(rt, "ops")
		for i := 0; i < n; i++ {
			before := s.Snapshot()
			dir := rapid.SampledFrom([]int{-1, 1}).Draw(rt, "dir")
			var err error
			switch rapid.IntRange(0, 6).Draw(rt, "op") {
			case 0:
				err = s.AdjustPrimaryAttribute(rapid.SampledFrom(attribute.PrimaryIDs).Draw(rt, "primary"), dir)
			case 1:
				err = s.AdjustSecondaryAttribute(rapid.SampledFrom(attribute.SecondaryIDs).Draw(rt, "secondary"), dir)
			case 2:
				var id string
				id, err = s.AddSkill(sheet.SkillSpec{
					Name:       "skill",
					Attribute:  rapid.SampledFrom(attribute.PrimaryIDs).Draw(rt, "attr"),
					Difficulty: rapid.SampledFrom([]skill.Difficulty{skill.Easy, skill.Average, skill.Hard, skill.VeryHard}).Draw(rt, "diff"),
					Points:     rapid.SampledFrom([]int{0, 1, 2, 4, 8, 12}).Draw(rt, "points"),
				})
				if err == nil {
					skillIDs = append(skillIDs, id)
				}
			case 3:
				if len(skillIDs) > 0 {
					err = s.AdjustSkillPoints(rapid.SampledFrom(skillIDs).Draw(rt, "skill"), dir)
				}
			case 4:
				var id string
				id, err = s.AddTrait(sheet.TraitSpec{
					Name: "trait",
					Kind: rapid.SampledFrom(trait.Kinds).Draw(rt, "kind"),
					Cost: rapid.IntRange(0, 30).Draw(rt, "cost"),
				})
				if err == nil {
					traitIDs = append(traitIDs, id)
				}
			case 5:
				if len(traitIDs) > 0 {
					err = s.EditTrait(rapid.SampledFrom(traitIDs).Draw(rt, "trait"),
						trait.SetKind(rapid.SampledFrom(trait.Kinds).Draw(rt, "newKind")))
				}
			case 6:
				err = s.SetCostModifier(
					rapid.SampledFrom(attribute.ModifierKeys()).Draw(rt, "key"),
					rapid.IntRange(-100, 400).Draw(rt, "percent"),
					rapid.Bool().Draw(rt, "enabled"),
				)
			}
			after := s.Snapshot()
			if err != nil && !reflect.DeepEqual(before, after) {
				rt.Fatalf("rejected mutation changed state: %v", err)
			}
			if after.Totals.Spent > after.Totals.Total {
				rt.Fatalf("spent %d exceeds total %d", after.Totals.Spent, after.Totals.Total)
			}
		}
	})
}
