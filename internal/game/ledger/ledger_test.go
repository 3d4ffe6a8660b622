package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pointbuy/internal/game/attribute"
	"github.com/cory-johannsen/pointbuy/internal/game/cost"
	"github.com/cory-johannsen/pointbuy/internal/game/ledger"
	"github.com/cory-johannsen/pointbuy/internal/game/skill"
	"github.com/cory-johannsen/pointbuy/internal/game/trait"
)

func baseInputs() ledger.Inputs {
	costs := attribute.DefaultCosts()
	p := attribute.NewPrimaries(costs)
	return ledger.Inputs{
		Primaries:   p,
		Secondaries: attribute.NewSecondaries(p, costs),
		Modifiers:   cost.NewModifierSet(attribute.ModifierKeys()...),
	}
}

func TestSpent_Empty(t *testing.T) {
	assert.Equal(t, 0, ledger.Spent(baseInputs()).Total())
}

func TestSpent_AllCategories(t *testing.T) {
	in := baseInputs()
	st := in.Primaries[attribute.ST]
	st.Value = 12 // +20
	in.Primaries[attribute.ST] = st
	iq := in.Primaries[attribute.IQ]
	iq.Value = 9 // -20
	in.Primaries[attribute.IQ] = iq

	in.Secondaries = attribute.Rebase(in.Primaries, in.Secondaries)
	hp := in.Secondaries[attribute.HP]
	hp.Value += 2 // +4
	in.Secondaries[attribute.HP] = hp
	speed := in.Secondaries[attribute.BasicSpeed]
	speed.Value += 0.25 // +5
	in.Secondaries[attribute.BasicSpeed] = speed

	in.Skills = []skill.Skill{{Points: 4}, {Points: 1}}
	in.Traits = []trait.Trait{
		{Kind: trait.Advantage, Cost: 15},
		{Kind: trait.Disadvantage, Cost: -10},
	}

	b := ledger.Spent(in)
	assert.Equal(t, 0, b.Primary)
	assert.Equal(t, 9, b.Secondary)
	assert.Equal(t, 5, b.Skills)
	assert.Equal(t, 15, b.Advantages)
	assert.Equal(t, -10, b.Disadvantages)
	assert.Equal(t, 19, b.Total())
}

func TestSpent_MovementModifierPricesBasicMoveOnly(t *testing.T) {
	in := baseInputs()
	require.NoError(t, in.Modifiers.Set(cost.KeyMove, 100, true))
	move := in.Secondaries[attribute.BasicMove]
	move.Value++
	in.Secondaries[attribute.BasicMove] = move
	speed := in.Secondaries[attribute.BasicSpeed]
	speed.Value += 0.25
	in.Secondaries[attribute.BasicSpeed] = speed

	b := ledger.Spent(in)
	assert.Equal(t, 10+5, b.Secondary)
}

func TestSpent_PrimaryModifier(t *testing.T) {
	in := baseInputs()
	require.NoError(t, in.Modifiers.Set(attribute.ST, -80, true))
	st := in.Primaries[attribute.ST]
	st.Value = 15
	in.Primaries[attribute.ST] = st
	assert.Equal(t, 10, ledger.Spent(in).Primary)
}

func TestSummarize(t *testing.T) {
	tot := ledger.Summarize(100, ledger.Breakdown{Primary: 30, Skills: 10})
	assert.Equal(t, ledger.Totals{Total: 100, Spent: 40, Remaining: 60}, tot)
}

func TestCanAfford(t *testing.T) {
	assert.True(t, ledger.CanAfford(10, 10))
	assert.False(t, ledger.CanAfford(11, 10))
	assert.True(t, ledger.CanAfford(0, -5))
	assert.True(t, ledger.CanAfford(-20, -5))
	assert.False(t, ledger.CanAfford(1, 0))
}

// Property: spent is additive across skill and trait lists.
func TestSpent_Additive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := baseInputs()
		pts := rapid.SliceOf(rapid.IntRange(0, 40)).Draw(rt, "skills")
		costs := rapid.SliceOf(rapid.IntRange(-40, 40)).Draw(rt, "traits")
		want := 0
		for _, p := range pts {
			in.Skills = append(in.Skills, skill.Skill{Points: p})
			want += p
		}
		for _, c := range costs {
			in.Traits = append(in.Traits, trait.Trait{Cost: c})
			want += c
		}
		if got := ledger.Spent(in).Total(); got != want {
			rt.Fatalf("Spent = %d, want %d", got, want)
		}
	})
}
