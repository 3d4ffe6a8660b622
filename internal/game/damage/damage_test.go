package damage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/pointbuy/internal/game/damage"
)

func TestFor(t *testing.T) {
	d, ok := damage.For(10)
	require.True(t, ok)
	assert.Equal(t, "1d-2", d.Thrust.String())
	assert.Equal(t, "1d", d.Swing.String())
	assert.Equal(t, "thr 1d-2 / sw 1d", d.String())

	d, ok = damage.For(17)
	require.True(t, ok)
	assert.Equal(t, "3d-1", d.Swing.String())
}

func TestFor_OutOfRange(t *testing.T) {
	_, ok := damage.For(damage.MinST - 1)
	assert.False(t, ok)
	_, ok = damage.For(damage.MaxST + 1)
	assert.False(t, ok)
}

func TestFor_MonotonicAverage(t *testing.T) {
	prev, _ := damage.For(damage.MinST)
	for st := damage.MinST + 1; st <= damage.MaxST; st++ {
		d, ok := damage.For(st)
		require.True(t, ok, "st %d", st)
		assert.GreaterOrEqual(t, d.Thrust.Average(), prev.Thrust.Average(), "thrust st %d", st)
		assert.GreaterOrEqual(t, d.Swing.Average(), prev.Swing.Average(), "swing st %d", st)
		assert.GreaterOrEqual(t, d.Swing.Average(), d.Thrust.Average(), "st %d", st)
		prev = d
	}
}
