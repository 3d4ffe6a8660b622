// Package cost prices per-level point costs under percentage enhancements and limitations.
package cost

import (
	"errors"
	"fmt"
)

// Percent bounds applied at assignment time.
const (
	MinPercent = -80
	MaxPercent = 300
)

// KeyMove is the grouping key whose modifier prices Basic Move.
const KeyMove = "MOVE"

// ErrUnknownModifier is returned when a modifier key is not part of the set.
var ErrUnknownModifier = errors.New("unknown cost modifier")

// Modifier is a percentage adjustment applied to a base per-level cost.
type Modifier struct {
	Key     string
	Percent int
	Enabled bool
}

// ClampPercent limits p to [MinPercent, MaxPercent].
//
// Postcondition: MinPercent <= result <= MaxPercent.
func ClampPercent(p int) int {
	if p < MinPercent {
		return MinPercent
	}
	if p > MaxPercent {
		return MaxPercent
	}
	return p
}

// EffectiveCost returns base adjusted by m, rounded up to the next whole point.
// A nil or disabled modifier leaves base unchanged.
//
// Postcondition: for m enabled, result == ceil(base * (100 + m.Percent) / 100).
func EffectiveCost(base int, m *Modifier) int {
	if m == nil || !m.Enabled {
		return base
	}
	return ceilDiv(base*(100+m.Percent), 100)
}

// ceilDiv divides n by a positive d rounding toward positive infinity.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}
	return q
}

// Describe returns a short human-readable summary of a percentage adjustment.
func Describe(percent int) string {
	switch {
	case percent > 0:
		return fmt.Sprintf("+%d%% markup", percent)
	case percent < 0:
		return fmt.Sprintf("%d%% discount", -percent)
	default:
		return "no change"
	}
}

// ModifierSet holds exactly one Modifier per known key.
type ModifierSet struct {
	keys []string
	mods map[string]*Modifier
}

// NewModifierSet creates a set with one neutral, enabled modifier per key.
//
// Precondition: keys must be unique.
// Postcondition: Get(k) succeeds for every k in keys.
func NewModifierSet(keys ...string) *ModifierSet {
	s := &ModifierSet{
		keys: append([]string(nil), keys...),
		mods: make(map[string]*Modifier, len(keys)),
	}
	for _, k := range keys {
		s.mods[k] = &Modifier{Key: k, Enabled: true}
	}
	return s
}

// Set assigns percent (clamped) and enabled to the modifier for key.
//
// Postcondition: Returns ErrUnknownModifier if key is not in the set; otherwise the
// stored percent lies within [MinPercent, MaxPercent].
func (s *ModifierSet) Set(key string, percent int, enabled bool) error {
	m, ok := s.mods[key]
	if !ok {
		return fmt.Errorf("setting %q: %w", key, ErrUnknownModifier)
	}
	m.Percent = ClampPercent(percent)
	m.Enabled = enabled
	return nil
}

// Get returns a copy of the modifier for key.
func (s *ModifierSet) Get(key string) (*Modifier, bool) {
	m, ok := s.mods[key]
	if !ok {
		return nil, false
	}
	c := *m
	return &c, true
}

// Price returns EffectiveCost(base, modifier for key). Unknown keys price at base.
func (s *ModifierSet) Price(base int, key string) int {
	return EffectiveCost(base, s.mods[key])
}

// Keys returns the modifier keys in construction order.
func (s *ModifierSet) Keys() []string {
	return append([]string(nil), s.keys...)
}

// All returns copies of every modifier in construction order.
func (s *ModifierSet) All() []Modifier {
	out := make([]Modifier, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, *s.mods[k])
	}
	return out
}

// Clone returns an independent copy of s.
func (s *ModifierSet) Clone() *ModifierSet {
	c := &ModifierSet{
		keys: append([]string(nil), s.keys...),
		mods: make(map[string]*Modifier, len(s.mods)),
	}
	for k, m := range s.mods {
		cp := *m
		c.mods[k] = &cp
	}
	return c
}
