// Package trait models advantages, disadvantages, perks and quirks.
package trait

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for unrecognised input.
var ErrUnknownKind = errors.New("unknown trait kind")

// ErrInvalidLevel is returned when a trait level is below 1.
var ErrInvalidLevel = errors.New("trait level must be >= 1")

// Kind classifies a trait.
type Kind string

// Trait kinds.
const (
	Advantage    Kind = "advantage"
	Disadvantage Kind = "disadvantage"
	Perk         Kind = "perk"
	Quirk        Kind = "quirk"
)

// Kinds lists every trait kind in display order.
var Kinds = []Kind{Advantage, Disadvantage, Perk, Quirk}

// ParseKind accepts a kind name or its first letter, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "advantage", "adv", "a":
		return Advantage, nil
	case "disadvantage", "disadv", "dis", "d":
		return Disadvantage, nil
	case "perk", "p":
		return Perk, nil
	case "quirk", "q":
		return Quirk, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// UnmarshalText lets Kind be decoded from YAML.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// SignedCost returns cost with the sign required by k: non-positive for
// disadvantages, non-negative for every other kind.
//
// Postcondition: |result| == |cost|, except math.MinInt whose magnitude is
// clamped to math.MaxInt.
func SignedCost(k Kind, cost int) int {
	switch {
	case cost == math.MinInt:
		cost = math.MaxInt
	case cost < 0:
		cost = -cost
	}
	if k == Disadvantage {
		return -cost
	}
	return cost
}

// Trait is an advantage, disadvantage, perk or quirk on a sheet.
//
// Invariant: Cost == SignedCost(Kind, Cost); Level is nil or >= 1.
type Trait struct {
	ID          string
	Name        string
	Kind        Kind
	Cost        int
	Level       *int
	Description string
}

// Normalize returns t with its cost sign forced to match its kind.
func (t Trait) Normalize() Trait {
	t.Cost = SignedCost(t.Kind, t.Cost)
	return t
}

// Valid reports whether t satisfies its invariants.
func (t Trait) Valid() error {
	var errs []error
	switch t.Kind {
	case Advantage, Disadvantage, Perk, Quirk:
	default:
		errs = append(errs, fmt.Errorf("kind %q: %w", t.Kind, ErrUnknownKind))
	}
	if t.Cost != SignedCost(t.Kind, t.Cost) {
		errs = append(errs, fmt.Errorf("cost %d has the wrong sign for %s", t.Cost, t.Kind))
	}
	if t.Level != nil && *t.Level < 1 {
		errs = append(errs, ErrInvalidLevel)
	}
	return errors.Join(errs...)
}

// Edit is a single typed change to a trait. The set of edits is closed.
type Edit interface {
	apply(Trait) (Trait, error)
}

// SetName renames a trait.
type SetName string

// SetKind changes a trait's kind and re-derives the cost sign.
type SetKind Kind

// SetCost changes a trait's cost magnitude; the sign follows the current kind.
type SetCost int

// SetLevel changes a trait's level; nil clears it.
type SetLevel struct{ Level *int }

// SetDescription changes a trait's free-text description.
type SetDescription string

func (e SetName) apply(t Trait) (Trait, error) {
	t.Name = string(e)
	return t, nil
}

func (e SetKind) apply(t Trait) (Trait, error) {
	k, err := ParseKind(string(e))
	if err != nil {
		return t, err
	}
	t.Kind = k
	return t.Normalize(), nil
}

func (e SetCost) apply(t Trait) (Trait, error) {
	t.Cost = int(e)
	return t.Normalize(), nil
}

func (e SetLevel) apply(t Trait) (Trait, error) {
	if e.Level == nil {
		t.Level = nil
		return t, nil
	}
	if *e.Level < 1 {
		return t, fmt.Errorf("level %d: %w", *e.Level, ErrInvalidLevel)
	}
	lvl := *e.Level
	t.Level = &lvl
	return t, nil
}

func (e SetDescription) apply(t Trait) (Trait, error) {
	t.Description = string(e)
	return t, nil
}

// Apply returns t with e applied. t itself is not modified.
//
// Postcondition: on success the result satisfies Valid.
func Apply(t Trait, e Edit) (Trait, error) {
	if t.Level != nil {
		lvl := *t.Level
		t.Level = &lvl
	}
	return e.apply(t)
}
