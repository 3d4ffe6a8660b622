// Package inventory models the equipment list carried by a character. Items
// are a closed set of variants, each with its own update operation.
package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for unrecognised input.
var ErrUnknownKind = errors.New("unknown item kind")

// Kind identifies an item variant.
type Kind string

// Item kinds.
const (
	KindMelee  Kind = "melee"
	KindRanged Kind = "ranged"
	KindArmor  Kind = "armor"
	KindGear   Kind = "gear"
)

// Kinds lists every item kind in display order.
var Kinds = []Kind{KindMelee, KindRanged, KindArmor, KindGear}

// ParseKind accepts a kind name or a common alias, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "melee", "m":
		return KindMelee, nil
	case "ranged", "r":
		return KindRanged, nil
	case "armor", "armour", "a":
		return KindArmor, nil
	case "gear", "other", "g":
		return KindGear, nil
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

// Common holds the fields every item carries.
//
// Invariant: Cost >= 0 and Weight >= 0.
type Common struct {
	ID     string
	Name   string
	Cost   float64
	Weight float64
}

// Item is one of *MeleeWeapon, *RangedWeapon, *Armor or *Gear.
type Item interface {
	Kind() Kind
	common() *Common
}

// MeleeStats are the kind-specific fields of a melee weapon.
type MeleeStats struct {
	Damage string
	Reach  string
	Parry  string
	MinST  int
}

// MeleeWeapon is a hand weapon.
type MeleeWeapon struct {
	Common
	MeleeStats
}

// RangedStats are the kind-specific fields of a ranged weapon.
type RangedStats struct {
	Damage     string
	Accuracy   int
	Range      string
	RateOfFire string
	Shots      string
	MinST      int
	Bulk       string
}

// RangedWeapon is a missile or thrown weapon.
type RangedWeapon struct {
	Common
	RangedStats
}

// ArmorStats are the kind-specific fields of armor.
type ArmorStats struct {
	Location string
	DR       int
}

// Armor is a worn protective item.
type Armor struct {
	Common
	ArmorStats
}

// Gear is anything else.
type Gear struct {
	Common
	Description string
}

func (*MeleeWeapon) Kind() Kind  { return KindMelee }
func (*RangedWeapon) Kind() Kind { return KindRanged }
func (*Armor) Kind() Kind        { return KindArmor }
func (*Gear) Kind() Kind         { return KindGear }

func (m *MeleeWeapon) common() *Common  { return &m.Common }
func (r *RangedWeapon) common() *Common { return &r.Common }
func (a *Armor) common() *Common        { return &a.Common }
func (g *Gear) common() *Common         { return &g.Common }

// Base returns a copy of the fields shared by every item.
func Base(it Item) Common {
	return *it.common()
}

// New returns an empty item of kind k named name.
//
// Postcondition: the item has no ID until it is added to an Inventory.
func New(k Kind, name string) (Item, error) {
	c := Common{Name: name}
	switch k {
	case KindMelee:
		return &MeleeWeapon{Common: c}, nil
	case KindRanged:
		return &RangedWeapon{Common: c}, nil
	case KindArmor:
		return &Armor{Common: c}, nil
	case KindGear:
		return &Gear{Common: c}, nil
	}
	return nil, fmt.Errorf("%q: %w", k, ErrUnknownKind)
}

func clone(it Item) Item {
	switch v := it.(type) {
	case *MeleeWeapon:
		c := *v
		return &c
	case *RangedWeapon:
		c := *v
		return &c
	case *Armor:
		c := *v
		return &c
	case *Gear:
		c := *v
		return &c
	}
	panic(fmt.Sprintf("inventory: unhandled item type %T", it))
}

func nonNegative(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	return v
}
