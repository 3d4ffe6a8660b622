// Package attribute defines primary and secondary character attributes and the
// rules that derive secondary baselines from primary values.
package attribute

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/pointbuy/internal/game/cost"
)

// ErrUnknownAttribute is returned when an attribute ID is not recognised.
var ErrUnknownAttribute = errors.New("unknown attribute")

// Primary attribute IDs.
const (
	ST = "ST"
	DX = "DX"
	IQ = "IQ"
	HT = "HT"
)

// Secondary attribute IDs.
const (
	HP         = "HP"
	FP         = "FP"
	Will       = "Will"
	Per        = "Per"
	BasicSpeed = "BasicSpeed"
	BasicMove  = "BasicMove"
)

// PrimaryIDs lists primary attributes in display order.
var PrimaryIDs = []string{ST, DX, IQ, HT}

// SecondaryIDs lists secondary attributes in display order.
var SecondaryIDs = []string{HP, FP, Will, Per, BasicSpeed, BasicMove}

// BaseValue is the value at which a primary attribute costs nothing.
const BaseValue = 10

// PrimaryFloor is the lowest value a primary attribute may take.
const PrimaryFloor = 1

var names = map[string]string{
	ST: "Strength", DX: "Dexterity", IQ: "Intelligence", HT: "Health",
	HP: "Hit Points", FP: "Fatigue Points", Will: "Will", Per: "Perception",
	BasicSpeed: "Basic Speed", BasicMove: "Basic Move",
}

// Name returns the display name for id, or id itself when unknown.
func Name(id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return id
}

var aliases = map[string]string{
	"st": ST, "dx": DX, "iq": IQ, "ht": HT,
	"hp": HP, "fp": FP, "will": Will, "per": Per,
	"basicspeed": BasicSpeed, "speed": BasicSpeed, "bs": BasicSpeed,
	"basicmove": BasicMove, "move": BasicMove, "bm": BasicMove,
}

// Parse resolves an attribute ID or short alias such as "speed", case-insensitively.
func Parse(s string) (string, error) {
	key := strings.ToLower(strings.NewReplacer(" ", "", "_", "").Replace(strings.TrimSpace(s)))
	if id, ok := aliases[key]; ok {
		return id, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownAttribute)
}

// IsPrimary reports whether id names a primary attribute.
func IsPrimary(id string) bool {
	switch id {
	case ST, DX, IQ, HT:
		return true
	}
	return false
}

// IsSecondary reports whether id names a secondary attribute.
func IsSecondary(id string) bool {
	switch id {
	case HP, FP, Will, Per, BasicSpeed, BasicMove:
		return true
	}
	return false
}

// Primary is a directly purchased attribute.
//
// Invariant: Value >= PrimaryFloor.
type Primary struct {
	ID           string
	Value        int
	CostPerLevel int
}

// Levels returns the number of levels bought above (or sold below) BaseValue.
func (p Primary) Levels() int {
	return p.Value - BaseValue
}

// Secondary is a formula-derived attribute adjustable on top of its base.
//
// Invariant: Value - Base is the user-chosen delta and survives every Rebase.
type Secondary struct {
	ID           string
	Base         float64
	Value        float64
	CostPerLevel int
}

// Delta returns the user-chosen adjustment above the formula base.
func (s Secondary) Delta() float64 {
	return s.Value - s.Base
}

// StepFor returns the adjustment granularity for a secondary attribute.
func StepFor(id string) float64 {
	if id == BasicSpeed {
		return 0.25
	}
	return 1
}

// FloorFor returns the lowest value a secondary attribute may take.
func FloorFor(id string) float64 {
	if id == BasicSpeed {
		return 0.25
	}
	return 1
}

// ModifierKey returns the cost-modifier key that prices id. Basic Move is
// priced by the shared movement key; every other attribute by its own ID.
func ModifierKey(id string) string {
	if id == BasicMove {
		return cost.KeyMove
	}
	return id
}

// ModifierKeys lists every cost-modifier key in display order.
func ModifierKeys() []string {
	keys := make([]string, 0, len(PrimaryIDs)+len(SecondaryIDs))
	keys = append(keys, PrimaryIDs...)
	for _, id := range SecondaryIDs {
		keys = append(keys, ModifierKey(id))
	}
	return keys
}

// Primaries is the fixed set of primary attributes keyed by ID.
type Primaries map[string]Primary

// Value returns the value for id, or 0 when id is absent.
func (p Primaries) Value(id string) int {
	return p[id].Value
}

// Secondaries is the fixed set of secondary attributes keyed by ID.
type Secondaries map[string]Secondary

// Costs holds per-level costs for every attribute.
type Costs struct {
	Primary   map[string]int
	Secondary map[string]int
}

// DefaultCosts returns the standard per-level costs.
func DefaultCosts() Costs {
	return Costs{
		Primary: map[string]int{ST: 10, DX: 20, IQ: 20, HT: 10},
		Secondary: map[string]int{
			HP: 2, FP: 3, Will: 5, Per: 5, BasicSpeed: 20, BasicMove: 5,
		},
	}
}

// Validate checks that every attribute has a non-negative cost.
func (c Costs) Validate() error {
	var errs []error
	for _, id := range PrimaryIDs {
		v, ok := c.Primary[id]
		if !ok {
			errs = append(errs, fmt.Errorf("missing cost for %s", id))
		} else if v < 0 {
			errs = append(errs, fmt.Errorf("cost for %s must be >= 0, got %d", id, v))
		}
	}
	for _, id := range SecondaryIDs {
		v, ok := c.Secondary[id]
		if !ok {
			errs = append(errs, fmt.Errorf("missing cost for %s", id))
		} else if v < 0 {
			errs = append(errs, fmt.Errorf("cost for %s must be >= 0, got %d", id, v))
		}
	}
	return errors.Join(errs...)
}

// NewPrimaries returns every primary attribute at BaseValue.
func NewPrimaries(c Costs) Primaries {
	p := make(Primaries, len(PrimaryIDs))
	for _, id := range PrimaryIDs {
		p[id] = Primary{ID: id, Value: BaseValue, CostPerLevel: c.Primary[id]}
	}
	return p
}

// NewSecondaries returns every secondary attribute at its base for primaries, with no delta.
func NewSecondaries(primaries Primaries, c Costs) Secondaries {
	bases := Bases(primaries)
	s := make(Secondaries, len(SecondaryIDs))
	for _, id := range SecondaryIDs {
		s[id] = Secondary{ID: id, Base: bases[id], Value: bases[id], CostPerLevel: c.Secondary[id]}
	}
	return s
}
