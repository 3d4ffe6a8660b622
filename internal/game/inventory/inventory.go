package inventory

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnknownItem is returned when no item has the given ID.
	ErrUnknownItem = errors.New("unknown item")
	// ErrKindMismatch is returned when a kind-specific update targets an item of another kind.
	ErrKindMismatch = errors.New("item kind mismatch")
)

// Inventory is an ordered list of items.
type Inventory struct {
	items []Item
}

// NewInventory returns an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add stores a copy of it under a fresh ID and returns that ID.
// Negative cost or weight is stored as 0.
//
// Precondition: it is non-nil.
// Postcondition: Get(id) returns an item equal to it apart from ID.
func (inv *Inventory) Add(it Item) string {
	c := clone(it)
	base := c.common()
	base.ID = uuid.New().String()
	base.Cost = nonNegative(base.Cost)
	base.Weight = nonNegative(base.Weight)
	inv.items = append(inv.items, c)
	return base.ID
}

// Remove deletes the item with id.
func (inv *Inventory) Remove(id string) error {
	i, err := inv.index(id)
	if err != nil {
		return err
	}
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	return nil
}

// Get returns a copy of the item with id.
func (inv *Inventory) Get(id string) (Item, bool) {
	i, err := inv.index(id)
	if err != nil {
		return nil, false
	}
	return clone(inv.items[i]), true
}

// Items returns copies of every item in insertion order.
//
// Postcondition: mutating the result does not affect the inventory.
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	for i, it := range inv.items {
		out[i] = clone(it)
	}
	return out
}

// Len returns the number of items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Rename changes the name of the item with id.
func (inv *Inventory) Rename(id, name string) error {
	return inv.update(id, func(c *Common) { c.Name = name })
}

// SetWeight changes the weight of the item with id. Negative weight is stored as 0.
func (inv *Inventory) SetWeight(id string, weight float64) error {
	return inv.update(id, func(c *Common) { c.Weight = nonNegative(weight) })
}

// SetCost changes the cost of the item with id. Negative cost is stored as 0.
func (inv *Inventory) SetCost(id string, cost float64) error {
	return inv.update(id, func(c *Common) { c.Cost = nonNegative(cost) })
}

// SetMeleeStats replaces the melee fields of the item with id.
//
// Postcondition: returns ErrKindMismatch unless the item is a *MeleeWeapon.
func (inv *Inventory) SetMeleeStats(id string, s MeleeStats) error {
	it, err := inv.find(id)
	if err != nil {
		return err
	}
	m, ok := it.(*MeleeWeapon)
	if !ok {
		return mismatch(id, it.Kind(), KindMelee)
	}
	m.MeleeStats = s
	return nil
}

// SetRangedStats replaces the ranged fields of the item with id.
func (inv *Inventory) SetRangedStats(id string, s RangedStats) error {
	it, err := inv.find(id)
	if err != nil {
		return err
	}
	r, ok := it.(*RangedWeapon)
	if !ok {
		return mismatch(id, it.Kind(), KindRanged)
	}
	r.RangedStats = s
	return nil
}

// SetArmorStats replaces the armor fields of the item with id.
func (inv *Inventory) SetArmorStats(id string, s ArmorStats) error {
	it, err := inv.find(id)
	if err != nil {
		return err
	}
	a, ok := it.(*Armor)
	if !ok {
		return mismatch(id, it.Kind(), KindArmor)
	}
	a.ArmorStats = s
	return nil
}

// SetGearDescription replaces the description of the gear item with id.
func (inv *Inventory) SetGearDescription(id, description string) error {
	it, err := inv.find(id)
	if err != nil {
		return err
	}
	g, ok := it.(*Gear)
	if !ok {
		return mismatch(id, it.Kind(), KindGear)
	}
	g.Description = description
	return nil
}

// TotalWeight returns the summed weight of every item.
//
// Postcondition: result >= 0.
func (inv *Inventory) TotalWeight() float64 {
	var total float64
	for _, it := range inv.items {
		total += it.common().Weight
	}
	return total
}

// TotalCost returns the summed cost of every item.
func (inv *Inventory) TotalCost() float64 {
	var total float64
	for _, it := range inv.items {
		total += it.common().Cost
	}
	return total
}

func (inv *Inventory) index(id string) (int, error) {
	for i, it := range inv.items {
		if it.common().ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("item %q: %w", id, ErrUnknownItem)
}

func (inv *Inventory) find(id string) (Item, error) {
	i, err := inv.index(id)
	if err != nil {
		return nil, err
	}
	return inv.items[i], nil
}

func (inv *Inventory) update(id string, fn func(*Common)) error {
	it, err := inv.find(id)
	if err != nil {
		return err
	}
	fn(it.common())
	return nil
}

func mismatch(id string, got, want Kind) error {
	return fmt.Errorf("item %q is %s, not %s: %w", id, got, want, ErrKindMismatch)
}
