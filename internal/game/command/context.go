package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/pointbuy/internal/game/dice"
	"github.com/cory-johannsen/pointbuy/internal/game/inventory"
	"github.com/cory-johannsen/pointbuy/internal/game/sheet"
	"github.com/cory-johannsen/pointbuy/internal/game/skill"
	"github.com/cory-johannsen/pointbuy/internal/game/trait"
)

// Catalog holds the read-only content templates a build can draw from.
type Catalog struct {
	Skills    []*skill.Template
	Traits    []*trait.Template
	Equipment []*inventory.Template
}

// Skill returns the skill template named name, case-insensitively.
func (c *Catalog) Skill(name string) (*skill.Template, bool) {
	for _, t := range c.Skills {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// Trait returns the trait template named name, case-insensitively.
func (c *Catalog) Trait(name string) (*trait.Template, bool) {
	for _, t := range c.Traits {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// Item returns the equipment template named name, case-insensitively.
func (c *Catalog) Item(name string) (*inventory.Template, bool) {
	for _, t := range c.Equipment {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// Context is the state every build command handler operates on.
//
// Invariant: Sheet's carried weight equals Inventory.TotalWeight() after every
// gear command.
type Context struct {
	Sheet     *sheet.Sheet
	Inventory *inventory.Inventory
	Catalog   *Catalog
	Roller    *dice.Roller
}

// syncWeight pushes the equipment total into the sheet.
func (c *Context) syncWeight() {
	c.Sheet.SetCarriedWeight(c.Inventory.TotalWeight())
}

// Result formats the outcome of a mutator for display.
func Result(ok string, err error) string {
	if err != nil {
		return "Rejected: " + err.Error()
	}
	return ok
}

// splitArgs splits raw into at most n whitespace-separated fields. The last
// field keeps the rest of raw with its inner spacing.
func splitArgs(raw string, n int) []string {
	var out []string
	rest := strings.TrimSpace(raw)
	for rest != "" && len(out) < n-1 {
		i := strings.IndexAny(rest, " \t")
		if i < 0 {
			break
		}
		out = append(out, rest[:i])
		rest = strings.TrimSpace(rest[i:])
	}
	if rest != "" {
		out = append(out, rest)
	}
	return out
}

// resolveIndex maps ref to a slice index. ref is a 1-based position or a
// case-insensitive name.
func resolveIndex(ref string, n int, nameAt func(int) string) (int, error) {
	if i, err := strconv.Atoi(ref); err == nil {
		if i < 1 || i > n {
			return -1, fmt.Errorf("no entry #%d", i)
		}
		return i - 1, nil
	}
	for i := 0; i < n; i++ {
		if strings.EqualFold(nameAt(i), ref) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no entry named %q", ref)
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "true", "enabled":
		return true, nil
	case "off", "no", "false", "disabled":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}
