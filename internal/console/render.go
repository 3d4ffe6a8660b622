package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/cory-johannsen/pointbuy/internal/game/command"
	"github.com/cory-johannsen/pointbuy/internal/game/inventory"
	"github.com/cory-johannsen/pointbuy/internal/game/sheet"
	"github.com/cory-johannsen/pointbuy/internal/game/trait"
)

// Sections accepted by RenderSnapshot.
const (
	SectionAll        = ""
	SectionAttributes = "attributes"
	SectionSkills     = "skills"
	SectionTraits     = "traits"
	SectionGear       = "gear"
	SectionLoad       = "load"
)

// ParseSection maps user input to a section name, accepting prefixes.
func ParseSection(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SectionAll, true
	}
	for _, name := range []string{SectionAttributes, SectionSkills, SectionTraits, SectionGear, SectionLoad} {
		if strings.HasPrefix(name, s) {
			return name, true
		}
	}
	if strings.HasPrefix("equipment", s) {
		return SectionGear, true
	}
	if strings.HasPrefix("encumbrance", s) {
		return SectionLoad, true
	}
	return "", false
}

// RenderSnapshot formats a sheet snapshot, or one section of it, as colored text.
func RenderSnapshot(snap sheet.Snapshot, items []inventory.Item, section string) string {
	var b strings.Builder
	b.WriteString(renderTotals(snap))
	all := section == SectionAll
	if all || section == SectionAttributes {
		b.WriteString(renderAttributes(snap))
	}
	if all || section == SectionSkills {
		b.WriteString(renderSkills(snap))
	}
	if all || section == SectionTraits {
		b.WriteString(renderTraits(snap))
	}
	if all || section == SectionGear {
		b.WriteString(RenderInventory(items))
	}
	if all || section == SectionLoad {
		b.WriteString(renderLoad(snap))
	}
	return b.String()
}

func heading(title string) string {
	return "\n" + Colorize(BrightYellow, title) + "\n"
}

func renderTotals(snap sheet.Snapshot) string {
	t := snap.Totals
	bd := snap.Breakdown
	return Colorf(Bold, "Points: %d total, %d spent, ", t.Total, t.Spent) +
		Colorf(budgetColor(t.Remaining), "%d remaining", t.Remaining) + "\n" +
		Colorf(Dim, "  attributes %d  secondary %d  skills %d  advantages %d  disadvantages %d",
			bd.Primary, bd.Secondary, bd.Skills, bd.Advantages, bd.Disadvantages) + "\n"
}

func renderAttributes(snap sheet.Snapshot) string {
	var b strings.Builder
	b.WriteString(heading("Attributes"))
	for _, p := range snap.Primaries {
		fmt.Fprintf(&b, "  %s%-3s%s %-13s %3d  %s[%d/lvl]%s  %+d pts\n",
			BrightCyan, p.ID, Reset, p.Name, p.Value, Dim, p.EffectiveCost, Reset, p.Spent)
	}
	b.WriteString(heading("Secondary"))
	for _, s := range snap.Secondaries {
		delta := ""
		if s.Delta != 0 {
			delta = fmt.Sprintf(" (base %g, %+g)", s.Base, s.Delta)
		}
		fmt.Fprintf(&b, "  %s%-10s%s %6g%s  %s[%d/lvl]%s  %+d pts\n",
			Cyan, s.ID, Reset, s.Value, delta, Dim, s.EffectiveCost, Reset, s.Spent)
	}
	var mods []string
	for _, m := range snap.Modifiers {
		if m.Percent == 0 {
			continue
		}
		state := ""
		if !m.Enabled {
			state = " (off)"
		}
		mods = append(mods, fmt.Sprintf("%s %s%s", m.Key, m.Description, state))
	}
	if len(mods) > 0 {
		b.WriteString(Colorf(Magenta, "  Modifiers: %s", strings.Join(mods, ", ")) + "\n")
	}
	return b.String()
}

func renderSkills(snap sheet.Snapshot) string {
	var b strings.Builder
	b.WriteString(heading("Skills"))
	if len(snap.Skills) == 0 {
		b.WriteString(Colorize(Dim, "  none") + "\n")
	}
	for i, s := range snap.Skills {
		level := Colorize(Dim, "unset")
		switch {
		case s.HasLevel:
			color := White
			if s.Automatic {
				color = BrightGreen
			}
			level = Colorf(color, "%d", s.Level) + fmt.Sprintf(" %s (%s)", s.Relative, s.Rating)
		case s.HasPreset():
			level = Colorf(Dim, "preset %s", s.Preset)
		}
		fmt.Fprintf(&b, "  %2d. %-20s %s/%-2s %3d pts  %s\n",
			i+1, s.Name, s.Attribute, s.Difficulty, s.Points, level)
	}
	return b.String()
}

func renderTraits(snap sheet.Snapshot) string {
	var b strings.Builder
	b.WriteString(heading("Traits"))
	if len(snap.Traits) == 0 {
		b.WriteString(Colorize(Dim, "  none") + "\n")
	}
	for i, t := range snap.Traits {
		color := Green
		if t.Kind == trait.Disadvantage {
			color = Red
		}
		name := t.Name
		if t.Level != nil {
			name = fmt.Sprintf("%s %d", name, *t.Level)
		}
		fmt.Fprintf(&b, "  %2d. %-24s %s %s", i+1, name, Colorf(color, "%-12s", t.Kind), Colorf(color, "%+d", t.Cost))
		if t.Description != "" {
			b.WriteString(Colorize(Dim, "  "+t.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderInventory formats the equipment list.
func RenderInventory(items []inventory.Item) string {
	var b strings.Builder
	b.WriteString(heading("Equipment"))
	if len(items) == 0 {
		b.WriteString(Colorize(Dim, "  none") + "\n")
		return b.String()
	}
	var weight, cost float64
	for i, it := range items {
		base := inventory.Base(it)
		weight += base.Weight
		cost += base.Cost
		fmt.Fprintf(&b, "  %2d. %-20s %-7s %6g lbs  $%-8g %s\n",
			i+1, base.Name, it.Kind(), base.Weight, base.Cost, Colorize(Dim, itemDetail(it)))
	}
	fmt.Fprintf(&b, "  %s\n", Colorf(Bold, "Total: %g lbs, $%g", weight, cost))
	return b.String()
}

func itemDetail(it inventory.Item) string {
	switch v := it.(type) {
	case *inventory.MeleeWeapon:
		return fmt.Sprintf("dmg %s reach %s parry %s ST %d", v.Damage, v.Reach, v.Parry, v.MinST)
	case *inventory.RangedWeapon:
		return fmt.Sprintf("dmg %s acc %d range %s RoF %s shots %s ST %d bulk %s",
			v.Damage, v.Accuracy, v.Range, v.RateOfFire, v.Shots, v.MinST, v.Bulk)
	case *inventory.Armor:
		return fmt.Sprintf("%s DR %d", v.Location, v.DR)
	case *inventory.Gear:
		return v.Description
	}
	return ""
}

func renderLoad(snap sheet.Snapshot) string {
	e := snap.Encumbrance
	var b strings.Builder
	b.WriteString(heading("Load"))
	fmt.Fprintf(&b, "  Basic Lift %g lbs, carrying %g lbs: %s\n", e.Lift, e.Carried,
		Colorf(tierColor(e.Tier.Level), "%s (%d)", e.Tier.Label, e.Tier.Level))
	for _, l := range e.Limits {
		limit := "above"
		if !math.IsInf(l.MaxWeight, 1) {
			limit = fmt.Sprintf("up to %g lbs", l.MaxWeight)
		}
		marker := " "
		if l.Tier.Level == e.Tier.Level {
			marker = "*"
		}
		fmt.Fprintf(&b, "  %s %-12s %-18s move x%.1f  dodge %+d\n",
			marker, l.Tier.Label, limit, l.Tier.MoveMultiplier, l.Tier.DodgePenalty)
	}
	c := e.Combat
	fmt.Fprintf(&b, "  Dodge %d (base %d)  Move %d  DX %d\n", c.Dodge, c.BaseDodge, c.Move, c.DX)
	if snap.HasDamage {
		fmt.Fprintf(&b, "  Damage: %s\n", snap.Damage)
	}
	return b.String()
}

func tierColor(level int) string {
	switch {
	case level == 0:
		return Green
	case level <= 2:
		return Yellow
	default:
		return Red
	}
}

// RenderHelp lists the registry's commands by category.
func RenderHelp(reg *command.Registry) string {
	labels := map[string]string{
		command.CategoryAttributes: "Attributes",
		command.CategorySkills:     "Skills",
		command.CategoryTraits:     "Traits",
		command.CategoryEquipment:  "Equipment",
		command.CategorySystem:     "System",
	}
	var b strings.Builder
	b.WriteString(Colorize(BrightWhite, "Available commands:") + "\n")
	byCategory := reg.CommandsByCategory()
	for _, cat := range command.Categories {
		cmds := byCategory[cat]
		if len(cmds) == 0 {
			continue
		}
		b.WriteString(Colorf(BrightYellow, "  %s:", labels[cat]) + "\n")
		for _, cmd := range cmds {
			aliases := ""
			if len(cmd.Aliases) > 0 {
				aliases = " (" + strings.Join(cmd.Aliases, ", ") + ")"
			}
			b.WriteString(Colorf(Green, "    %-8s", cmd.Name) + aliases + ": " + cmd.Help + "\n")
		}
	}
	return b.String()
}
