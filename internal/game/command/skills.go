package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/pointbuy/internal/game/attribute"
	"github.com/cory-johannsen/pointbuy/internal/game/sheet"
	"github.com/cory-johannsen/pointbuy/internal/game/skill"
)

const skillUsage = `Usage:
  skill add <catalog name>
  skill add <attr> <E|A|H|VH> <name>
  skill rm|up|down <#|name>
  skill level <#|name> <level>
  skill diff <#|name> <E|A|H|VH>
  skill attr <#|name> <ST|DX|IQ|HT>
  skill preset <#|name> <text>
  skill rename <#|name> <new name>`

// HandleSkill processes the "skill" command and its subcommands.
//
// Precondition: ctx.Sheet and ctx.Catalog must not be nil.
// Postcondition: On rejection the sheet is unchanged and the reason is returned.
func HandleSkill(ctx *Context, raw string) string {
	parts := splitArgs(raw, 2)
	if len(parts) == 0 {
		return skillUsage
	}
	sub, rest := strings.ToLower(parts[0]), ""
	if len(parts) > 1 {
		rest = parts[1]
	}
	if sub == "add" {
		return addSkill(ctx, rest)
	}

	args := splitArgs(rest, 2)
	if len(args) == 0 {
		return skillUsage
	}
	id, name, err := findSkill(ctx.Sheet, args[0])
	if err != nil {
		return Result("", err)
	}
	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}

	switch sub {
	case "rm", "remove":
		return Result(fmt.Sprintf("Removed %s; %s.", name, remaining(ctx)), ctx.Sheet.RemoveSkill(id))
	case "up", "+":
		err = ctx.Sheet.AdjustSkillPoints(id, 1)
	case "down", "-":
		err = ctx.Sheet.AdjustSkillPoints(id, -1)
	case "level", "lvl":
		if arg == "" {
			return skillUsage
		}
		err = ctx.Sheet.SetSkillLevel(id, sheet.CoerceInt(arg))
	case "diff", "difficulty":
		d, perr := skill.ParseDifficulty(arg)
		if perr != nil {
			return Result("", perr)
		}
		err = ctx.Sheet.SetSkillDifficulty(id, d)
	case "attr", "attribute":
		a, perr := attribute.Parse(arg)
		if perr != nil {
			return Result("", perr)
		}
		err = ctx.Sheet.SetSkillAttribute(id, a)
	case "preset":
		err = ctx.Sheet.SetSkillPreset(id, arg)
	case "rename", "name":
		if arg == "" {
			return skillUsage
		}
		err = ctx.Sheet.RenameSkill(id, arg)
	default:
		return skillUsage
	}
	return Result(describeSkill(ctx, id), err)
}

func addSkill(ctx *Context, rest string) string {
	if rest == "" {
		return skillUsage
	}
	var spec sheet.SkillSpec
	if t, ok := ctx.Catalog.Skill(rest); ok {
		spec = sheet.SkillSpecFrom(t)
	} else {
		args := splitArgs(rest, 3)
		if len(args) < 3 {
			return fmt.Sprintf("%q is not in the catalog.\n%s", rest, skillUsage)
		}
		attr, err := attribute.Parse(args[0])
		if err != nil {
			return Result("", err)
		}
		d, err := skill.ParseDifficulty(args[1])
		if err != nil {
			return Result("", err)
		}
		spec = sheet.SkillSpec{Name: args[2], Attribute: attr, Difficulty: d}
	}
	id, err := ctx.Sheet.AddSkill(spec)
	if err != nil {
		return Result("", err)
	}
	return "Added " + describeSkill(ctx, id)
}

func findSkill(s *sheet.Sheet, ref string) (id, name string, err error) {
	skills := s.Snapshot().Skills
	i, err := resolveIndex(ref, len(skills), func(i int) string { return skills[i].Name })
	if err != nil {
		return "", "", fmt.Errorf("skill %w", err)
	}
	return skills[i].ID, skills[i].Name, nil
}

func describeSkill(ctx *Context, id string) string {
	for _, v := range ctx.Sheet.Snapshot().Skills {
		if v.ID != id {
			continue
		}
		level := "unset"
		if v.HasLevel {
			level = fmt.Sprintf("%d (%s)", v.Level, v.Relative)
		} else if v.HasPreset() {
			level = "preset " + v.Preset
		}
		return fmt.Sprintf("%s %s/%s: %d points, level %s; %s.",
			v.Name, v.Attribute, v.Difficulty, v.Points, level, remaining(ctx))
	}
	return remaining(ctx)
}
