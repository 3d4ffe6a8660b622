package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/pointbuy/internal/game/sheet"
	"github.com/cory-johannsen/pointbuy/internal/game/trait"
)

const traitUsage = `Usage:
  trait add <catalog name>
  trait new <advantage|disadvantage|perk|quirk> <cost> <name>
  trait rm <#|name>
  trait kind <#|name> <kind>
  trait cost <#|name> <points>
  trait level <#|name> <level|none>
  trait rename <#|name> <new name>
  trait desc <#|name> <text>`

// HandleTrait processes the "trait" command and its subcommands.
//
// Precondition: ctx.Sheet and ctx.Catalog must not be nil.
// Postcondition: On rejection the sheet is unchanged and the reason is returned.
func HandleTrait(ctx *Context, raw string) string {
	parts := splitArgs(raw, 2)
	if len(parts) == 0 {
		return traitUsage
	}
	sub, rest := strings.ToLower(parts[0]), ""
	if len(parts) > 1 {
		rest = parts[1]
	}

	switch sub {
	case "add":
		t, ok := ctx.Catalog.Trait(rest)
		if !ok {
			return fmt.Sprintf("%q is not in the catalog.\n%s", rest, traitUsage)
		}
		return addTrait(ctx, sheet.TraitSpecFrom(t))
	case "new":
		args := splitArgs(rest, 3)
		if len(args) < 3 {
			return traitUsage
		}
		k, err := trait.ParseKind(args[0])
		if err != nil {
			return Result("", err)
		}
		return addTrait(ctx, sheet.TraitSpec{Name: args[2], Kind: k, Cost: sheet.CoerceInt(args[1])})
	}

	args := splitArgs(rest, 2)
	if len(args) == 0 {
		return traitUsage
	}
	id, name, err := findTrait(ctx.Sheet, args[0])
	if err != nil {
		return Result("", err)
	}
	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}

	var edit trait.Edit
	switch sub {
	case "rm", "remove":
		return Result(fmt.Sprintf("Removed %s; %s.", name, remaining(ctx)), ctx.Sheet.RemoveTrait(id))
	case "kind":
		edit = trait.SetKind(arg)
	case "cost":
		edit = trait.SetCost(sheet.CoerceInt(arg))
	case "level", "lvl":
		if strings.EqualFold(arg, "none") || arg == "" {
			edit = trait.SetLevel{}
		} else {
			lvl := sheet.CoerceInt(arg)
			edit = trait.SetLevel{Level: &lvl}
		}
	case "rename", "name":
		if arg == "" {
			return traitUsage
		}
		edit = trait.SetName(arg)
	case "desc", "description":
		edit = trait.SetDescription(arg)
	default:
		return traitUsage
	}
	return Result(describeTrait(ctx, id), ctx.Sheet.EditTrait(id, edit))
}

func addTrait(ctx *Context, spec sheet.TraitSpec) string {
	id, err := ctx.Sheet.AddTrait(spec)
	if err != nil {
		return Result("", err)
	}
	return "Added " + describeTrait(ctx, id)
}

func findTrait(s *sheet.Sheet, ref string) (id, name string, err error) {
	traits := s.Snapshot().Traits
	i, err := resolveIndex(ref, len(traits), func(i int) string { return traits[i].Name })
	if err != nil {
		return "", "", fmt.Errorf("trait %w", err)
	}
	return traits[i].ID, traits[i].Name, nil
}

func describeTrait(ctx *Context, id string) string {
	t, ok := ctx.Sheet.Trait(id)
	if !ok {
		return remaining(ctx)
	}
	level := ""
	if t.Level != nil {
		level = fmt.Sprintf(" level %d", *t.Level)
	}
	return fmt.Sprintf("%s (%s%s): %+d points; %s.", t.Name, t.Kind, level, t.Cost, remaining(ctx))
}
