package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/pointbuy/internal/game/inventory"
	"github.com/cory-johannsen/pointbuy/internal/game/sheet"
)

const gearUsage = `Usage:
  gear add <catalog name>
  gear new <melee|ranged|armor|gear> <name>
  gear rm <#|name>
  gear weight|cost <#|name> <value>
  gear rename <#|name> <new name>
  gear melee <#|name> <damage> <reach> <parry> <min ST>
  gear ranged <#|name> <damage> <acc> <range> <RoF> <shots> <min ST> <bulk>
  gear armor <#|name> <location> <DR>
  gear desc <#|name> <text>`

// HandleGear processes the "gear" command and its subcommands. After every
// change the equipment weight is pushed into the sheet.
//
// Precondition: ctx.Sheet, ctx.Inventory and ctx.Catalog must not be nil.
func HandleGear(ctx *Context, raw string) string {
	defer ctx.syncWeight()

	parts := splitArgs(raw, 2)
	if len(parts) == 0 {
		return gearUsage
	}
	sub, rest := strings.ToLower(parts[0]), ""
	if len(parts) > 1 {
		rest = parts[1]
	}

	switch sub {
	case "add":
		t, ok := ctx.Catalog.Item(rest)
		if !ok {
			return fmt.Sprintf("%q is not in the catalog.\n%s", rest, gearUsage)
		}
		return addGear(ctx, t.Item())
	case "new":
		args := splitArgs(rest, 2)
		if len(args) < 2 {
			return gearUsage
		}
		k, err := inventory.ParseKind(args[0])
		if err != nil {
			return Result("", err)
		}
		it, err := inventory.New(k, args[1])
		if err != nil {
			return Result("", err)
		}
		return addGear(ctx, it)
	}

	args := splitArgs(rest, 2)
	if len(args) == 0 {
		return gearUsage
	}
	id, name, err := findItem(ctx.Inventory, args[0])
	if err != nil {
		return Result("", err)
	}
	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}
	fields := strings.Fields(arg)
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	inv := ctx.Inventory
	switch sub {
	case "rm", "remove":
		err = inv.Remove(id)
		return Result(fmt.Sprintf("Removed %s; carrying %g lbs.", name, inv.TotalWeight()), err)
	case "weight":
		err = inv.SetWeight(id, sheet.CoerceFloat(arg))
	case "cost":
		err = inv.SetCost(id, sheet.CoerceFloat(arg))
	case "rename", "name":
		if arg == "" {
			return gearUsage
		}
		err = inv.Rename(id, arg)
	case "melee":
		err = inv.SetMeleeStats(id, inventory.MeleeStats{
			Damage: field(0), Reach: field(1), Parry: field(2), MinST: sheet.CoerceInt(field(3)),
		})
	case "ranged":
		err = inv.SetRangedStats(id, inventory.RangedStats{
			Damage: field(0), Accuracy: sheet.CoerceInt(field(1)), Range: field(2), RateOfFire: field(3),
			Shots: field(4), MinST: sheet.CoerceInt(field(5)), Bulk: field(6),
		})
	case "armor", "armour":
		err = inv.SetArmorStats(id, inventory.ArmorStats{Location: field(0), DR: sheet.CoerceInt(field(1))})
	case "desc", "description":
		err = inv.SetGearDescription(id, arg)
	default:
		return gearUsage
	}
	return Result(describeItem(ctx, id), err)
}

func addGear(ctx *Context, it inventory.Item) string {
	id := ctx.Inventory.Add(it)
	ctx.syncWeight()
	return "Added " + describeItem(ctx, id)
}

func findItem(inv *inventory.Inventory, ref string) (id, name string, err error) {
	items := inv.Items()
	i, err := resolveIndex(ref, len(items), func(i int) string { return inventory.Base(items[i]).Name })
	if err != nil {
		return "", "", fmt.Errorf("item %w", err)
	}
	b := inventory.Base(items[i])
	return b.ID, b.Name, nil
}

func describeItem(ctx *Context, id string) string {
	it, ok := ctx.Inventory.Get(id)
	if !ok {
		return ""
	}
	b := inventory.Base(it)
	return fmt.Sprintf("%s (%s, %g lbs, $%g); carrying %g lbs.", b.Name, it.Kind(), b.Weight, b.Cost, ctx.Inventory.TotalWeight())
}
