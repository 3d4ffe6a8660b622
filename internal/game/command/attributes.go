package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/pointbuy/internal/game/attribute"
	"github.com/cory-johannsen/pointbuy/internal/game/cost"
	"github.com/cory-johannsen/pointbuy/internal/game/sheet"
)

func remaining(ctx *Context) string {
	return fmt.Sprintf("%d points remaining", ctx.Sheet.Remaining())
}

func attributeValue(snap sheet.Snapshot, id string) string {
	for _, p := range snap.Primaries {
		if p.ID == id {
			return strconv.Itoa(p.Value)
		}
	}
	for _, s := range snap.Secondaries {
		if s.ID == id {
			return strconv.FormatFloat(s.Value, 'f', -1, 64)
		}
	}
	return "?"
}

// HandlePoints processes "points <n>". Non-numeric input sets the budget to 0.
func HandlePoints(ctx *Context, args []string) string {
	if len(args) == 0 {
		return fmt.Sprintf("Budget is %d points; %s.", ctx.Sheet.TotalPoints(), remaining(ctx))
	}
	ctx.Sheet.SetTotalPointsText(args[0])
	return fmt.Sprintf("Budget set to %d points; %s.", ctx.Sheet.TotalPoints(), remaining(ctx))
}

// HandleAdjust processes "raise <attr> [times]" and "lower <attr> [times]".
// Steps are applied one at a time and stop at the first rejection.
//
// Precondition: direction is 1 or -1.
func HandleAdjust(ctx *Context, args []string, direction int) string {
	verb := "raise"
	if direction < 0 {
		verb = "lower"
	}
	if len(args) == 0 {
		return fmt.Sprintf("Usage: %s <attribute> [times]", verb)
	}
	id, err := attribute.Parse(args[0])
	if err != nil {
		return Result("", err)
	}
	times := 1
	if len(args) > 1 {
		times = sheet.CoerceInt(args[1])
		if times < 1 {
			return fmt.Sprintf("Usage: %s <attribute> [times]", verb)
		}
	}

	adjust := ctx.Sheet.AdjustSecondaryAttribute
	if attribute.IsPrimary(id) {
		adjust = ctx.Sheet.AdjustPrimaryAttribute
	}
	done := 0
	for ; done < times; done++ {
		if err = adjust(id, direction); err != nil {
			break
		}
	}
	msg := fmt.Sprintf("%s is now %s; %s.", attribute.Name(id), attributeValue(ctx.Sheet.Snapshot(), id), remaining(ctx))
	if err != nil {
		return fmt.Sprintf("%s\nStopped after %d of %d: %v", msg, done, times, err)
	}
	return msg
}

// HandleSet processes "set <primary> <value>".
func HandleSet(ctx *Context, args []string) string {
	if len(args) < 2 {
		return "Usage: set <ST|DX|IQ|HT> <value>"
	}
	id, err := attribute.Parse(args[0])
	if err != nil {
		return Result("", err)
	}
	if !attribute.IsPrimary(id) {
		return fmt.Sprintf("%s is derived; use raise or lower.", attribute.Name(id))
	}
	err = ctx.Sheet.SetPrimaryAttribute(id, sheet.CoerceInt(args[1]))
	return Result(fmt.Sprintf("%s set to %s; %s.", attribute.Name(id), attributeValue(ctx.Sheet.Snapshot(), id), remaining(ctx)), err)
}

// HandleMod processes "mod <key> <percent> [on|off]".
func HandleMod(ctx *Context, args []string) string {
	if len(args) < 2 {
		return "Usage: mod <ST|DX|IQ|HT|HP|FP|Will|Per|BasicSpeed|MOVE> <percent> [on|off]"
	}
	key := strings.ToUpper(args[0])
	if key != cost.KeyMove {
		id, err := attribute.Parse(args[0])
		if err != nil {
			return Result("", err)
		}
		key = attribute.ModifierKey(id)
	}
	enabled := true
	if len(args) > 2 {
		on, err := parseOnOff(args[2])
		if err != nil {
			return Result("", err)
		}
		enabled = on
	}
	percent := cost.ClampPercent(sheet.CoerceInt(strings.TrimSuffix(args[1], "%")))
	err := ctx.Sheet.SetCostModifier(key, percent, enabled)
	state := "enabled"
	if !enabled {
		state = "disabled"
	}
	return Result(fmt.Sprintf("%s modifier: %s (%s); %s.", key, cost.Describe(percent), state, remaining(ctx)), err)
}

// HandleCarry processes "carry <weight>". Gear commands overwrite the value
// with the equipment total.
func HandleCarry(ctx *Context, args []string) string {
	if len(args) == 0 {
		return fmt.Sprintf("Carrying %g lbs.", ctx.Sheet.CarriedWeight())
	}
	ctx.Sheet.SetCarriedWeightText(args[0])
	tier := ctx.Sheet.Snapshot().Encumbrance.Tier
	return fmt.Sprintf("Carrying %g lbs (%s encumbrance).", ctx.Sheet.CarriedWeight(), tier.Label)
}
