package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/pointbuy/internal/game/dice"
)

// HandleRoll processes "roll <expr>". "thrust" and "swing" roll the sheet's
// basic damage for its current ST.
//
// Precondition: ctx.Roller and ctx.Sheet must not be nil.
func HandleRoll(ctx *Context, args []string) string {
	if len(args) == 0 {
		return "Usage: roll <3d|1d+2|2d6-1|thrust|swing>"
	}
	var (
		label string
		expr  dice.Expression
	)
	switch strings.ToLower(args[0]) {
	case "thrust", "thr", "swing", "sw":
		snap := ctx.Sheet.Snapshot()
		if !snap.HasDamage {
			return "No basic damage is listed for this ST."
		}
		label, expr = "swing", snap.Damage.Swing
		if strings.HasPrefix(strings.ToLower(args[0]), "t") {
			label, expr = "thrust", snap.Damage.Thrust
		}
	default:
		e, err := dice.Parse(strings.Join(args, ""))
		if err != nil {
			return Result("", err)
		}
		expr = e
	}
	return fmt.Sprintf("%s (range %d-%d, avg %.1f)", ctx.Roller.Roll(label, expr), expr.Min(), expr.Max(), expr.Average())
}
