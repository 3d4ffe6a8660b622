package command

import (
	"fmt"
	"strings"
)

// HandleCatalog processes "catalog [skills|traits|equipment]".
func HandleCatalog(ctx *Context, args []string) string {
	section := ""
	if len(args) > 0 {
		section = strings.ToLower(args[0])
	}
	var b strings.Builder
	if section == "" || strings.HasPrefix(section, "sk") {
		b.WriteString("Skills:\n")
		for _, t := range ctx.Catalog.Skills {
			fmt.Fprintf(&b, "  %-20s %s/%s\n", t.Name, t.Attribute, t.Difficulty)
		}
	}
	if section == "" || strings.HasPrefix(section, "tr") {
		b.WriteString("Traits:\n")
		for _, t := range ctx.Catalog.Traits {
			fmt.Fprintf(&b, "  %-20s %-12s %d\n", t.Name, t.Kind, t.Cost)
		}
	}
	if section == "" || strings.HasPrefix(section, "eq") || strings.HasPrefix(section, "ge") {
		b.WriteString("Equipment:\n")
		for _, t := range ctx.Catalog.Equipment {
			fmt.Fprintf(&b, "  %-20s %-7s %g lbs $%g\n", t.Name, t.Kind, t.Weight, t.Cost)
		}
	}
	if b.Len() == 0 {
		return "Usage: catalog [skills|traits|equipment]"
	}
	return strings.TrimRight(b.String(), "\n")
}
