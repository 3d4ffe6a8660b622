// Package command provides the command registry, parser, and built-in
// character-build command definitions and handlers.
package command

// Categories for organizing commands.
const (
	CategoryAttributes = "attributes"
	CategorySkills     = "skills"
	CategoryTraits     = "traits"
	CategoryEquipment  = "equipment"
	CategorySystem     = "system"
)

// Handler identifiers mapping commands to their implementation.
const (
	HandlerShow    = "show"
	HandlerPoints  = "points"
	HandlerRaise   = "raise"
	HandlerLower   = "lower"
	HandlerSet     = "set"
	HandlerMod     = "mod"
	HandlerSkill   = "skill"
	HandlerTrait   = "trait"
	HandlerGear    = "gear"
	HandlerCarry   = "carry"
	HandlerRoll    = "roll"
	HandlerCatalog = "catalog"
	HandlerHelp    = "help"
	HandlerQuit    = "quit"
)

// Command defines a user-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to the user.
	Help string
	// Category groups the command for the help listing.
	Category string
	// Handler identifies the implementation.
	Handler string
}

// BuiltinCommands returns all built-in commands.
func BuiltinCommands() []Command {
	return []Command{
		// Attributes and budget
		{Name: "show", Aliases: []string{"sheet", "ls"}, Help: "Show the sheet (show [attributes|skills|traits|gear|load])", Category: CategoryAttributes, Handler: HandlerShow},
		{Name: "points", Aliases: []string{"budget"}, Help: "Set the point budget (points <n>)", Category: CategoryAttributes, Handler: HandlerPoints},
		{Name: "raise", Aliases: []string{"up", "+"}, Help: "Raise an attribute (raise <attr> [times])", Category: CategoryAttributes, Handler: HandlerRaise},
		{Name: "lower", Aliases: []string{"down", "-"}, Help: "Lower an attribute (lower <attr> [times])", Category: CategoryAttributes, Handler: HandlerLower},
		{Name: "set", Aliases: nil, Help: "Set a primary attribute (set <ST|DX|IQ|HT> <value>)", Category: CategoryAttributes, Handler: HandlerSet},
		{Name: "mod", Aliases: []string{"modifier"}, Help: "Set a cost modifier (mod <key> <percent> [on|off])", Category: CategoryAttributes, Handler: HandlerMod},

		// Skills and traits
		{Name: "skill", Aliases: []string{"sk"}, Help: "Manage skills (skill add|rm|up|down|level|diff|attr|preset|rename ...)", Category: CategorySkills, Handler: HandlerSkill},
		{Name: "trait", Aliases: []string{"tr"}, Help: "Manage traits (trait add|new|rm|kind|cost|level|rename|desc ...)", Category: CategoryTraits, Handler: HandlerTrait},

		// Equipment and load
		{Name: "gear", Aliases: []string{"eq", "equipment"}, Help: "Manage equipment (gear add|new|rm|weight|cost|rename|melee|ranged|armor|desc ...)", Category: CategoryEquipment, Handler: HandlerGear},
		{Name: "carry", Aliases: []string{"load"}, Help: "Set carried weight directly (carry <lbs>)", Category: CategoryEquipment, Handler: HandlerCarry},
		{Name: "roll", Aliases: []string{"r"}, Help: "Roll dice (roll <3d|1d+2|thrust|swing>)", Category: CategoryEquipment, Handler: HandlerRoll},

		// System commands
		{Name: "catalog", Aliases: []string{"cat"}, Help: "List catalog templates (catalog [skills|traits|equipment])", Category: CategorySystem, Handler: HandlerCatalog},
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Leave the sheet", Category: CategorySystem, Handler: HandlerQuit},
	}
}
