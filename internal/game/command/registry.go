package command

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ErrAmbiguous is returned by Lookup when a prefix matches more than one command.
var ErrAmbiguous = errors.New("ambiguous command")

// ErrUnknownCommand is returned by Lookup when nothing matches.
var ErrUnknownCommand = errors.New("unknown command")

// Categories lists command categories in help display order.
var Categories = []string{CategoryAttributes, CategorySkills, CategoryTraits, CategoryEquipment, CategorySystem}

// Registry resolves command words, aliases and unambiguous name prefixes.
type Registry struct {
	byWord map[string]*Command // canonical names and aliases
	names  []string            // canonical names, sorted
}

// NewRegistry builds a Registry from cmds.
//
// Postcondition: Returns an error when two commands share a name or alias, or
// a command has no handler or an unknown category.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{byWord: make(map[string]*Command, len(cmds)*2)}
	var errs []error
	claim := func(word string, cmd *Command) {
		if prev, taken := r.byWord[word]; taken {
			errs = append(errs, fmt.Errorf("%q is used by both %s and %s", word, prev.Name, cmd.Name))
			return
		}
		r.byWord[word] = cmd
	}

	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Handler == "" {
			errs = append(errs, fmt.Errorf("command %s has no handler", cmd.Name))
		}
		if !slices.Contains(Categories, cmd.Category) {
			errs = append(errs, fmt.Errorf("command %s has unknown category %q", cmd.Name, cmd.Category))
		}
		claim(cmd.Name, cmd)
		for _, alias := range cmd.Aliases {
			claim(alias, cmd)
		}
		r.names = append(r.names, cmd.Name)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	sort.Strings(r.names)
	return r, nil
}

// DefaultRegistry returns a Registry of BuiltinCommands.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve returns the command for an exact name or alias, or for a prefix of
// exactly one canonical name.
func (r *Registry) Resolve(word string) (*Command, bool) {
	cmd, err := r.Lookup(word)
	return cmd, err == nil
}

// Lookup is Resolve with the failure reason: ErrUnknownCommand or ErrAmbiguous
// listing the candidates.
func (r *Registry) Lookup(word string) (*Command, error) {
	word = strings.ToLower(word)
	if cmd, ok := r.byWord[word]; ok {
		return cmd, nil
	}
	if word == "" {
		return nil, ErrUnknownCommand
	}
	var matches []string
	for _, name := range r.names {
		if strings.HasPrefix(name, word) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%q: %w", word, ErrUnknownCommand)
	case 1:
		return r.byWord[matches[0]], nil
	default:
		return nil, fmt.Errorf("%q could be %s: %w", word, strings.Join(matches, ", "), ErrAmbiguous)
	}
}

// Commands returns every command sorted by name.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byWord[name])
	}
	return out
}

// CommandsByCategory groups Commands by category, each group sorted by name.
func (r *Registry) CommandsByCategory() map[string][]*Command {
	groups := make(map[string][]*Command, len(Categories))
	for _, cmd := range r.Commands() {
		groups[cmd.Category] = append(groups[cmd.Category], cmd)
	}
	return groups
}
