package command

import (
	"strings"
	"unicode"
)

// ParseResult is a command line split into its command word and arguments.
type ParseResult struct {
	// Command is the lowercased command word.
	Command string
	// Args are the whitespace-separated words after the command.
	Args []string
	// RawArgs is the text after the command with inner spacing kept, so names
	// and descriptions containing spaces survive.
	RawArgs string
}

// CommentPrefix starts a line that Parse ignores, so build scripts piped into
// the console may be annotated.
const CommentPrefix = "#"

// Parse splits a line into a command and its arguments. A leading "+" or "-"
// is a command of its own, so "+st 2" parses as "+" with args [st 2].
//
// Postcondition: Command is empty iff line is blank or a comment.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, CommentPrefix) {
		return ParseResult{}
	}

	var cmd, rest string
	switch {
	case line[0] == '+' || line[0] == '-':
		cmd, rest = line[:1], line[1:]
	default:
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			cmd, rest = line[:i], line[i:]
		} else {
			cmd = line
		}
	}

	rest = strings.TrimSpace(rest)
	result := ParseResult{Command: strings.ToLower(cmd), RawArgs: rest}
	if rest != "" {
		result.Args = strings.Fields(rest)
	}
	return result
}
