package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/pointbuy/internal/game/command"
)

// Session reads commands line by line and writes rendered responses.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	build    *command.Context
	registry *command.Registry
	logger   *zap.Logger
	color    bool
}

// NewSession creates a Session over in and out operating on build.
//
// Precondition: every argument must be non-nil; build's fields must be non-nil.
// Postcondition: When color is false all ANSI sequences are stripped from output.
func NewSession(in io.Reader, out io.Writer, build *command.Context, logger *zap.Logger, color bool) *Session {
	return &Session{
		in:       bufio.NewReader(in),
		out:      out,
		build:    build,
		registry: command.DefaultRegistry(),
		logger:   logger,
		color:    color,
	}
}

type readResult struct {
	line string
	err  error
}

// readLines feeds lines from s.in to the returned channel until a read fails
// or done is closed.
func (s *Session) readLines(done <-chan struct{}) <-chan readResult {
	lines := make(chan readResult)
	go func() {
		for {
			line, err := s.in.ReadString('\n')
			select {
			case lines <- readResult{line: line, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

// Run executes the read-dispatch-write loop until quit, end of input or ctx
// cancellation. Cancellation is observed while waiting for input.
//
// Postcondition: Returns nil on quit or end of input; ctx.Err() on cancellation;
// otherwise the first read or write error.
func (s *Session) Run(ctx context.Context) error {
	if err := s.write(RenderSnapshot(s.build.Sheet.Snapshot(), s.build.Inventory.Items(), SectionAll)); err != nil {
		return err
	}
	done := make(chan struct{})
	defer close(done)
	var lines <-chan readResult
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.prompt(); err != nil {
			return err
		}
		if lines == nil {
			lines = s.readLines(done)
		}
		var r readResult
		select {
		case <-ctx.Done():
			s.logger.Debug("cancelled while waiting for input")
			return ctx.Err()
		case r = <-lines:
		}
		if r.err != nil && !errors.Is(r.err, io.EOF) {
			return fmt.Errorf("reading input: %w", r.err)
		}
		eof := errors.Is(r.err, io.EOF)
		line := strings.TrimSpace(r.line)
		if line != "" {
			out, quit := s.Dispatch(line)
			if out != "" {
				if werr := s.write(out + "\n"); werr != nil {
					return werr
				}
			}
			if quit {
				return nil
			}
		}
		if eof {
			s.logger.Debug("input closed")
			return nil
		}
	}
}

// Dispatch executes a single command line and returns the text to show and
// whether the session should end.
func (s *Session) Dispatch(line string) (string, bool) {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return "", false
	}
	cmd, err := s.registry.Lookup(parsed.Command)
	if errors.Is(err, command.ErrAmbiguous) {
		return Colorf(Yellow, "Be more specific: %v", err), false
	}
	if err != nil {
		return Colorf(Dim, "Unknown command '%s'. Type help for a list.", parsed.Command), false
	}
	s.logger.Debug("command", zap.String("name", cmd.Name), zap.String("args", parsed.RawArgs))

	b := s.build
	var out string
	switch cmd.Handler {
	case command.HandlerShow:
		section, ok := ParseSection(parsed.RawArgs)
		if !ok {
			return Colorize(Red, "Usage: show [attributes|skills|traits|gear|load]"), false
		}
		return RenderSnapshot(b.Sheet.Snapshot(), b.Inventory.Items(), section), false
	case command.HandlerPoints:
		out = command.HandlePoints(b, parsed.Args)
	case command.HandlerRaise:
		out = command.HandleAdjust(b, parsed.Args, 1)
	case command.HandlerLower:
		out = command.HandleAdjust(b, parsed.Args, -1)
	case command.HandlerSet:
		out = command.HandleSet(b, parsed.Args)
	case command.HandlerMod:
		out = command.HandleMod(b, parsed.Args)
	case command.HandlerSkill:
		out = command.HandleSkill(b, parsed.RawArgs)
	case command.HandlerTrait:
		out = command.HandleTrait(b, parsed.RawArgs)
	case command.HandlerGear:
		if parsed.RawArgs == "" {
			return RenderInventory(b.Inventory.Items()), false
		}
		out = command.HandleGear(b, parsed.RawArgs)
	case command.HandlerCarry:
		out = command.HandleCarry(b, parsed.Args)
	case command.HandlerRoll:
		out = command.HandleRoll(b, parsed.Args)
	case command.HandlerCatalog:
		out = command.HandleCatalog(b, parsed.Args)
	case command.HandlerHelp:
		return RenderHelp(s.registry), false
	case command.HandlerQuit:
		return Colorize(Cyan, "Goodbye."), true
	default:
		return Colorf(Dim, "You don't know how to '%s'.", parsed.Command), false
	}
	return colorResult(out), false
}

func colorResult(out string) string {
	if strings.HasPrefix(out, "Rejected:") {
		return Colorize(Red, out)
	}
	if strings.HasPrefix(out, "Usage") {
		return Colorize(Yellow, out)
	}
	return out
}

func (s *Session) prompt() error {
	remaining := s.build.Sheet.Remaining()
	return s.write(Colorf(budgetColor(remaining), "[%d pts]", remaining) + Colorize(BrightCyan, "> "))
}

func (s *Session) write(text string) error {
	if !s.color {
		text = StripANSI(text)
	}
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
