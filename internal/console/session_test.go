package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/pointbuy/internal/console"
	"github.com/cory-johannsen/pointbuy/internal/game/attribute"
	"github.com/cory-johannsen/pointbuy/internal/game/command"
	"github.com/cory-johannsen/pointbuy/internal/game/dice"
	"github.com/cory-johannsen/pointbuy/internal/game/inventory"
	"github.com/cory-johannsen/pointbuy/internal/game/sheet"
	"github.com/cory-johannsen/pointbuy/internal/game/skill"
)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func newBuild(t *testing.T) *command.Context {
	t.Helper()
	s, err := sheet.New(sheet.Options{TotalPoints: 100}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return &command.Context{
		Sheet:     s,
		Inventory: inventory.NewInventory(),
		Catalog: &command.Catalog{
			Skills: []*skill.Template{
				{Name: "Broadsword", Attribute: attribute.DX, Difficulty: skill.Average},
			},
			Equipment: []*inventory.Template{
				{Name: "Backpack", Kind: inventory.KindGear, Cost: 60, Weight: 10},
			},
		},
		Roller: dice.NewLoggedRoller(zeroSource{}, zap.NewNop()),
	}
}

func run(t *testing.T, b *command.Context, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := console.NewSession(strings.NewReader(input), &out, b, zaptest.NewLogger(t), false)
	require.NoError(t, s.Run(context.Background()))
	return out.String()
}

func TestSession_RendersSheetAndPrompt(t *testing.T) {
	out := run(t, newBuild(t), "")
	assert.Contains(t, out, "Points: 100 total, 0 spent, 100 remaining")
	assert.Contains(t, out, "[100 pts]> ")
	assert.NotContains(t, out, "\033[", "color disabled")
}

func TestSession_RaiseUpdatesPrompt(t *testing.T) {
	b := newBuild(t)
	out := run(t, b, "raise st 2\n")
	assert.Contains(t, out, "80 points remaining")
	assert.Contains(t, out, "[80 pts]> ")
	assert.Equal(t, 80, b.Sheet.Remaining())
}

func TestSession_QuitStopsReading(t *testing.T) {
	b := newBuild(t)
	out := run(t, b, "quit\nraise st\n")
	assert.Contains(t, out, "Goodbye.")
	assert.Equal(t, 100, b.Sheet.Remaining())
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	b := newBuild(t)
	run(t, b, "raise dx")
	assert.Equal(t, 80, b.Sheet.Remaining())
}

func TestSession_ScriptWithComments(t *testing.T) {
	b := newBuild(t)
	out := run(t, b, "# fighter\n+st 2\n\n-iq\nquit\n")
	assert.NotContains(t, out, "Unknown command")
	assert.Equal(t, 100-20+20, b.Sheet.Remaining())
}

func TestSession_UnknownCommand(t *testing.T) {
	out := run(t, newBuild(t), "fly away\n")
	assert.Contains(t, out, "Unknown command 'fly'")
}

func TestSession_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	s := console.NewSession(strings.NewReader("raise st\n"), &out, newBuild(t), zap.NewNop(), false)
	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
}

func TestSession_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	s := console.NewSession(pr, &bytes.Buffer{}, newBuild(t), zap.NewNop(), false)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestSession_Dispatch(t *testing.T) {
	b := newBuild(t)
	s := console.NewSession(strings.NewReader(""), &bytes.Buffer{}, b, zap.NewNop(), true)

	out, quit := s.Dispatch("skill add Broadsword")
	assert.False(t, quit)
	assert.Contains(t, console.StripANSI(out), "Broadsword")

	out, _ = s.Dispatch("show skills")
	plain := console.StripANSI(out)
	assert.Contains(t, plain, "Broadsword")
	assert.NotContains(t, plain, "Equipment")

	out, _ = s.Dispatch("show bogus")
	assert.Contains(t, console.StripANSI(out), "Usage: show")

	_, _ = s.Dispatch("gear add Backpack")
	out, _ = s.Dispatch("gear")
	assert.Contains(t, console.StripANSI(out), "Backpack")
	assert.Equal(t, 10.0, b.Sheet.CarriedWeight())

	out, _ = s.Dispatch("help")
	assert.Contains(t, console.StripANSI(out), "Available commands:")

	out, _ = s.Dispatch("s")
	assert.Contains(t, console.StripANSI(out), "Be more specific")

	_, quit = s.Dispatch("q")
	assert.True(t, quit)
}

func TestSession_RejectionIsRed(t *testing.T) {
	b := newBuild(t)
	s := console.NewSession(strings.NewReader(""), &bytes.Buffer{}, b, zap.NewNop(), true)
	out, _ := s.Dispatch("set st 30")
	assert.True(t, strings.HasPrefix(out, console.Red), "got %q", out)
}
