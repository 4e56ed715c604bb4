package spinner

import (
	"io"
	"testing"
	"time"

	"github.com/elseano/nspin/pkg/style"
	"github.com/elseano/nspin/pkg/term"
	"github.com/elseano/nspin/testutil"
	"github.com/stretchr/testify/assert"
)

type sizedOutput struct {
	*term.Output
	width int
}

func (s sizedOutput) Width() int { return s.width }

func TestLinesTruncatedToConsoleWidth(t *testing.T) {
	ft := testutil.NewFakeTime()
	screen := testutil.NewScreen()
	out := sizedOutput{Output: term.NewOutputWithMode(screen, true), width: 12}
	reg := NewRegistry(out, WithClock(ft), WithScheduler(ft), WithExitHook(nil))

	New(WithRegistry(reg), WithStyle(style.Plain), WithInterval(10*time.Millisecond)).Start("A long status message")
	ft.Advance(10 * time.Millisecond)

	assert.Equal(t, []string{"- A long st", ""}, screen.Lines())
}

func TestRendererSelection(t *testing.T) {
	interactive := term.NewOutputWithMode(io.Discard, true)
	piped := term.NewOutputWithMode(io.Discard, false)

	assert.IsType(t, &interactiveRenderer{}, rendererFor(interactive))
	assert.IsType(t, &degradedRenderer{}, rendererFor(piped))
	assert.IsType(t, &degradedRenderer{}, rendererFor(plainConsole{io.Discard}))
}

func TestUnregisteredInteractiveRenderIsNoOp(t *testing.T) {
	rec := &testutil.Recorder{}
	r := rendererFor(term.NewOutputWithMode(rec, true))

	h := newHarness(true)
	s := h.spinner()

	r.tick(s, -1)
	r.final(s, -1, "Done")

	assert.Empty(t, rec.Writes())
	assert.Equal(t, 0, s.CurrentFrame())
}

func TestDegradedStripsEscapes(t *testing.T) {
	h := newHarness(false)
	s := h.spinner(WithInterval(10 * time.Millisecond)).Start("\x1b[31mred\x1b[0m")

	h.clock.Advance(10 * time.Millisecond)
	s.Stop("\x1b[1mbold\x1b[0m done")

	assert.Equal(t, []string{"red - (10ms)\n", "bold done\n"}, h.writes.Writes())
}

func TestDegradedStripsCarriageReturns(t *testing.T) {
	h := newHarness(false)
	s := h.spinner(WithInterval(10 * time.Millisecond)).Start("50%\r60%")

	h.clock.Advance(10 * time.Millisecond)
	s.Stop("\rDone")

	assert.Equal(t, []string{"50%60% - (10ms)\n", "Done\n"}, h.writes.Writes())
}
