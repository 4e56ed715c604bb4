// Package term describes the console a spinner draws on, and provides an
// implementation over any io.Writer.
package term

import (
	"fmt"
	"io"
	"os"

	"github.com/elseano/nspin/pkg/util"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Console is the minimum a spinner needs: somewhere to write, and whether
// that somewhere is a live terminal.
type Console interface {
	io.Writer
	Interactive() bool
}

// Cursor is implemented by consoles which can reposition the cursor.
type Cursor interface {
	// MoveCursor moves the cursor dy rows. Negative values move up.
	MoveCursor(dy int)
	// ClearLine moves the cursor to column 0 and erases the line.
	ClearLine()
}

// Sized is implemented by consoles which know their width in columns.
type Sized interface {
	Width() int
}

// Output is a Console backed by an io.Writer, emitting ANSI sequences for
// cursor control when interactive.
type Output struct {
	out         io.Writer
	fd          int
	interactive bool
}

// NewOutput wraps w, detecting interactivity when w is a terminal file.
func NewOutput(w io.Writer) *Output {
	o := &Output{out: w, fd: -1}

	if f, ok := w.(*os.File); ok {
		o.fd = int(f.Fd())
		o.interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	util.Logger.Debug().Bool("interactive", o.interactive).Msg("Console detected")

	return o
}

// NewOutputWithMode wraps w with a fixed interactivity flag.
func NewOutputWithMode(w io.Writer, interactive bool) *Output {
	o := NewOutput(w)
	o.interactive = interactive
	return o
}

// Stdout is the process standard output.
func Stdout() *Output {
	return NewOutput(os.Stdout)
}

func (o *Output) Write(b []byte) (int, error) {
	return o.out.Write(b)
}

func (o *Output) Interactive() bool {
	return o.interactive
}

func (o *Output) MoveCursor(dy int) {
	switch {
	case dy < 0:
		fmt.Fprintf(o.out, termenv.CSI+termenv.CursorUpSeq, -dy)
	case dy > 0:
		fmt.Fprintf(o.out, termenv.CSI+termenv.CursorDownSeq, dy)
	}
}

func (o *Output) ClearLine() {
	fmt.Fprintf(o.out, "\r"+termenv.CSI+termenv.EraseLineSeq, 2)
}

// Width returns the terminal width, or 0 when unknown.
func (o *Output) Width() int {
	if o.fd < 0 || !o.interactive {
		return 0
	}

	return util.GetConsoleWidth(o.fd)
}
