package spinner

import (
	"fmt"
	"io"

	"github.com/elseano/nspin/pkg/term"
	"github.com/elseano/nspin/pkg/util"
	"github.com/muesli/reflow/truncate"
)

// renderer draws one spinner's line. rows is the distance from the resting
// cursor up to the spinner's row, or -1 when the spinner isn't registered.
type renderer interface {
	tick(s *Spinner, rows int)
	final(s *Spinner, rows int, text string)
}

// rendererFor picks the strategy for the console as it is right now.
func rendererFor(c term.Console) renderer {
	if c.Interactive() {
		if cursor, ok := c.(term.Cursor); ok {
			return &interactiveRenderer{out: c, cursor: cursor}
		}
	}

	return &degradedRenderer{out: c}
}

// interactiveRenderer rewrites the spinner's row in place.
type interactiveRenderer struct {
	out    term.Console
	cursor term.Cursor
}

func (r *interactiveRenderer) tick(s *Spinner, rows int) {
	if rows < 0 {
		return
	}

	frame := s.style(s.format, s.advance())
	r.draw(rows, s.compose(frame))
}

func (r *interactiveRenderer) final(s *Spinner, rows int, text string) {
	if rows < 0 {
		return
	}

	r.draw(rows, text)

	// The resting row may hold stray output; leave it empty.
	r.cursor.ClearLine()
}

func (r *interactiveRenderer) draw(rows int, line string) {
	if sized, ok := r.out.(term.Sized); ok {
		if width := sized.Width(); width > 1 {
			line = truncate.String(line, uint(width-1))
		}
	}

	r.cursor.MoveCursor(-rows)
	r.cursor.ClearLine()
	write(r.out, line)
	r.cursor.MoveCursor(rows)
}

// degradedRenderer appends one line per call, for pipes and log files. Escape
// sequences are stripped.
type degradedRenderer struct {
	out io.Writer
}

func (r *degradedRenderer) tick(s *Spinner, _ int) {
	frame := s.advance()
	line := fmt.Sprintf("%s %s (%dms)\n", s.text, frame, s.elapsed().Milliseconds())
	write(r.out, util.RemoveColors(line))
}

func (r *degradedRenderer) final(_ *Spinner, _ int, text string) {
	write(r.out, util.RemoveColors(text)+"\n")
}

func write(w io.Writer, s string) {
	util.Logger.Trace().Str("output", util.InspectString(s)).Msg("Spinner write")

	if _, err := io.WriteString(w, s); err != nil {
		util.Logger.Debug().Err(err).Msg("Spinner write failed")
	}
}
