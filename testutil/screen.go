package testutil

import (
	"fmt"
	"strings"
	"sync"

	a "github.com/Azure/go-ansiterm"
)

// Screen is a minimal virtual terminal. Bytes written to it are parsed as
// ANSI and applied to a grid of lines, so tests can assert what a user would
// actually see. Only ASCII is supported.
type Screen struct {
	mu     sync.Mutex
	parser *a.AnsiParser
	lines  [][]byte
	cursor cursorInfo
}

var _ a.AnsiEventHandler = (*Screen)(nil)

type cursorInfo struct {
	line   int
	column int
}

func NewScreen() *Screen {
	s := &Screen{lines: [][]byte{{}}}
	s.parser = a.CreateParser("Ground", s)
	return s
}

func (s *Screen) Write(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.parser.Parse(b)
}

// Lines returns every line, with trailing spaces removed.
func (s *Screen) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.lines))
	for i, l := range s.lines {
		out[i] = strings.TrimRight(string(l), " ")
	}

	return out
}

// String is every line joined with newlines.
func (s *Screen) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Cursor returns the current row and column.
func (s *Screen) Cursor() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursor.line, s.cursor.column
}

func (s *Screen) allocLine(line int) {
	for len(s.lines) <= line {
		s.lines = append(s.lines, []byte{})
	}
}

// Print
func (s *Screen) Print(b byte) error {
	s.allocLine(s.cursor.line)

	l := s.lines[s.cursor.line]
	for len(l) <= s.cursor.column {
		l = append(l, ' ')
	}
	l[s.cursor.column] = b

	s.lines[s.cursor.line] = l
	s.cursor.column++

	return nil
}

// Execute C0 commands
func (s *Screen) Execute(b byte) error {
	switch b {
	case '\n': // Terminals in cooked mode translate LF to CR+LF.
		s.cursor.line++
		s.cursor.column = 0
		s.allocLine(s.cursor.line)
	case '\r':
		s.cursor.column = 0
	}

	return nil
}

// Cursor Up
func (s *Screen) CUU(count int) error {
	s.cursor.line -= count

	if s.cursor.line < 0 {
		return fmt.Errorf("cursor moved above the top of the screen by %d", -s.cursor.line)
	}

	return nil
}

// CUrsor Down
func (s *Screen) CUD(count int) error {
	s.cursor.line += count
	s.allocLine(s.cursor.line)

	return nil
}

// Cursor Forward
func (s *Screen) CUF(count int) error {
	s.cursor.column += count

	return nil
}

// Cursor Backward
func (s *Screen) CUB(count int) error {
	s.cursor.column -= count
	if s.cursor.column < 0 {
		s.cursor.column = 0
	}

	return nil
}

// Cursor to Next Line
func (s *Screen) CNL(count int) error {
	s.cursor.column = 0
	return s.CUD(count)
}

// Cursor to Previous Line
func (s *Screen) CPL(count int) error {
	s.cursor.column = 0
	return s.CUU(count)
}

// Cursor Horizontal position Absolute
func (s *Screen) CHA(pos int) error {
	s.cursor.column = pos - 1
	if s.cursor.column < 0 {
		s.cursor.column = 0
	}

	return nil
}

// Vertical line Position Absolute
func (s *Screen) VPA(pos int) error {
	s.cursor.line = pos - 1
	s.allocLine(s.cursor.line)
	return nil
}

// CUrsor Position
func (s *Screen) CUP(row int, col int) error {
	s.cursor.line = row - 1
	s.cursor.column = col - 1
	s.allocLine(s.cursor.line)
	return nil
}

// Horizontal and Vertical Position (depends on PUM)
func (s *Screen) HVP(row int, col int) error {
	return s.CUP(row, col)
}

// Text Cursor Enable Mode
func (s *Screen) DECTCEM(enable bool) error {
	return nil
}

// Origin Mode
func (s *Screen) DECOM(enable bool) error {
	return fmt.Errorf("not implemented: OriginMode %+v", enable)
}

// 132 Column Mode
func (s *Screen) DECCOLM(enable bool) error {
	return fmt.Errorf("not implemented: 132ColumnMode %+v", enable)
}

// Erase in Display
func (s *Screen) ED(count int) error {
	return fmt.Errorf("not implemented: EraseDisplay %+v", count)
}

// Erase in Line
func (s *Screen) EL(mode int) error {
	s.allocLine(s.cursor.line)
	l := s.lines[s.cursor.line]

	switch mode {
	case 0:
		if s.cursor.column < len(l) {
			s.lines[s.cursor.line] = l[:s.cursor.column]
		}
	case 1:
		for i := 0; i <= s.cursor.column && i < len(l); i++ {
			l[i] = ' '
		}
	case 2:
		s.lines[s.cursor.line] = []byte{}
	}

	return nil
}

// Insert Line
func (s *Screen) IL(count int) error {
	return fmt.Errorf("not implemented: InsertLine %+v", count)
}

// Delete Line
func (s *Screen) DL(count int) error {
	return fmt.Errorf("not implemented: DeleteLine %+v", count)
}

// Insert Character
func (s *Screen) ICH(count int) error {
	return fmt.Errorf("not implemented: InsertChar %+v", count)
}

// Delete Character
func (s *Screen) DCH(count int) error {
	return fmt.Errorf("not implemented: DeleteChar %+v", count)
}

// Operating System Command, e.g. window titles. Ignored.
func (s *Screen) OSC(b []byte) error {
	return nil
}

// Set Graphics Rendition. Colors aren't tracked.
func (s *Screen) SGR(values []int) error {
	return nil
}

// Pan Down
func (s *Screen) SU(count int) error {
	return fmt.Errorf("not implemented: PanDown %+v", count)
}

// Pan Up
func (s *Screen) SD(count int) error {
	return fmt.Errorf("not implemented: PanUp %+v", count)
}

// Device Attributes
func (s *Screen) DA(values []string) error {
	return fmt.Errorf("not implemented: DeviceAttrs %+v", values)
}

// Set Top and Bottom Margins
func (s *Screen) DECSTBM(top, bottom int) error {
	return fmt.Errorf("not implemented: Margins %+v, %+v", top, bottom)
}

// Index
func (s *Screen) IND() error {
	return fmt.Errorf("not implemented: Index")
}

// Reverse Index
func (s *Screen) RI() error {
	return fmt.Errorf("not implemented: ReverseIndex")
}

// Flush updates from previous commands
func (s *Screen) Flush() error {
	return nil
}
