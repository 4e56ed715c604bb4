package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferIsNotInteractive(t *testing.T) {
	out := NewOutput(&bytes.Buffer{})

	assert.False(t, out.Interactive())
	assert.Equal(t, 0, out.Width())
}

func TestForcedMode(t *testing.T) {
	out := NewOutputWithMode(&bytes.Buffer{}, true)

	assert.True(t, out.Interactive())
}

func TestCursorSequences(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewOutputWithMode(buf, true)

	out.MoveCursor(-2)
	assert.Equal(t, "\x1b[2A", buf.String())
	buf.Reset()

	out.MoveCursor(3)
	assert.Equal(t, "\x1b[3B", buf.String())
	buf.Reset()

	out.MoveCursor(0)
	assert.Empty(t, buf.String())

	out.ClearLine()
	assert.Equal(t, "\r\x1b[2K", buf.String())
}

func TestWritePassesThrough(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewOutput(buf)

	n, err := out.Write([]byte("Loading"))

	assert.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, "Loading", buf.String())
}
