package spinner

import (
	"testing"
	"time"

	"github.com/elseano/nspin/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func TestNextWrapsAround(t *testing.T) {
	frames := []string{"-", "\\", "|", "/"}

	index := 0
	var seen []string
	for i := 0; i < 6; i++ {
		var frame string
		index, frame = Next(frames, index)
		seen = append(seen, frame)
	}

	assert.Equal(t, []string{"-", "\\", "|", "/", "-", "\\"}, seen)
	assert.Equal(t, 2, index)
}

func TestNextOutOfRange(t *testing.T) {
	next, frame := Next([]string{"a", "b"}, 5)
	assert.Equal(t, "b", frame)
	assert.Equal(t, 0, next)

	next, frame = Next([]string{"a", "b"}, -1)
	assert.Equal(t, "b", frame)
	assert.Equal(t, 0, next)
}

func TestNextEmpty(t *testing.T) {
	next, frame := Next(nil, 3)

	assert.Equal(t, 0, next)
	assert.Equal(t, "", frame)
}

func TestCharSets(t *testing.T) {
	frames, err := CharSet("bounce")
	assert.NoError(t, err)
	assert.Equal(t, []string{".", "o", "O", "o"}, frames)

	frames[0] = "changed"
	assert.Equal(t, ".", CharSets["bounce"][0], "CharSet returns a copy")

	_, err = CharSet("missing")
	assert.ErrorIs(t, err, errs.ErrUnknownCharSet)

	names := CharSetNames()
	assert.Len(t, names, len(CharSets))
	assert.Equal(t, "arrows", names[0])
}

func TestWithCharSet(t *testing.T) {
	h := newHarness(true)

	assert.Equal(t, CharSets["dots"], h.spinner(WithCharSet("dots")).Frames())
	assert.Equal(t, DefaultFrames, h.spinner(WithCharSet("nope")).Frames())
}

func TestElapsedFloorsToMilliseconds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 12*time.Millisecond, Elapsed(start, start.Add(12*time.Millisecond+999*time.Microsecond)))
	assert.Equal(t, time.Duration(0), Elapsed(start, start.Add(-time.Second)))
	assert.Equal(t, time.Duration(0), Elapsed(start, start))
}

func TestParsePosition(t *testing.T) {
	assert.Equal(t, Right, ParsePosition("right"))
	assert.Equal(t, Right, ParsePosition(" RIGHT "))
	assert.Equal(t, Left, ParsePosition("left"))
	assert.Equal(t, Left, ParsePosition("middle"))
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "left", Left.String())
}
