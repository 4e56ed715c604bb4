package style

import (
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
)

func TestDisabledPassesThrough(t *testing.T) {
	apply := New(false)

	assert.Equal(t, "-", apply([]string{"cyan", "bold"}, "-"))
}

func TestNoStyles(t *testing.T) {
	apply := New(true)

	assert.Equal(t, "|", apply(nil, "|"))
}

func TestSingleStyle(t *testing.T) {
	apply := New(true)

	assert.Equal(t, aurora.Cyan("-").String(), apply([]string{"cyan"}, "-"))
}

func TestCombinedStyles(t *testing.T) {
	apply := New(true)

	expected := aurora.Colorize("/", aurora.CyanFg|aurora.BoldFm).String()
	assert.Equal(t, expected, apply([]string{"bold", "cyan"}, "/"))
}

func TestLaterForegroundWins(t *testing.T) {
	apply := New(true)

	assert.Equal(t, aurora.Green("o").String(), apply([]string{"red", "green"}, "o"))
}

func TestUnknownStylesIgnored(t *testing.T) {
	apply := New(true)

	assert.Equal(t, "x", apply([]string{"sparkly"}, "x"))
	assert.Equal(t, aurora.Yellow("x").String(), apply([]string{"sparkly", "Yellow"}, "x"))
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("cyanBright")
	assert.True(t, ok)
	assert.Equal(t, aurora.CyanFg|aurora.BrightFg, c)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "*", Plain([]string{"red"}, "*"))
}
