// Package style applies named text styles to spinner glyphs.
package style

import (
	"strings"

	"github.com/elseano/nspin/pkg/util"
	"github.com/logrusorgru/aurora"
)

// Func styles text with the named styles, applied in order.
type Func func(styles []string, text string) string

var names = map[string]aurora.Color{
	"bold":          aurora.BoldFm,
	"dim":           aurora.FaintFm,
	"faint":         aurora.FaintFm,
	"italic":        aurora.ItalicFm,
	"underline":     aurora.UnderlineFm,
	"blink":         aurora.SlowBlinkFm,
	"inverse":       aurora.ReverseFm,
	"reverse":       aurora.ReverseFm,
	"hidden":        aurora.ConcealFm,
	"strikethrough": aurora.CrossedOutFm,

	"black":   aurora.BlackFg,
	"red":     aurora.RedFg,
	"green":   aurora.GreenFg,
	"yellow":  aurora.YellowFg,
	"blue":    aurora.BlueFg,
	"magenta": aurora.MagentaFg,
	"cyan":    aurora.CyanFg,
	"white":   aurora.WhiteFg,
	"gray":    aurora.BlackFg | aurora.BrightFg,
	"grey":    aurora.BlackFg | aurora.BrightFg,

	"blackbright":   aurora.BlackFg | aurora.BrightFg,
	"redbright":     aurora.RedFg | aurora.BrightFg,
	"greenbright":   aurora.GreenFg | aurora.BrightFg,
	"yellowbright":  aurora.YellowFg | aurora.BrightFg,
	"bluebright":    aurora.BlueFg | aurora.BrightFg,
	"magentabright": aurora.MagentaFg | aurora.BrightFg,
	"cyanbright":    aurora.CyanFg | aurora.BrightFg,
	"whitebright":   aurora.WhiteFg | aurora.BrightFg,

	"bgblack":   aurora.BlackBg,
	"bgred":     aurora.RedBg,
	"bggreen":   aurora.GreenBg,
	"bgyellow":  aurora.YellowBg,
	"bgblue":    aurora.BlueBg,
	"bgmagenta": aurora.MagentaBg,
	"bgcyan":    aurora.CyanBg,
	"bgwhite":   aurora.WhiteBg,
}

// Lookup resolves a style name, case-insensitively.
func Lookup(name string) (aurora.Color, bool) {
	c, ok := names[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// New returns a Func which colorizes when enabled, and passes text through
// unchanged otherwise. Unknown style names are skipped.
func New(enabled bool) Func {
	au := aurora.NewAurora(enabled)

	return func(styles []string, text string) string {
		if len(styles) == 0 {
			return text
		}

		var color aurora.Color
		for _, name := range styles {
			c, ok := Lookup(name)
			if !ok {
				util.Logger.Debug().Str("style", name).Msg("Ignoring unknown style")
				continue
			}
			color = merge(color, c)
		}

		if color == 0 {
			return text
		}

		return au.Colorize(text, color).String()
	}
}

// merge combines two colors. A later foreground or background replaces an
// earlier one, formats accumulate.
func merge(into, c aurora.Color) aurora.Color {
	if c&fgMask != 0 {
		into &^= fgMask
	}
	if c&bgMask != 0 {
		into &^= bgMask
	}
	return into | c
}

var (
	fgMask = aurora.WhiteFg | aurora.BrightFg
	bgMask = aurora.WhiteBg | aurora.BrightBg
)

// Plain never styles.
func Plain(_ []string, text string) string {
	return text
}
