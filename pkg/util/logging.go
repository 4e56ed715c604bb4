package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

func init() {
	Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
}

// RedirectLogger sends all further log output to w, without colors.
func RedirectLogger(w io.Writer) {
	Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(zerolog.TraceLevel)
}

// DiscardLogs silences the logger entirely.
func DiscardLogs() {
	Logger = zerolog.Nop()
}

func Debugf(format string, args ...interface{}) {
	Logger.Debug().Msg(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}
