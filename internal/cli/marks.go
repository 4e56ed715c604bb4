package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

const (
	SymbolSucceeded = "✓"
	SymbolFailed    = "✗"
)

var (
	succeededColor = color.New(color.FgGreen, color.Bold)
	failedColor    = color.New(color.FgRed, color.Bold)
	elapsedColor   = color.New(color.Faint)
)

// Succeeded is the final line for a task which finished successfully.
func Succeeded(label string, elapsed time.Duration) string {
	return mark(succeededColor.Sprint(SymbolSucceeded), label, elapsed)
}

// Failed is the final line for a task which failed.
func Failed(label string, elapsed time.Duration) string {
	return mark(failedColor.Sprint(SymbolFailed), label, elapsed)
}

func mark(symbol string, label string, elapsed time.Duration) string {
	return fmt.Sprintf("%s %s %s", symbol, label, elapsedColor.Sprintf("(%s)", FormatElapsed(elapsed)))
}

// FormatElapsed renders short durations in milliseconds and longer ones in
// seconds with one decimal.
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	return fmt.Sprintf("%.1fs", d.Seconds())
}
