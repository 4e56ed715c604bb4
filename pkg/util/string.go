package util

import (
	"regexp"
	"strings"
)

var colorMarker = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// RemoveColors strips CSI sequences (colors and cursor movement) and
// carriage returns from input, leaving text safe to append to a log.
func RemoveColors(input string) string {
	return strings.ReplaceAll(colorMarker.ReplaceAllString(input, ""), "\r", "")
}

// HasEscapes reports whether input contains any CSI sequence.
func HasEscapes(input string) bool {
	return colorMarker.MatchString(input)
}
