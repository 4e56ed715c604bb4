package util

import (
	"strings"
)

// InspectString makes line breaks and escape sequences visible, for logs.
func InspectString(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\033", "\\033")
	return s
}
