package util

import "golang.org/x/crypto/ssh/terminal"

// GetConsoleWidth returns the width of the terminal attached to fd,
// or 0 when fd isn't a terminal.
func GetConsoleWidth(fd int) int {
	width, _, err := terminal.GetSize(fd)
	if err != nil {
		return 0
	}

	return width
}
