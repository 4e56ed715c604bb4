package spinner

import (
	"fmt"
	"sort"

	"github.com/elseano/nspin/pkg/errs"
	"golang.org/x/exp/maps"
)

// DefaultFrames is the rotation used when no frames are configured.
var DefaultFrames = []string{"-", "\\", "|", "/"}

// CharSets are the named frame sets available to WithCharSet.
var CharSets = map[string][]string{
	"line":   {"-", "\\", "|", "/"},
	"dots":   {"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	"circle": {"◐", "◓", "◑", "◒"},
	"arrows": {"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"},
	"bounce": {".", "o", "O", "o"},
	"pipe":   {"┤", "┘", "┴", "└", "├", "┌", "┬", "┐"},
	"toggle": {"=", "*", "-"},
	"star":   {"✶", "✸", "✹", "✺", "✹", "✷"},
}

// CharSet returns a copy of the named frame set.
func CharSet(name string) ([]string, error) {
	frames, ok := CharSets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownCharSet, name)
	}

	return append([]string(nil), frames...), nil
}

// CharSetNames lists the available charsets alphabetically.
func CharSetNames() []string {
	names := maps.Keys(CharSets)
	sort.Strings(names)
	return names
}

// Next returns the frame at index and the index that follows it.
// An empty frame list yields "" and 0.
func Next(frames []string, index int) (int, string) {
	if len(frames) == 0 {
		return 0, ""
	}

	index %= len(frames)
	if index < 0 {
		index += len(frames)
	}

	return (index + 1) % len(frames), frames[index]
}
