package cli

import (
	"regexp"

	"github.com/elseano/nspin/pkg/util"
	"github.com/kyokomi/emoji"
)

var emojiCode = regexp.MustCompile(`:[a-z0-9_+\-]+:`)

// Expand substitutes $VARIABLES from lookup and then :emoji: codes. Unknown
// emoji codes are left as they are.
func Expand(lookup util.Lookup, text string) string {
	text = util.SubEnv(lookup, text)

	codes := emoji.CodeMap()

	return emojiCode.ReplaceAllStringFunc(text, func(code string) string {
		if value, ok := codes[code]; ok {
			return value
		}

		return code
	})
}
