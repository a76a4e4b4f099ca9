package renderer

import (
	"fmt"
	"regexp"

	"spence/pkg/game/locale"
)

// Markup functions look like NAME{operand}: GT translates the operand,
// ITEM and ACTION highlight it.
var MarkupPattern = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:./()-]+)}`)

// StripMarkup formats msg and replaces every markup call by its plain text
func StripMarkup(msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}
	return MarkupPattern.ReplaceAllStringFunc(ret, func(m string) string {
		sub := MarkupPattern.FindStringSubmatch(m)
		if sub[1] == "GT" {
			return locale.Get(sub[2])
		}
		return sub[2]
	})
}
