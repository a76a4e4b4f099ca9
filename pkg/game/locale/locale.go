// Package locale holds the user-facing strings of the game.
package locale

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var enPo []byte

var po = load()

func load() *gotext.Po {
	p := gotext.NewPo()
	p.Parse(enPo)
	return p
}

// Get translates key, formatting it with vars when given. Unknown keys are
// returned unchanged.
func Get(key string, vars ...any) string {
	return po.Get(key, vars...)
}
