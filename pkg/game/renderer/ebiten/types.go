package ebiten

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "spence/pkg/engine/input"
	"spence/pkg/engine/world"
	"spence/pkg/game/renderer"
)

// EbitenRenderer is the Ebiten-based graphical renderer. Game logic runs on
// its own goroutine: it publishes scenes through RenderFrame and blocks in
// GetInput, while Ebiten calls Update and Draw on the main thread.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	monoFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedUIFace       *text.GoTextFace

	// snapshot is the last scene published by the game goroutine
	snapshot      *renderer.Scene
	snapshotMutex sync.RWMutex

	// hovered cell, to report pointer moves once per cell
	hover      world.Pos
	hoverValid bool

	inputChan chan engineinput.Intent
	quit      atomic.Bool

	windowOpenedLogged bool
}
