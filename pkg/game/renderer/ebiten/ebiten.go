// Package ebiten provides an Ebiten-based 2D graphical viewer: hovering a
// cell shows the selected unit's route to it, clicking moves there, and cells
// outside the side's field of view are fogged.
package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "spence/pkg/engine/input"
	"spence/pkg/engine/logger"
	"spence/pkg/game/locale"
	"spence/pkg/game/renderer"
)

var log = logger.Component("ebiten")

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  1024,
		windowHeight: 768,
		tileSize:     defaultTileSize,
		inputChan:    make(chan engineinput.Intent, 16),
	}
}

// Init loads the font and sets up the window
func (e *EbitenRenderer) Init() {
	src, err := loadMonoFont()
	if err != nil {
		log.WithError(err).Error("cannot load font")
	}
	e.monoFontSource = src

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("spence")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op: every Draw repaints the whole screen
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until Update reports an intent
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	return <-e.inputChan
}

// StyleText returns text unchanged; colours are chosen when drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message and strips the markup
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.StripMarkup(msg, args...)
}

// ShowMessage logs the message; in-game messages are drawn from the scene
func (e *EbitenRenderer) ShowMessage(msg string) {
	log.Info(msg)
}

// Run starts the Ebiten game loop. It must be called from the main goroutine
// and returns when the window is closed.
func (e *EbitenRenderer) Run() error {
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Quit makes the next Update end the game loop
func (e *EbitenRenderer) Quit() {
	e.quit.Store(true)
	log.Info(locale.Get("GOODBYE"))
}
