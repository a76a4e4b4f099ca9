package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "spence/pkg/engine/input"
	"spence/pkg/engine/world"
)

// keyCodes maps keys to the raw codes known to the binding layer
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyPageUp, "page_up"},
	{ebiten.KeyPageDown, "page_down"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyM, "m"},
	{ebiten.KeyTab, "tab"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyE, "e"},
	{ebiten.KeyF, "f"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyF12, "f12"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.WithField("width", w).WithField("height", h).Info("window opened")
	}
	if e.quit.Load() {
		return ebiten.Termination
	}

	e.handleZoom()

	if intent := e.checkMouse(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	}
	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	}
	return nil
}

// send hands an intent to the game goroutine without blocking the frame
func (e *EbitenRenderer) send(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
		// Channel full, drop input
	}
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.increaseTileSize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.decreaseTileSize()
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.resetTileSize()
	}
}

// increaseTileSize increases the tile/font size
func (e *EbitenRenderer) increaseTileSize() {
	if e.tileSize < maxTileSize {
		e.tileSize += tileSizeStep
		e.invalidateFontCache()
	}
}

// decreaseTileSize decreases the tile/font size
func (e *EbitenRenderer) decreaseTileSize() {
	if e.tileSize > minTileSize {
		e.tileSize -= tileSizeStep
		e.invalidateFontCache()
	}
}

// resetTileSize resets tile size to default
func (e *EbitenRenderer) resetTileSize() {
	e.tileSize = defaultTileSize
	e.invalidateFontCache()
}

// cellAt converts screen coordinates to a map cell
func (e *EbitenRenderer) cellAt(x, y int) (world.Pos, bool) {
	s := e.currentScene()
	if s == nil || x < mapMargin || y < headerHeight+mapMargin {
		return world.Pos{}, false
	}
	p := world.P((x-mapMargin)/e.tileSize, (y-headerHeight-mapMargin)/e.tileSize)
	return p, p.X < s.Size.X && p.Y < s.Size.Y
}

// checkMouse reports hover changes and clicks
func (e *EbitenRenderer) checkMouse() engineinput.Intent {
	p, ok := e.cellAt(ebiten.CursorPosition())
	if !ok {
		e.hoverValid = false
		return engineinput.Intent{}
	}

	code := ""
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		code = "mouse_left"
	case !e.hoverValid || p != e.hover:
		code = "mouse_move"
	default:
		return engineinput.Intent{}
	}
	e.hover, e.hoverValid = p, true

	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    engineinput.DeviceMouse,
		Code:      code,
		Target:    p,
		HasTarget: true,
	}))
}

// checkInput maps the first just-pressed key to an intent
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range keyCodes {
		if inpututil.IsKeyJustPressed(k.key) {
			return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
				Device: engineinput.DeviceKeyboard,
				Code:   k.code,
			}))
		}
	}
	return engineinput.Intent{}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
