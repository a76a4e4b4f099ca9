// Package gameplay turns player intents into orders on the game state.
package gameplay

import (
	engineinput "spence/pkg/engine/input"
	"spence/pkg/engine/world"
	"spence/pkg/game/devtools"
	"spence/pkg/game/locale"
	"spence/pkg/game/renderer"
	"spence/pkg/game/state"
)

// Session is one interactive game: the state, what the player is looking at
// and whether the loop should stop
type Session struct {
	Game *state.Game
	View renderer.View
	Quit bool

	// ScreenshotDir is where screenshots are written
	ScreenshotDir string
}

// NewSession starts a session with the cursor on the selected unit
func NewSession(g *state.Game) *Session {
	s := &Session{Game: g, ScreenshotDir: "."}
	s.focusSelected()
	return s
}

func (s *Session) focusSelected() {
	if u := s.Game.Selected; u != nil {
		s.View.Cursor = u.Pos
	}
}

// Run renders and processes input until the player quits
func Run(s *Session, r renderer.Renderer) {
	for !s.Quit {
		r.Clear()
		r.RenderFrame(s.Game, s.View)
		ProcessIntent(s, r.GetInput())
	}
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(s *Session, intent engineinput.Intent) {
	g := s.Game

	switch intent.Action {
	case engineinput.ActionNone, engineinput.ActionZoomIn, engineinput.ActionZoomOut:
		// zoom is handled by the graphical renderer itself
		return

	case engineinput.ActionQuit:
		s.Quit = true
		return

	case engineinput.ActionCursorNorth:
		s.moveCursor(world.North)
		return

	case engineinput.ActionCursorSouth:
		s.moveCursor(world.South)
		return

	case engineinput.ActionCursorWest:
		s.moveCursor(world.West)
		return

	case engineinput.ActionCursorEast:
		s.moveCursor(world.East)
		return

	case engineinput.ActionCursorAt:
		s.pointAt(intent)
		return

	case engineinput.ActionFloorUp:
		s.View.Cursor.Z = min(s.View.Cursor.Z+1, g.Terrain.Floors()-1)
		return

	case engineinput.ActionFloorDown:
		s.View.Cursor.Z = max(s.View.Cursor.Z-1, 0)
		return

	case engineinput.ActionConfirm:
		s.pointAt(intent)
		s.moveSelected()
		return

	case engineinput.ActionNextUnit:
		if err := g.SelectNext(); err != nil {
			logMessage(g, locale.Get("CANNOT_MOVE"), err)
		}
		s.focusSelected()
		return

	case engineinput.ActionEndTurn:
		if err := g.EndTurn(); err != nil {
			logMessage(g, locale.Get("CANNOT_MOVE"), err)
		}
		logMessage(g, locale.Get("TURN"), g.TurnNo, locale.Get("SIDE_"+g.Turn.String()))
		s.focusSelected()
		return

	case engineinput.ActionToggleFog:
		s.View.Fog = !s.View.Fog
		if s.View.Fog {
			logMessage(g, "%s", locale.Get("FOG_ON"))
		} else {
			logMessage(g, "%s", locale.Get("FOG_OFF"))
		}
		return

	case engineinput.ActionScreenshot:
		path, err := devtools.SaveScreenshot(renderer.BuildScene(g, s.View), s.ScreenshotDir)
		if err != nil {
			logMessage(g, locale.Get("SCREENSHOT_FAILED"), err)
		} else {
			logMessage(g, locale.Get("SCREENSHOT_SAVED"), path)
		}
		return
	}

	logMessage(g, "%s", locale.Get("UNKNOWN_COMMAND"))
}

// moveCursor steps the cursor, staying on the map
func (s *Session) moveCursor(d world.Direction) {
	next := s.View.Cursor.Step(d)
	if s.Game.Terrain.InBounds(next.Flat()) {
		s.View.Cursor = next
	}
}

// pointAt moves the cursor to the intent's target on the viewed floor
func (s *Session) pointAt(intent engineinput.Intent) {
	if intent.HasTarget && s.Game.Terrain.InBounds(intent.Target) {
		s.View.Cursor = intent.Target.At(s.View.Cursor.Z)
	}
}

// moveSelected orders the selected unit to the cursor and hands the turn
// over once the side is out of AP
func (s *Session) moveSelected() {
	g := s.Game
	u := g.Selected
	if u == nil {
		logMessage(g, locale.Get("CANNOT_MOVE"), locale.Get("NO_SELECTION"))
		return
	}
	if err := g.Move(s.View.Cursor); err != nil {
		logMessage(g, locale.Get("CANNOT_MOVE"), err)
		return
	}
	logMessage(g, locale.Get("MOVED"), u.Name, u.Pos)

	if g.Selected == nil {
		if err := g.SelectNext(); err != nil {
			logMessage(g, locale.Get("CANNOT_MOVE"), err)
		}
	}
	if g.Done() {
		if err := g.EndTurnIfDone(); err != nil {
			logMessage(g, locale.Get("CANNOT_MOVE"), err)
		}
		logMessage(g, locale.Get("TURN"), g.TurnNo, locale.Get("SIDE_"+g.Turn.String()))
		s.focusSelected()
	}
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(msg, a...)
	g.AddMessage(formatted)
}
