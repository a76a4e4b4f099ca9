package renderer

import (
	"spence/pkg/engine/input"
	"spence/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleSubtle
	StyleWall
	StyleCover
	StyleClimbable
	StyleFloor
	StyleHole
	StyleYou
	StyleEnemy
	StyleSelected
	StyleRoute
	StyleCursor
	StyleTierNear
	StyleTierMid
	StyleTierFar
	StyleAction
	StyleDenied
	StyleItem
)

// TierStyle returns the style used for a movement tier
func TierStyle(tier int) TextStyle {
	switch tier {
	case 0:
		return StyleTierNear
	case 1:
		return StyleTierMid
	default:
		return StyleTierFar
	}
}

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: map, status bar and messages
	RenderFrame(g *state.Game, v View)

	// GetInput blocks until the player does something
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game, v View) {
	if Current != nil {
		Current.RenderFrame(g, v)
	}
}

// GetInput gets user input from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionQuit}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ApplyMarkup formats a message with the current renderer's markup, or
// strips the markup when no renderer is active
func ApplyMarkup(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return StripMarkup(msg, args...)
}
