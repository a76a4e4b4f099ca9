package input

import (
	"sort"
	"time"

	"spence/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent of the player.
type Action int

const (
	ActionNone Action = iota

	// Cursor
	ActionCursorNorth
	ActionCursorSouth
	ActionCursorWest
	ActionCursorEast
	ActionCursorAt // pointer hover, carries a target
	ActionFloorUp
	ActionFloorDown

	// Orders
	ActionConfirm // move the selected unit to the cursor
	ActionNextUnit
	ActionEndTurn

	// Meta / UI
	ActionToggleFog
	ActionScreenshot
	ActionQuit
	ActionZoomIn
	ActionZoomOut
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Pointer devices also report the map cell they point at.
type Intent struct {
	Action    Action
	Target    world.Pos
	HasTarget bool
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time

	// map cell under the pointer, for mouse events
	Target    world.Pos
	HasTarget bool
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten and the terminal reader already report one event per press, so this
// only drops the timestamp.
type DebouncedInput struct {
	Device    Device
	Code      string
	Target    world.Pos
	HasTarget bool
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device:    raw.Device,
		Code:      raw.Code,
		Target:    raw.Target,
		HasTarget: raw.HasTarget,
	}
}

// reserved codes cannot be rebound
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"enter":       true,
	"mouse_left":  true,
	"mouse_move":  true,
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Cursor (arrows, Vim)
	"arrow_up":    ActionCursorNorth,
	"k":           ActionCursorNorth,
	"arrow_down":  ActionCursorSouth,
	"j":           ActionCursorSouth,
	"arrow_left":  ActionCursorWest,
	"h":           ActionCursorWest,
	"arrow_right": ActionCursorEast,
	"l":           ActionCursorEast,
	">":           ActionFloorUp,
	"page_up":     ActionFloorUp,
	"<":           ActionFloorDown,
	"page_down":   ActionFloorDown,

	// Orders
	"enter":      ActionConfirm,
	"m":          ActionConfirm,
	"mouse_left": ActionConfirm,
	"mouse_move": ActionCursorAt,
	"tab":        ActionNextUnit,
	"n":          ActionNextUnit,
	"e":          ActionEndTurn,

	// Meta
	"f":          ActionToggleFog,
	"p":          ActionScreenshot,
	"f12":        ActionScreenshot,
	"q":          ActionQuit,
	"escape":     ActionQuit,
	"=":          ActionZoomIn,
	"+":          ActionZoomIn,
	"numpad_add": ActionZoomIn,
	"-":          ActionZoomOut,
	"numpad_sub": ActionZoomOut,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Target: ev.Target, HasTarget: ev.HasTarget}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionCursorNorth:
		return "Cursor North"
	case ActionCursorSouth:
		return "Cursor South"
	case ActionCursorWest:
		return "Cursor West"
	case ActionCursorEast:
		return "Cursor East"
	case ActionCursorAt:
		return "Point"
	case ActionFloorUp:
		return "Floor Up"
	case ActionFloorDown:
		return "Floor Down"
	case ActionConfirm:
		return "Move"
	case ActionNextUnit:
		return "Next Unit"
	case ActionEndTurn:
		return "End Turn"
	case ActionToggleFog:
		return "Toggle Fog"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Reserved codes keep their action.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
