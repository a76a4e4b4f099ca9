package input

import (
	"slices"
	"testing"

	"spence/pkg/engine/world"
)

func TestMapToIntent(t *testing.T) {
	cases := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionCursorNorth},
		{"j", ActionCursorSouth},
		{"enter", ActionConfirm},
		{"mouse_left", ActionConfirm},
		{"tab", ActionNextUnit},
		{">", ActionFloorUp},
		{"q", ActionQuit},
		{"unbound", ActionNone},
	}
	for _, tc := range cases {
		ev := NewDebouncedInput(RawInput{Device: DeviceKeyboard, Code: tc.code})
		if got := MapToIntent(ev).Action; got != tc.want {
			t.Errorf("MapToIntent(%q) = %s, want %s", tc.code, ActionName(got), ActionName(tc.want))
		}
	}
}

func TestMapToIntent_CarriesTarget(t *testing.T) {
	raw := RawInput{Device: DeviceMouse, Code: "mouse_move", Target: world.P(3, 4), HasTarget: true}
	got := MapToIntent(NewDebouncedInput(raw))
	if got.Action != ActionCursorAt || !got.HasTarget || got.Target != world.P(3, 4) {
		t.Errorf("MapToIntent(mouse_move) = %+v, want cursor at (3,4)", got)
	}
}

func TestSetSingleBinding(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for c, a := range bindings {
		saved[c] = a
	}
	t.Cleanup(func() { bindings = saved })

	SetSingleBinding(ActionEndTurn, "x")
	if got := GetBindingsByAction()[ActionEndTurn]; !slices.Equal(got, []string{"x"}) {
		t.Errorf("end turn bindings = %v, want [x]", got)
	}

	SetSingleBinding(ActionCursorNorth, "w")
	got := GetBindingsByAction()[ActionCursorNorth]
	if !slices.Equal(got, []string{"arrow_up", "w"}) {
		t.Errorf("cursor north bindings = %v, want [arrow_up w]", got)
	}

	SetSingleBinding(ActionQuit, "enter")
	if MapToIntent(DebouncedInput{Code: "enter"}).Action != ActionConfirm {
		t.Error("reserved code was rebound")
	}
}

func TestCodeOf(t *testing.T) {
	cases := map[byte]string{
		'\r': "enter",
		'\t': "tab",
		'k':  "k",
		'>':  ">",
		0x01: "",
	}
	for b, want := range cases {
		if got := codeOf(b); got != want {
			t.Errorf("codeOf(%#x) = %q, want %q", b, got, want)
		}
	}
}
