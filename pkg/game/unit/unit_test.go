package unit

import (
	"errors"
	"testing"

	"spence/pkg/engine/world"
)

func TestUnit_MoveBudget(t *testing.T) {
	cases := []struct {
		ap, stamina  int
		wantSegments int
		wantBudget   float64
	}{
		{2, 3, 3, 9},
		{2, 0, 2, 6},
		{1, 1, 2, 6},
		{0, 0, 0, 0},
	}
	for _, tc := range cases {
		u := New("v", Vanguard, SideYou, world.P3(0, 0, 0))
		u.AP, u.Stamina = tc.ap, tc.stamina
		if got := u.MoveSegments(); got != tc.wantSegments {
			t.Errorf("AP %d stamina %d: MoveSegments() = %d, want %d", tc.ap, tc.stamina, got, tc.wantSegments)
		}
		if got := u.MoveBudget(); got != tc.wantBudget {
			t.Errorf("AP %d stamina %d: MoveBudget() = %v, want %v", tc.ap, tc.stamina, got, tc.wantBudget)
		}
	}
}

func TestUnit_Spend(t *testing.T) {
	cases := []struct {
		name        string
		ap, stamina int
		segment     int
		wantAP      int
		wantStamina int
		wantErr     error
	}{
		{"first tier", 2, 3, 0, 1, 3, nil},
		{"second tier", 2, 3, 1, 0, 3, nil},
		{"stamina tier", 2, 3, 2, 0, 2, nil},
		{"no stamina", 2, 0, 2, 2, 0, ErrExhausted},
		{"one ap left", 1, 3, 1, 0, 2, nil},
		{"empty", 0, 3, 0, 0, 3, ErrExhausted},
		{"negative", 2, 3, -1, 2, 3, ErrExhausted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := New("v", Vanguard, SideYou, world.P3(0, 0, 0))
			u.AP, u.Stamina = tc.ap, tc.stamina
			err := u.Spend(tc.segment)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Spend(%d) err = %v, want %v", tc.segment, err, tc.wantErr)
			}
			if u.AP != tc.wantAP || u.Stamina != tc.wantStamina {
				t.Errorf("AP, stamina = %d, %d, want %d, %d", u.AP, u.Stamina, tc.wantAP, tc.wantStamina)
			}
		})
	}
}

func TestSide_Opponent(t *testing.T) {
	if SideYou.Opponent() != SideEnemy || SideEnemy.Opponent() != SideYou {
		t.Error("Opponent does not alternate between the two sides")
	}
	if SideNone.Opponent() != SideNone {
		t.Errorf("SideNone.Opponent() = %v, want none", SideNone.Opponent())
	}
}
