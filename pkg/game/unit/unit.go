// Package unit holds the units on a battlefield and their action economy.
package unit

import (
	"errors"

	"spence/pkg/engine/fov"
	"spence/pkg/engine/world"
)

// Default action economy
const (
	DefaultAP      = 2
	DefaultStamina = 3
	SightRadius    = 12
)

var ErrExhausted = errors.New("not enough action points")

// Side is the team a unit fights for
type Side int

const (
	SideNone Side = iota
	SideYou
	SideEnemy
)

func (s Side) String() string {
	switch s {
	case SideYou:
		return "you"
	case SideEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// Opponent returns the side whose turn follows s
func (s Side) Opponent() Side {
	switch s {
	case SideYou:
		return SideEnemy
	case SideEnemy:
		return SideYou
	default:
		return SideNone
	}
}

// Type describes a kind of unit
type Type struct {
	Name string
	Mov  int
	Aim  int
	HP   int
}

// Roster of the default skirmish
var (
	Vanguard   = &Type{Name: "Vanguard", Mov: 6, Aim: 6, HP: 7}
	Assassin   = &Type{Name: "Assassin", Mov: 6, Aim: 7, HP: 6}
	Hunter     = &Type{Name: "Hunter", Mov: 7, Aim: 6, HP: 6}
	Newt       = &Type{Name: "Newt", Mov: 5, Aim: 6, HP: 3}
	Salamander = &Type{Name: "Salamander", Mov: 6, Aim: 6, HP: 5}
)

// Unit is one piece on the map
type Unit struct {
	Name    string
	Type    *Type
	Side    Side
	Pos     world.Pos3
	HP      int
	AP      int
	Stamina int

	field *fov.Field
}

// New creates a unit with full health, no AP and full stamina
func New(name string, t *Type, side Side, pos world.Pos3) *Unit {
	return &Unit{
		Name:    name,
		Type:    t,
		Side:    side,
		Pos:     pos,
		HP:      t.HP,
		Stamina: DefaultStamina,
	}
}

// ResetAP refills action points at the start of the unit's turn
func (u *Unit) ResetAP() {
	u.AP = DefaultAP
}

// MoveSegments is the number of movement tiers the unit can afford. Spare
// stamina buys one extra tier.
func (u *Unit) MoveSegments() int {
	n := u.AP
	if u.Stamina > 0 {
		n++
	}
	return n
}

// MoveBudget is the movement cost the unit can spend this turn
func (u *Unit) MoveBudget() float64 {
	return float64(u.Type.Mov) * float64(u.MoveSegments()) / 2
}

// Spend pays for a move ending in the given tier. A tier costs one AP more
// than its index; one stamina stands in for a missing AP. A unit without AP
// cannot move at all.
func (u *Unit) Spend(segment int) error {
	if u.Exhausted() {
		return ErrExhausted
	}
	cost := segment + 1
	stamina := 0
	if cost > u.AP && u.Stamina > 0 {
		stamina = 1
		cost--
	}
	if segment < 0 || cost > u.AP {
		return ErrExhausted
	}
	u.Stamina -= stamina
	u.AP -= cost
	return nil
}

// Exhausted reports whether the unit has no AP left
func (u *Unit) Exhausted() bool {
	return u.AP <= 0
}

// SetField stores the unit's latest visibility
func (u *Unit) SetField(f *fov.Field) {
	u.field = f
}

// Field returns the unit's latest visibility, nil before the first refresh
func (u *Unit) Field() *fov.Field {
	return u.field
}

// CanSee checks the unit's latest visibility
func (u *Unit) CanSee(p world.Pos) bool {
	return u.field != nil && u.field.Visible(p)
}
