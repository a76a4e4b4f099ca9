package state

import (
	"errors"
	"fmt"
	"slices"

	"spence/pkg/engine/logger"
	"spence/pkg/engine/path"
	"spence/pkg/engine/world"
	"spence/pkg/game/unit"
)

var log = logger.Component("state")

var (
	ErrNoSuchUnit  = errors.New("no such unit")
	ErrOccupied    = errors.New("position occupied")
	ErrNoTile      = errors.New("no tile at position")
	ErrNotYourTurn = errors.New("unit cannot act this turn")
	ErrUnreachable = errors.New("destination out of reach")
)

// Game represents one skirmish: the terrain, the units on it and whose turn it is
type Game struct {
	Terrain *world.Terrain
	Model   path.CostModel

	// SightRadius is the radius used for every unit's field of view
	SightRadius int

	Units     []*unit.Unit
	byName    map[string]*unit.Unit
	occupancy *world.Grid[*unit.Unit]

	Turn     unit.Side
	TurnNo   int
	Selected *unit.Unit
	PathMap  *path.PathMap

	Messages []string
}

// NewGame creates a game on the given terrain with the default cost model
func NewGame(t *world.Terrain) *Game {
	return &Game{
		Terrain:     t,
		Model:       path.DefaultCostModel(),
		SightRadius: unit.SightRadius,
		byName:      make(map[string]*unit.Unit),
		occupancy:   world.NewGrid[*unit.Unit](t.Size(), nil, world.Pos{}),
		Turn:        unit.SideNone,
		Messages:    make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// uniqueName returns name, or name0, name1, ... for the first free one
func (g *Game) uniqueName(name string) string {
	if _, taken := g.byName[name]; !taken {
		return name
	}
	for i := 0; ; i++ {
		n := fmt.Sprintf("%s%d", name, i)
		if _, taken := g.byName[n]; !taken {
			return n
		}
	}
}

// CreateUnit places a new unit of type t for side at pos
func (g *Game) CreateUnit(t *unit.Type, side unit.Side, pos world.Pos3) (*unit.Unit, error) {
	if !g.Terrain.HasTile(pos) {
		return nil, fmt.Errorf("create %s at %v: %w", t.Name, pos, ErrNoTile)
	}
	if other := g.occupancy.Get(pos.Flat()); other != nil {
		return nil, fmt.Errorf("create %s at %v: %w by %s", t.Name, pos, ErrOccupied, other.Name)
	}

	u := unit.New(g.uniqueName(t.Name), t, side, pos)
	g.Units = append(g.Units, u)
	g.byName[u.Name] = u
	g.occupancy.Set(pos.Flat(), u)
	u.SetField(g.fieldOf(u))

	log.WithField("unit", u.Name).WithField("side", side).WithField("pos", pos).Debug("unit created")
	return u, nil
}

// Unit looks a unit up by name
func (g *Game) Unit(name string) (*unit.Unit, error) {
	u, ok := g.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchUnit, name)
	}
	return u, nil
}

// UnitAt returns the unit standing on column p, if any
func (g *Game) UnitAt(p world.Pos) *unit.Unit {
	return g.occupancy.Get(p)
}

// SideUnits returns the units of one side in creation order
func (g *Game) SideUnits(side unit.Side) []*unit.Unit {
	var out []*unit.Unit
	for _, u := range g.Units {
		if u.Side == side {
			out = append(out, u)
		}
	}
	return out
}

// Select makes u the active unit and computes where it can move
func (g *Game) Select(u *unit.Unit) error {
	pm, err := path.Calc(g.Terrain, u.Pos, u.MoveBudget(), g.Model, u.MoveSegments())
	if err != nil {
		return fmt.Errorf("select %s: %w", u.Name, err)
	}
	g.Selected = u
	g.PathMap = pm
	return nil
}

// Deselect clears the active unit
func (g *Game) Deselect() {
	g.Selected = nil
	g.PathMap = nil
}

// SelectNext selects the next unit of the current side that still has AP
func (g *Game) SelectNext() error {
	units := g.SideUnits(g.Turn)
	start := -1
	if g.Selected != nil {
		start = slices.Index(units, g.Selected)
	}
	for i := 1; i <= len(units); i++ {
		u := units[(start+i+len(units))%len(units)]
		if !u.Exhausted() {
			return g.Select(u)
		}
	}
	g.Deselect()
	return nil
}

// Route returns the smoothed path from the selected unit to dest
func (g *Game) Route(dest world.Pos3) []world.Pos3 {
	if g.PathMap == nil {
		return nil
	}
	return path.To(g.Terrain, g.PathMap, dest)
}

// Move walks the selected unit to dest, paying for the tier dest lies in
func (g *Game) Move(dest world.Pos3) error {
	u := g.Selected
	if u == nil || g.PathMap == nil {
		return fmt.Errorf("move: %w", ErrNoSuchUnit)
	}
	if u.Side != g.Turn {
		return fmt.Errorf("move %s: %w", u.Name, ErrNotYourTurn)
	}
	if u.Exhausted() {
		return fmt.Errorf("move %s: %w", u.Name, unit.ErrExhausted)
	}
	if dest == u.Pos || !g.PathMap.CanAccess(dest) {
		return fmt.Errorf("move %s to %v: %w", u.Name, dest, ErrUnreachable)
	}
	if other := g.occupancy.Get(dest.Flat()); other != nil && other != u {
		return fmt.Errorf("move %s to %v: %w by %s", u.Name, dest, ErrOccupied, other.Name)
	}
	if err := u.Spend(g.PathMap.Segment(dest)); err != nil {
		return fmt.Errorf("move %s: %w", u.Name, err)
	}

	g.occupancy.Set(u.Pos.Flat(), nil)
	u.Pos = dest
	g.occupancy.Set(dest.Flat(), u)
	u.SetField(g.fieldOf(u))

	log.WithField("unit", u.Name).WithField("to", dest).WithField("ap", u.AP).Debug("unit moved")

	if u.Exhausted() {
		g.Deselect()
		return nil
	}
	return g.Select(u)
}
