package gameplay

import (
	"fmt"

	"spence/pkg/engine/world"
	"spence/pkg/game/state"
	"spence/pkg/game/unit"
)

// Placement puts one unit of a side on the map. At is given for a 50×50
// map and scaled to the actual size.
type Placement struct {
	Type *unit.Type
	Side unit.Side
	At   world.Pos
}

const referenceSize = 50

// DefaultRoster is the opening skirmish: three of yours in one corner, three
// enemies in the other
var DefaultRoster = []Placement{
	{unit.Vanguard, unit.SideYou, world.P(10, 10)},
	{unit.Assassin, unit.SideYou, world.P(10, 11)},
	{unit.Hunter, unit.SideYou, world.P(11, 10)},
	{unit.Newt, unit.SideEnemy, world.P(40, 40)},
	{unit.Newt, unit.SideEnemy, world.P(40, 41)},
	{unit.Salamander, unit.SideEnemy, world.P(41, 40)},
}

// NewSkirmish creates a game on t with the given roster and starts your turn
func NewSkirmish(t *world.Terrain, roster []Placement) (*state.Game, error) {
	g := state.NewGame(t)
	for _, pl := range roster {
		pos, ok := freeSpot(g, scale(pl.At, t.Size()))
		if !ok {
			return nil, fmt.Errorf("no free tile for %s", pl.Type.Name)
		}
		if _, err := g.CreateUnit(pl.Type, pl.Side, pos); err != nil {
			return nil, err
		}
	}
	if err := g.InitTurn(unit.SideYou); err != nil {
		return nil, err
	}
	return g, nil
}

func scale(p, size world.Pos) world.Pos {
	return world.P(p.X*size.X/referenceSize, p.Y*size.Y/referenceSize)
}

// freeSpot finds the unoccupied column nearest to p (Chebyshev rings, row
// major within a ring) and returns the top tile of it
func freeSpot(g *state.Game, p world.Pos) (world.Pos3, bool) {
	size := g.Terrain.Size()
	for r := 0; r < max(size.X, size.Y); r++ {
		for y := p.Y - r; y <= p.Y+r; y++ {
			for x := p.X - r; x <= p.X+r; x++ {
				if max(abs(x-p.X), abs(y-p.Y)) != r {
					continue
				}
				c := world.P(x, y)
				depth := g.Terrain.Depth(c)
				if depth == 0 || g.UnitAt(c) != nil {
					continue
				}
				return c.At(depth - 1), true
			}
		}
	}
	return world.Pos3{}, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
