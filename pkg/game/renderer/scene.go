// Package renderer turns a game into something a backend can draw. Backends
// share the Scene built here so the terminal, the window and the PNG export
// show the same thing.
package renderer

import (
	"math"

	"spence/pkg/engine/world"
	"spence/pkg/game/state"
	"spence/pkg/game/unit"
)

// View holds the presentation state that is not part of the game
type View struct {
	Cursor world.Pos3
	// Fog hides cells the side on turn cannot see
	Fog bool
}

// Cell is what a backend draws for one column on the viewed floor
type Cell struct {
	Tile bool // a tile exists on the viewed floor
	Seen bool
	// Tier is the selected unit's movement tier, -1 when out of reach
	Tier   int
	Route  bool
	Cursor bool
	Unit   *unit.Unit
	// Walls on the edges of the cell, indexed by direction
	Walls [4]world.Wall
}

// Glyph returns the single character used for the cell in text output
func (c Cell) Glyph(selected *unit.Unit) byte {
	switch {
	case c.Unit != nil && c.Unit == selected:
		return '@'
	case c.Unit != nil && c.Unit.Side == unit.SideEnemy:
		return lower(c.Unit.Type.Name[0])
	case c.Unit != nil:
		return upper(c.Unit.Type.Name[0])
	case !c.Seen:
		return ' '
	case !c.Tile:
		return '#'
	case c.Cursor:
		return 'X'
	case c.Route:
		return 'o'
	case c.Tier >= 0:
		return byte('1' + min(c.Tier, 8))
	default:
		return '.'
	}
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// Scene is a backend independent snapshot of one floor of a game
type Scene struct {
	Size     world.Pos
	Floor    int
	Cells    *world.Grid[Cell]
	Route    []world.Pos3
	Selected *unit.Unit
	Turn     unit.Side
	TurnNo   int
	Cursor   world.Pos3
	// CursorCost is the movement cost to the cursor, +Inf when out of reach
	CursorCost float64
	Messages   []string
}

// edgeWall is the wall drawn for an edge: the stronger of its two faces
func edgeWall(e world.Edge) world.Wall {
	return max(e.Near, e.Far)
}

// BuildScene captures the viewed floor of g
func BuildScene(g *state.Game, v View) *Scene {
	t := g.Terrain
	z := v.Cursor.Z
	s := &Scene{
		Size:     t.Size(),
		Floor:    z,
		Cells:    world.NewGrid(t.Size(), Cell{Tier: -1}, world.Pos{}),
		Selected: g.Selected,
		Turn:     g.Turn,
		TurnNo:   g.TurnNo,
		Cursor:   v.Cursor,
		Messages: append([]string(nil), g.Messages...),
	}
	s.CursorCost = math.Inf(1)
	if g.PathMap != nil {
		s.CursorCost = g.PathMap.Cost(v.Cursor)
		s.Route = g.Route(v.Cursor)
	}

	var seen func(world.Pos) bool
	if v.Fog {
		set := g.VisibleTo(g.Turn)
		seen = set.Has
	}

	s.Cells.ForEach(func(p world.Pos, c Cell) {
		p3 := p.At(z)
		c.Tile = t.HasTile(p3)
		c.Seen = seen == nil || seen(p)
		for _, d := range world.AllDirections() {
			c.Walls[d] = edgeWall(t.EdgeAt(p3, d))
		}
		if g.PathMap != nil {
			if seg := g.PathMap.Segment(p3); seg >= 0 {
				c.Tier = seg
			}
		}
		if u := g.UnitAt(p); u != nil && u.Pos.Z == z && (c.Seen || u.Side == g.Turn) {
			c.Unit = u
		}
		s.Cells.Set(p, c)
	})

	for _, p := range s.Route {
		if c := s.Cells.Ptr(p.Flat()); c != nil && p.Z == z {
			c.Route = true
		}
	}
	if c := s.Cells.Ptr(v.Cursor.Flat()); c != nil {
		c.Cursor = true
	}
	return s
}
