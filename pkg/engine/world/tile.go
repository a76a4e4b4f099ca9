// Package world provides generic 2D and layered grid primitives: positions,
// directions, dense grids and the wall-based terrain model read by the
// visibility and movement engines.
package world

// Status is an optional game-defined tag carried by a tile.
type Status int16

// StatusNone is the tag of a plain tile
const StatusNone Status = 0

// Tile represents one standable cell of a column.
// Walls are kept on the terrain's edge layer, not on the tile, so a ledge lip
// can carry a wall even where the neighbouring column has no tile.
type Tile struct {
	Status Status
}

// cellEdges holds the two edges owned by a cell: its North and West edge.
// Index 0 is the face seen from the owning cell, index 1 the face seen from
// the neighbour (north or west of it).
type cellEdges struct {
	north [2]Wall
	west  [2]Wall
}

// wall returns the face stored for the given edge and side
func (e *cellEdges) face(north bool, side int) *Wall {
	if north {
		return &e.north[side]
	}
	return &e.west[side]
}
