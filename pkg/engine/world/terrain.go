package world

// Terrain is the layered tile map. Each (x,y) column holds a stack of tiles;
// a position (x,y,z) exists iff z is below the column depth. Walls are stored
// per floor on edges, each edge having one owner: a cell owns its North and
// West edge, so its South edge is the southern neighbour's North edge.
type Terrain struct {
	size    Pos
	columns *Grid[[]Tile]
	floors  []*Grid[cellEdges]
}

// NewTerrain creates a terrain of the given size where every column has one floor.
func NewTerrain(size Pos) *Terrain {
	t := &Terrain{
		size:    size,
		columns: NewGrid[[]Tile](size, nil, Pos{}),
	}
	t.columns.ForEach(func(p Pos, _ []Tile) {
		t.columns.Set(p, []Tile{{}})
	})
	return t
}

// Size returns the map dimensions
func (t *Terrain) Size() Pos {
	return t.size
}

// InBounds checks if a column position is inside the map
func (t *Terrain) InBounds(p Pos) bool {
	return t.columns.InBounds(p)
}

// Depth returns the number of tiles stacked in the column at p (0 out of bounds)
func (t *Terrain) Depth(p Pos) int {
	return len(t.columns.Get(p))
}

// SetDepth resizes the column at p to n tiles. Existing tiles below n keep
// their status. Returns false if p is out of bounds or n is negative.
func (t *Terrain) SetDepth(p Pos, n int) bool {
	col := t.columns.Ptr(p)
	if col == nil || n < 0 {
		return false
	}
	if n <= len(*col) {
		*col = (*col)[:n:n]
		return true
	}
	grown := make([]Tile, n)
	copy(grown, *col)
	*col = grown
	return true
}

// Floors returns the number of floors any column or wall layer reaches
func (t *Terrain) Floors() int {
	n := len(t.floors)
	t.columns.ForEach(func(_ Pos, col []Tile) {
		n = max(n, len(col))
	})
	return n
}

// HasTile checks if a tile exists at p
func (t *Terrain) HasTile(p Pos3) bool {
	return p.Z >= 0 && p.Z < t.Depth(p.Flat())
}

// Tile returns the tile at p, or the zero tile if none exists
func (t *Terrain) Tile(p Pos3) Tile {
	if !t.HasTile(p) {
		return Tile{}
	}
	return t.columns.Get(p.Flat())[p.Z]
}

// SetStatus tags the tile at p. Returns false if no tile exists.
func (t *Terrain) SetStatus(p Pos3, s Status) bool {
	if !t.HasTile(p) {
		return false
	}
	t.columns.Get(p.Flat())[p.Z].Status = s
	return true
}

// edgeRef resolves the owner cell and face of the edge on side d of p.
func edgeRef(p Pos, d Direction) (owner Pos, north bool, side int) {
	switch d {
	case North:
		return p, true, 0
	case West:
		return p, false, 0
	case South:
		return Pos{p.X, p.Y + 1}, true, 1
	default:
		return Pos{p.X + 1, p.Y}, false, 1
	}
}

// faces returns the face of the edge seen from p and from the neighbour.
func (t *Terrain) faces(p Pos3, d Direction) (near, far Wall) {
	if !d.IsValid() || !t.InBounds(p.Flat()) || p.Z < 0 || p.Z >= len(t.floors) {
		return WallNone, WallNone
	}
	owner, north, side := edgeRef(p.Flat(), d)
	e := t.floors[p.Z].Ptr(owner)
	if e == nil {
		return WallNone, WallNone
	}
	return *e.face(north, side), *e.face(north, 1-side)
}

// GetWall returns the face of the edge on side d of p, as seen from p.
// Out-of-bounds positions report WallNone.
func (t *Terrain) GetWall(p Pos3, d Direction) Wall {
	near, _ := t.faces(p, d)
	return near
}

// SetWall sets the face of the edge on side d of p, as seen from p. When the
// new or the previous value is Blocking the mirrored face is written too, so
// a Blocking edge is always Blocking from both sides. Returns false if p is
// out of bounds or the arguments are invalid.
func (t *Terrain) SetWall(p Pos3, d Direction, w Wall) bool {
	if !d.IsValid() || !w.IsValid() || !t.InBounds(p.Flat()) || p.Z < 0 {
		return false
	}
	for len(t.floors) <= p.Z {
		t.floors = append(t.floors, NewGrid(Pos{t.size.X + 1, t.size.Y + 1}, cellEdges{}, Pos{}))
	}
	owner, north, side := edgeRef(p.Flat(), d)
	e := t.floors[p.Z].Ptr(owner)
	near, far := e.face(north, side), e.face(north, 1-side)
	if w == WallBlocking || *near == WallBlocking {
		*far = w
	}
	*near = w
	return true
}

// IsBlocked checks if the edge on side d of p is Blocking
func (t *Terrain) IsBlocked(p Pos3, d Direction) bool {
	near, far := t.faces(p, d)
	return near == WallBlocking || far == WallBlocking
}

// IsFlat checks if the edge on side d of p carries no wall on either face
func (t *Terrain) IsFlat(p Pos3, d Direction) bool {
	near, far := t.faces(p, d)
	return near == WallNone && far == WallNone
}

// HasCover checks if a unit at p is covered from direction d
func (t *Terrain) HasCover(p Pos3, d Direction) bool {
	w := t.GetWall(p, d)
	return w == WallBlocking || w == WallCover
}

// Edge describes how an edge affects a lateral move across it.
type Edge struct {
	Near, Far Wall
}

// EdgeAt returns both faces of the edge on side d of p
func (t *Terrain) EdgeAt(p Pos3, d Direction) Edge {
	near, far := t.faces(p, d)
	return Edge{Near: near, Far: far}
}

// Obstructs reports whether either face stops a lateral move
func (e Edge) Obstructs() bool {
	return e.Near.Obstructs() || e.Far.Obstructs()
}

// Cover reports whether either face is low cover
func (e Edge) Cover() bool {
	return e.Near == WallCover || e.Far == WallCover
}

// Climbable reports whether the edge can be climbed from the near side
func (e Edge) Climbable() bool {
	return e.Near == WallClimbable && e.Far != WallBlocking
}

// Flat reports whether neither face carries a wall
func (e Edge) Flat() bool {
	return e.Near == WallNone && e.Far == WallNone
}
