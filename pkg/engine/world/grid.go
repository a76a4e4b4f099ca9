package world

// Grid is a dense rectangle of T addressed by Pos, shifted by an offset.
// Reads outside the rectangle return the grid's default value.
type Grid[T any] struct {
	size   Pos
	offset Pos
	def    T
	cells  []T
}

// NewGrid creates a grid of the given size whose top-left cell sits at offset.
// Every cell starts as def. Negative dimensions are clamped to zero.
func NewGrid[T any](size Pos, def T, offset Pos) *Grid[T] {
	size.X = max(size.X, 0)
	size.Y = max(size.Y, 0)
	g := &Grid[T]{
		size:   size,
		offset: offset,
		def:    def,
		cells:  make([]T, size.X*size.Y),
	}
	for i := range g.cells {
		g.cells[i] = def
	}
	return g
}

// Size returns the grid dimensions
func (g *Grid[T]) Size() Pos {
	return g.size
}

// Offset returns the position of the top-left cell
func (g *Grid[T]) Offset() Pos {
	return g.offset
}

// Default returns the value reported for out-of-bounds reads
func (g *Grid[T]) Default() T {
	return g.def
}

// InBounds checks if a position is inside the grid
func (g *Grid[T]) InBounds(p Pos) bool {
	return p.X >= g.offset.X && p.X < g.offset.X+g.size.X &&
		p.Y >= g.offset.Y && p.Y < g.offset.Y+g.size.Y
}

func (g *Grid[T]) index(p Pos) int {
	return (p.Y-g.offset.Y)*g.size.X + (p.X - g.offset.X)
}

// Get returns the value at p, or the default if out of bounds
func (g *Grid[T]) Get(p Pos) T {
	if !g.InBounds(p) {
		return g.def
	}
	return g.cells[g.index(p)]
}

// Ptr returns a pointer to the cell at p, or nil if out of bounds
func (g *Grid[T]) Ptr(p Pos) *T {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[g.index(p)]
}

// Set stores v at p. Returns false if out of bounds.
func (g *Grid[T]) Set(p Pos, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[g.index(p)] = v
	return true
}

// ForEach calls fn for every cell in row-major order
func (g *Grid[T]) ForEach(fn func(p Pos, v T)) {
	for y := 0; y < g.size.Y; y++ {
		for x := 0; x < g.size.X; x++ {
			p := Pos{x + g.offset.X, y + g.offset.Y}
			fn(p, g.cells[y*g.size.X+x])
		}
	}
}
