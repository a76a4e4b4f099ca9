package generator

import (
	"math/rand"

	"spence/pkg/engine/world"
)

// maxRectSide bounds the random rectangle sides to [2, maxRectSide]
const maxRectSide = 11

// RectGenerator scatters rectangle outlines of mixed Blocking and Cover runs
// over a flat map, then sprinkles single walls at random.
type RectGenerator struct {
	// Rects is the number of rectangles drawn
	Rects int
	// SparseOdds gives each cell edge a 1 in SparseOdds chance of a Blocking
	// wall and the same chance of Cover. Zero disables it.
	SparseOdds int
}

// Name returns the name of this generator
func (g *RectGenerator) Name() string {
	return "rect"
}

// Generate creates a new flat terrain of the given size
func (g *RectGenerator) Generate(rng *rand.Rand, size world.Pos) *world.Terrain {
	t := world.NewTerrain(size)
	for i := 0; i < g.Rects; i++ {
		drawRect(t, rng)
	}
	if g.SparseOdds > 0 {
		sprinkle(t, rng, g.SparseOdds)
	}
	return t
}

// drawRect outlines one random rectangle. The far sides sit on the edges
// just past the rectangle so they stay inside the map.
func drawRect(t *world.Terrain, rng *rand.Rand) {
	size := t.Size()
	wid, hei := rectSide(rng, size.X), rectSide(rng, size.Y)
	if wid == 0 || hei == 0 {
		return
	}
	off := world.P(rng.Intn(size.X-wid), rng.Intn(size.Y-hei))
	w := coinWall(rng)

	drawLine(t, rng, off, wid, true, world.North, w)
	drawLine(t, rng, off, hei, false, world.West, w)
	drawLine(t, rng, world.P(off.X+wid, off.Y), hei, false, world.West, w)
	drawLine(t, rng, world.P(off.X, off.Y+hei), wid, true, world.North, w)
}

// rectSide picks a side length that leaves room for the far edge in a map
// span of n cells. Returns 0 if no rectangle fits.
func rectSide(rng *rand.Rand, n int) int {
	side := 2 + rng.Intn(maxRectSide-1)
	if side >= n {
		side = n - 1
	}
	return max(side, 0)
}

// drawLine lays a run of length edges from start, along X when horizontal.
// One edge in ten is left open and one in ten switches the wall kind for the
// rest of the run.
func drawLine(t *world.Terrain, rng *rand.Rand, start world.Pos, length int, horizontal bool, dir world.Direction, w world.Wall) {
	step := world.P(0, 1)
	if horizontal {
		step = world.P(1, 0)
	}
	p := start
	for i := 0; i < length; i++ {
		switch rng.Intn(10) {
		case 0:
		case 1:
			w = flip(w)
			fallthrough
		default:
			t.SetWall(p.At(0), dir, w)
		}
		p = p.Add(step)
	}
}

// sprinkle visits every edge of every cell on the ground floor
func sprinkle(t *world.Terrain, rng *rand.Rand, odds int) {
	size := t.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			for _, d := range world.AllDirections() {
				switch rng.Intn(odds) {
				case 0:
					t.SetWall(world.P3(x, y, 0), d, world.WallBlocking)
				case 1:
					t.SetWall(world.P3(x, y, 0), d, world.WallCover)
				}
			}
		}
	}
}
