package generator

import (
	"math/rand"

	"spence/pkg/engine/world"
)

// LineWalkerGenerator raises catwalks by walking lines in random directions
// with branching probability. The catwalk lip is walled on the ground floor
// with a ladder here and there, and the rest of the map gets sparse walls.
type LineWalkerGenerator struct{}

// Walk tuning
const (
	walkBranchProb = float32(0.3)
	walkMinDist    = 3
	walkMaxDist    = 7
	ladderOdds     = 4  // One lip edge in ladderOdds is climbable
	railOdds       = 3  // One catwalk edge in railOdds gets cover on top
	walkSparseOdds = 60 // Sparse ground walls, see RectGenerator.SparseOdds
)

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "walker"
}

// Generate creates a new two floor terrain of the given size
func (g *LineWalkerGenerator) Generate(rng *rand.Rand, size world.Pos) *world.Terrain {
	t := world.NewTerrain(size)
	center := world.P(size.X/2, size.Y/2)

	for _, d := range world.AllDirections() {
		g.buildLine(t, rng, center, d, walkBranchProb)
	}
	sprinkle(t, rng, walkSparseOdds)
	wallLips(t, rng)
	return t
}

// randomDirection returns a random cardinal direction
func (g *LineWalkerGenerator) randomDirection(rng *rand.Rand) world.Direction {
	return world.AllDirections()[rng.Intn(4)]
}

// buildLine raises a line of columns starting from p in the given direction
// and returns where it stopped. Columns on the map border stay on the ground.
func (g *LineWalkerGenerator) buildLine(t *world.Terrain, rng *rand.Rand, p world.Pos, dir world.Direction, branchProbability float32) world.Pos {
	distance := walkMinDist + rng.Intn(walkMaxDist-walkMinDist+1)

	for segment := 0; segment < distance; segment++ {
		if !inner(t, p) {
			return p
		}
		t.SetDepth(p, 2)

		if rng.Float32() < branchProbability {
			g.buildLine(t, rng, p, g.randomDirection(rng), branchProbability-.1)
		}
		p = p.Step(dir)
	}
	if inner(t, p) {
		t.SetDepth(p, 2)
	}
	return p
}

// inner reports whether p is in bounds and off the border
func inner(t *world.Terrain, p world.Pos) bool {
	size := t.Size()
	return p.X > 0 && p.Y > 0 && p.X < size.X-1 && p.Y < size.Y-1
}

// wallLips closes every ground edge between a catwalk and the ground, either
// Blocking or as a ladder climbable from the ground side, and puts rails on
// some catwalk edges.
func wallLips(t *world.Terrain, rng *rand.Rand) {
	size := t.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := world.P(x, y)
			if t.Depth(p) < 2 {
				continue
			}
			for _, d := range world.AllDirections() {
				nb := p.Step(d)
				if t.Depth(nb) >= 2 {
					continue
				}
				if rng.Intn(ladderOdds) == 0 {
					t.SetWall(nb.At(0), d.Opposite(), world.WallClimbable)
				} else {
					t.SetWall(p.At(0), d, world.WallBlocking)
				}
				if rng.Intn(railOdds) == 0 {
					t.SetWall(p.At(1), d, world.WallCover)
				}
			}
		}
	}
}
