// Package generator builds random skirmish maps. Every generator draws from
// the given *rand.Rand only, so a seed always yields the same terrain.
package generator

import (
	"math/rand"
	"strings"

	"spence/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(rng *rand.Rand, size world.Pos) *world.Terrain
	Name() string
}

// Available generators
var (
	Rect       = &RectGenerator{Rects: 14, SparseOdds: 200}
	BSP        = &BSPGenerator{}
	LineWalker = &LineWalkerGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = Rect

// All lists the generators selectable by name
func All() []GridGenerator {
	return []GridGenerator{Rect, BSP, LineWalker}
}

// ByName finds a generator by its short name ("rect", "bsp", "walker").
// Matching is case-insensitive.
func ByName(name string) (GridGenerator, bool) {
	for _, g := range All() {
		if strings.EqualFold(g.Name(), name) {
			return g, true
		}
	}
	return nil, false
}

// NewRand returns a generator source for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// coinWall picks Blocking or Cover with equal odds
func coinWall(rng *rand.Rand) world.Wall {
	if rng.Intn(2) == 0 {
		return world.WallBlocking
	}
	return world.WallCover
}

// flip swaps Blocking and Cover
func flip(w world.Wall) world.Wall {
	if w == world.WallBlocking {
		return world.WallCover
	}
	return world.WallBlocking
}
