package fov

import (
	"math/rand"
	"testing"

	"spence/pkg/engine/world"
)

// transposeDir swaps the roles of X and Y
func transposeDir(d world.Direction) world.Direction {
	switch d {
	case world.North:
		return world.West
	case world.West:
		return world.North
	case world.South:
		return world.East
	default:
		return world.South
	}
}

// mirrorDir flips X
func mirrorDir(d world.Direction) world.Direction {
	switch d {
	case world.East:
		return world.West
	case world.West:
		return world.East
	default:
		return d
	}
}

func transposed(walls []wallAt) []wallAt {
	out := make([]wallAt, len(walls))
	for i, w := range walls {
		out[i] = wallAt{world.P(w.pos.Y, w.pos.X), transposeDir(w.dir), w.w}
	}
	return out
}

func mirrored(walls []wallAt, width int) []wallAt {
	out := make([]wallAt, len(walls))
	for i, w := range walls {
		out[i] = wallAt{world.P(width-1-w.pos.X, w.pos.Y), mirrorDir(w.dir), w.w}
	}
	return out
}

func randomWalls(rng *rand.Rand, size world.Pos, odds int) []wallAt {
	var walls []wallAt
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			for _, d := range []world.Direction{world.North, world.West} {
				if rng.Intn(odds) == 0 {
					walls = append(walls, blocking(x, y, d))
				}
			}
		}
	}
	return walls
}

// sameUnder checks that the field of walls, mapped cell by cell, equals the
// field of the mapped walls
func sameUnder(t *testing.T, walls, mapped []wallAt, size world.Pos, origin world.Pos3, radius int, cellMap func(world.Pos) world.Pos) {
	t.Helper()
	a := Calc(terrainWith(size, walls...), origin, radius)
	mo := cellMap(origin.Flat())
	b := Calc(terrainWith(size, mapped...), mo.At(origin.Z), radius)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := world.P(x, y)
			if a.Visible(p) != b.Visible(cellMap(p)) {
				t.Errorf("walls %v: Visible(%v) = %v, but mapped Visible(%v) = %v",
					walls, p, a.Visible(p), cellMap(p), b.Visible(cellMap(p)))
			}
		}
	}
}

func TestCalc_DiagonalNeighbourPastAxisWall(t *testing.T) {
	size := world.P(11, 11)
	origin := world.P3(5, 5, 0)
	cases := []struct {
		name  string
		walls []wallAt
	}{
		{"axis wall and near edge", []wallAt{blocking(4, 4, world.East), blocking(4, 5, world.West)}},
		{"axis wall seen from behind", []wallAt{blocking(4, 4, world.East), blocking(3, 5, world.East)}},
		{"transposed", []wallAt{blocking(4, 4, world.South), blocking(5, 4, world.North)}},
		{"near edge only", []wallAt{blocking(4, 4, world.East)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Calc(terrainWith(size, tc.walls...), origin, 2)
			if !f.Visible(world.P(4, 4)) {
				t.Errorf("(4,4) is hidden, but its south edge is open to (4,5)")
			}
			sameUnder(t, tc.walls, transposed(tc.walls), size, origin, 2, func(p world.Pos) world.Pos {
				return world.P(p.Y, p.X)
			})
		})
	}
}

func TestCalc_SymmetricUnderTranspose(t *testing.T) {
	size := world.P(9, 9)
	origin := world.P3(4, 4, 0)
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		walls := randomWalls(rng, size, 5+i%4)
		sameUnder(t, walls, transposed(walls), size, origin, 4, func(p world.Pos) world.Pos {
			return world.P(p.Y, p.X)
		})
		if t.Failed() {
			return
		}
	}
}

func TestCalc_SymmetricUnderMirror(t *testing.T) {
	size := world.P(9, 9)
	origin := world.P3(3, 4, 0)
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 300; i++ {
		walls := randomWalls(rng, size, 5+i%4)
		sameUnder(t, walls, mirrored(walls, size.X), size, origin, 4, func(p world.Pos) world.Pos {
			return world.P(size.X-1-p.X, p.Y)
		})
		if t.Failed() {
			return
		}
	}
}
