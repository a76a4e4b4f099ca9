package fov

import (
	"testing"

	"spence/pkg/engine/world"
)

type wallAt struct {
	pos world.Pos
	dir world.Direction
	w   world.Wall
}

func terrainWith(size world.Pos, walls ...wallAt) *world.Terrain {
	t := world.NewTerrain(size)
	for _, w := range walls {
		t.SetWall(w.pos.At(0), w.dir, w.w)
	}
	return t
}

func blocking(x, y int, d world.Direction) wallAt {
	return wallAt{world.P(x, y), d, world.WallBlocking}
}

func TestCalc_WallHidesCellBehind(t *testing.T) {
	cases := []struct {
		name    string
		wall    wallAt
		hidden  world.Pos
		visible []world.Pos
	}{
		{"north", blocking(2, 1, world.North), world.P(2, 0), []world.Pos{world.P(0, 0), world.P(4, 0), world.P(2, 1)}},
		{"south", blocking(2, 3, world.South), world.P(2, 4), []world.Pos{world.P(0, 4), world.P(4, 4), world.P(2, 3)}},
		{"west", blocking(1, 2, world.West), world.P(0, 2), []world.Pos{world.P(0, 0), world.P(0, 4), world.P(1, 2)}},
		{"east", blocking(3, 2, world.East), world.P(4, 2), []world.Pos{world.P(4, 0), world.P(4, 4), world.P(3, 2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Calc(terrainWith(world.P(5, 5), tc.wall), world.P3(2, 2, 0), 2)
			if f.Visible(tc.hidden) {
				t.Errorf("%v is visible through the wall", tc.hidden)
			}
			for _, p := range tc.visible {
				if !f.Visible(p) {
					t.Errorf("%v is not visible", p)
				}
			}
		})
	}
}

func TestCalc_OpenMapFullyVisible(t *testing.T) {
	tr := world.NewTerrain(world.P(5, 5))
	for radius, want := range map[int]int{0: 1, 1: 9, 2: 25, 7: 25} {
		if got := Calc(tr, world.P3(2, 2, 0), radius).Count(); got != want {
			t.Errorf("radius %d: Count() = %d, want %d", radius, got, want)
		}
	}
}

func TestCalc_CoverDoesNotOcclude(t *testing.T) {
	var walls []wallAt
	for _, d := range world.AllDirections() {
		walls = append(walls, wallAt{world.P(2, 2), d, world.WallCover})
		walls = append(walls, wallAt{world.P(0, 1), d, world.WallClimbable})
	}
	f := Calc(terrainWith(world.P(5, 5), walls...), world.P3(2, 2, 0), 2)
	if got := f.Count(); got != 25 {
		t.Errorf("Count() = %d, want 25", got)
	}
}

func TestCalc_BoxedOriginSeesOnlyItself(t *testing.T) {
	var walls []wallAt
	for _, d := range world.AllDirections() {
		walls = append(walls, blocking(2, 2, d))
	}
	f := Calc(terrainWith(world.P(5, 5), walls...), world.P3(2, 2, 0), 2)
	if got := f.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
	if !f.Visible(world.P(2, 2)) {
		t.Error("origin is not visible")
	}
}

func TestCalc_ClosedRoom(t *testing.T) {
	var walls []wallAt
	for i := 1; i <= 3; i++ {
		walls = append(walls,
			blocking(i, 1, world.North),
			blocking(i, 3, world.South),
			blocking(1, i, world.West),
			blocking(3, i, world.East),
		)
	}
	f := Calc(terrainWith(world.P(7, 7), walls...), world.P3(2, 2, 0), 3)
	if got := f.Count(); got != 9 {
		t.Errorf("Count() = %d, want 9", got)
	}
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if !f.Visible(world.P(x, y)) {
				t.Errorf("room cell (%d,%d) is not visible", x, y)
			}
		}
	}
}

func TestCalc_WallsOnOtherFloorsIgnored(t *testing.T) {
	tr := world.NewTerrain(world.P(5, 5))
	tr.SetWall(world.P3(2, 1, 1), world.North, world.WallBlocking)
	if !Calc(tr, world.P3(2, 2, 0), 2).Visible(world.P(2, 0)) {
		t.Error("wall on floor 1 occludes floor 0")
	}
	if Calc(tr, world.P3(2, 2, 1), 2).Visible(world.P(2, 0)) {
		t.Error("wall on floor 1 does not occlude floor 1")
	}
}

func TestCalc_AddingWallsNeverRevealsCells(t *testing.T) {
	tr := world.NewTerrain(world.P(9, 9))
	origin := world.P3(4, 4, 0)
	prev := Calc(tr, origin, 4)

	steps := []struct {
		wall  wallAt
		hides *world.Pos
	}{
		{blocking(4, 2, world.North), &world.Pos{X: 4, Y: 1}},
		{blocking(6, 4, world.East), &world.Pos{X: 7, Y: 4}},
		{blocking(2, 5, world.South), nil},
		{blocking(5, 6, world.West), nil},
		{blocking(2, 4, world.West), &world.Pos{X: 1, Y: 4}},
	}
	for _, s := range steps {
		w := s.wall
		tr.SetWall(w.pos.At(0), w.dir, w.w)
		next := Calc(tr, origin, 4)
		next.Positions().Each(func(p world.Pos) {
			if !prev.Visible(p) {
				t.Errorf("after wall %v %v: %v became visible", w.pos, w.dir, p)
			}
		})
		if s.hides != nil && next.Visible(*s.hides) {
			t.Errorf("after wall %v %v: %v is still visible", w.pos, w.dir, *s.hides)
		}
		prev = next
	}
}

func TestCalc_Clipping(t *testing.T) {
	tr := world.NewTerrain(world.P(3, 3))
	f := Calc(tr, world.P3(0, 0, 0), 10)
	if got := f.Count(); got != 9 {
		t.Errorf("Count() = %d, want 9", got)
	}
	tl, size := f.Bounds()
	if tl != world.P(0, 0) || size != world.P(3, 3) {
		t.Errorf("Bounds() = %v %v, want (0,0) (3,3)", tl, size)
	}
	if f.Visible(world.P(-1, 0)) || f.Visible(world.P(3, 3)) {
		t.Error("cells outside the map reported visible")
	}
}

func TestCalc_DegenerateInputs(t *testing.T) {
	tr := world.NewTerrain(world.P(3, 3))
	if got := Calc(tr, world.P3(1, 1, 0), -4).Count(); got != 1 {
		t.Errorf("negative radius: Count() = %d, want 1", got)
	}
	if got := Calc(tr, world.P3(5, 1, 0), 2).Count(); got != 0 {
		t.Errorf("origin off the map: Count() = %d, want 0", got)
	}
}

func TestCalc_Deterministic(t *testing.T) {
	tr := terrainWith(world.P(9, 9),
		blocking(3, 3, world.North),
		blocking(5, 4, world.East),
		blocking(4, 6, world.West),
		wallAt{world.P(2, 4), world.South, world.WallCover},
	)
	a := Calc(tr, world.P3(4, 4, 0), 4)
	b := Calc(tr, world.P3(4, 4, 0), 4)
	if !a.Equal(b) {
		t.Error("two calls on the same terrain differ")
	}
	if !a.Positions().Has(world.P(4, 4)) {
		t.Error("Positions() is missing the origin")
	}
	if a.Positions().Size() != a.Count() {
		t.Errorf("Positions().Size() = %d, want %d", a.Positions().Size(), a.Count())
	}
}
