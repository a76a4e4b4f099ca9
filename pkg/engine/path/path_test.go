package path

import (
	"errors"
	"math"
	"testing"

	"spence/pkg/engine/world"
)

// mixedMap has cover, blocking and climbable walls and a two-tile platform
// at (3,0)-(3,1).
const mixedMap = `+-+-+-+-+-+
|. . .:2 .|
+ +-+ + +^+
|. .|.^2 .|
+~+ + +-+ +
|. . . . .|
+ + +^+ + +
|.:. . . .|
+-+-+-+-+-+`

func mustParse(t *testing.T, s string) *world.Terrain {
	t.Helper()
	tr, err := world.ParseTerrain(s)
	if err != nil {
		t.Fatalf("ParseTerrain: %v", err)
	}
	return tr
}

func mustCalc(t *testing.T, tr *world.Terrain, src world.Pos3, budget float64, m CostModel, segments int) *PathMap {
	t.Helper()
	pm, err := Calc(tr, src, budget, m, segments)
	if err != nil {
		t.Fatalf("Calc: %v", err)
	}
	return pm
}

func hasMove(moves []move, to world.Pos3) (float64, bool) {
	for _, m := range moves {
		if m.to == to {
			return m.cost, true
		}
	}
	return 0, false
}

func TestCalc_OpenGridScenario(t *testing.T) {
	tr := world.NewTerrain(world.P(5, 5))
	m := CostModel{Orthogonal: 1, Diagonal: 1.4, CoverStep: 2, Climb: 2, Drop: 1}
	pm := mustCalc(t, tr, world.P3(2, 2, 0), 2, m, 2)

	if n, _ := pm.Node(world.P3(0, 0, 0)); n.State != Inaccessible {
		t.Errorf("(0,0) state = %v, want inaccessible", n.State)
	}
	if !pm.CanAccess(world.P3(2, 0, 0)) {
		t.Fatal("(2,0) is not accessible")
	}
	if got := pm.Cost(world.P3(2, 0, 0)); got != 2 {
		t.Errorf("Cost(2,0) = %v, want 2", got)
	}

	segments := map[world.Pos3]int{
		world.P3(2, 2, 0): 0,
		world.P3(2, 1, 0): 1,
		world.P3(1, 1, 0): 1,
		world.P3(2, 0, 0): 1,
		world.P3(0, 0, 0): -1,
	}
	for p, want := range segments {
		if got := pm.Segment(p); got != want {
			t.Errorf("Segment(%v) = %d, want %d", p, got, want)
		}
	}
}

func TestCalc_NoCornerCutting(t *testing.T) {
	cases := []struct {
		name  string
		walls []struct {
			pos world.Pos
			dir world.Direction
		}
	}{
		{"far side", []struct {
			pos world.Pos
			dir world.Direction
		}{{world.P(0, 1), world.East}, {world.P(1, 0), world.South}}},
		{"opposite corners", []struct {
			pos world.Pos
			dir world.Direction
		}{{world.P(0, 0), world.East}, {world.P(1, 1), world.West}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := world.NewTerrain(world.P(2, 2))
			for _, w := range tc.walls {
				tr.SetWall(w.pos.At(0), w.dir, world.WallBlocking)
			}
			src, dst := world.P3(0, 0, 0), world.P3(1, 1, 0)
			if _, ok := hasMove(neighbours(tr, src, DefaultCostModel(), nil), dst); ok {
				t.Error("diagonal move between the walls was offered")
			}
			pm := mustCalc(t, tr, src, 10, DefaultCostModel(), 1)
			if pm.CanAccess(dst) {
				t.Errorf("(1,1) reachable at cost %v", pm.Cost(dst))
			}
		})
	}
}

func TestCalc_Cover(t *testing.T) {
	m := DefaultCostModel()

	t.Run("orthogonal", func(t *testing.T) {
		tr := world.NewTerrain(world.P(3, 1))
		tr.SetWall(world.P3(0, 0, 0), world.East, world.WallCover)
		pm := mustCalc(t, tr, world.P3(0, 0, 0), 10, m, 1)
		if got := pm.Cost(world.P3(1, 0, 0)); got != m.CoverStep {
			t.Errorf("Cost(1,0) = %v, want %v", got, m.CoverStep)
		}
		if got := pm.Cost(world.P3(2, 0, 0)); got != m.CoverStep+m.Orthogonal {
			t.Errorf("Cost(2,0) = %v, want %v", got, m.CoverStep+m.Orthogonal)
		}
	})

	t.Run("one flank", func(t *testing.T) {
		tr := world.NewTerrain(world.P(2, 2))
		tr.SetWall(world.P3(0, 0, 0), world.East, world.WallCover)
		cost, ok := hasMove(neighbours(tr, world.P3(0, 0, 0), m, nil), world.P3(1, 1, 0))
		if !ok || cost != m.CoverStep {
			t.Errorf("diagonal over one cover = %v %v, want %v true", cost, ok, m.CoverStep)
		}
	})

	t.Run("two flanks", func(t *testing.T) {
		tr := world.NewTerrain(world.P(2, 2))
		tr.SetWall(world.P3(0, 0, 0), world.East, world.WallCover)
		tr.SetWall(world.P3(0, 0, 0), world.South, world.WallCover)
		if _, ok := hasMove(neighbours(tr, world.P3(0, 0, 0), m, nil), world.P3(1, 1, 0)); ok {
			t.Error("diagonal between two covers was offered")
		}
	})

	t.Run("climbable flank", func(t *testing.T) {
		tr := world.NewTerrain(world.P(2, 2))
		tr.SetWall(world.P3(0, 0, 0), world.East, world.WallClimbable)
		if _, ok := hasMove(neighbours(tr, world.P3(0, 0, 0), m, nil), world.P3(1, 1, 0)); ok {
			t.Error("diagonal past a climbable wall was offered")
		}
	})
}

func TestCalc_Climb(t *testing.T) {
	m := DefaultCostModel()
	tr := world.NewTerrain(world.P(2, 1))
	tr.SetDepth(world.P(1, 0), 2)
	tr.SetWall(world.P3(0, 0, 0), world.East, world.WallClimbable)

	pm := mustCalc(t, tr, world.P3(0, 0, 0), 10, m, 1)
	if got := pm.Cost(world.P3(1, 0, 1)); got != m.Climb {
		t.Errorf("Cost(1,0,1) = %v, want %v", got, m.Climb)
	}
	if pm.CanAccess(world.P3(1, 0, 0)) {
		t.Error("ground behind the climbable wall is reachable")
	}

	// climbable from the near side only
	pm = mustCalc(t, tr, world.P3(1, 0, 0), 10, m, 1)
	if pm.CanAccess(world.P3(0, 0, 0)) {
		t.Error("climbed the wall from its plain side")
	}
}

func TestCalc_Drop(t *testing.T) {
	m := DefaultCostModel()
	cases := []struct {
		name string
		lip  world.Wall
		cost float64
		ok   bool
	}{
		{"open", world.WallNone, m.Drop, true},
		{"cover", world.WallCover, m.Drop + m.CoverStep, true},
		{"blocking", world.WallBlocking, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := world.NewTerrain(world.P(2, 2))
			tr.SetDepth(world.P(0, 0), 2)
			tr.SetWall(world.P3(0, 0, 1), world.East, tc.lip)

			moves := neighbours(tr, world.P3(0, 0, 1), m, nil)
			cost, ok := hasMove(moves, world.P3(1, 0, 0))
			if ok != tc.ok || cost != tc.cost {
				t.Errorf("drop east = %v %v, want %v %v", cost, ok, tc.cost, tc.ok)
			}
			if _, ok := hasMove(moves, world.P3(1, 1, 0)); ok {
				t.Error("diagonal drop was offered")
			}
		})
	}

	t.Run("hole", func(t *testing.T) {
		tr := world.NewTerrain(world.P(2, 1))
		tr.SetDepth(world.P(1, 0), 0)
		if moves := neighbours(tr, world.P3(0, 0, 0), m, nil); len(moves) != 0 {
			t.Errorf("got %d moves into a hole, want 0", len(moves))
		}
	})
}

func TestCalc_Banding(t *testing.T) {
	tr := world.NewTerrain(world.P(5, 1))
	pm := mustCalc(t, tr, world.P3(0, 0, 0), 4, DefaultCostModel(), 4)
	for x, want := range []int{0, 1, 2, 3, 3} {
		if got := pm.Segment(world.P3(x, 0, 0)); got != want {
			t.Errorf("Segment(%d,0) = %d, want %d", x, got, want)
		}
	}

	pm = mustCalc(t, tr, world.P3(0, 0, 0), 0, DefaultCostModel(), 4)
	if got := pm.Segment(world.P3(0, 0, 0)); got != 0 {
		t.Errorf("zero budget: Segment(source) = %d, want 0", got)
	}
	if got := len(pm.Reachable()); got != 1 {
		t.Errorf("zero budget: %d reachable, want 1", got)
	}
}

func TestCalc_Validation(t *testing.T) {
	tr := world.NewTerrain(world.P(3, 3))
	good := DefaultCostModel()
	negative := good
	negative.Climb = -1
	nan := good
	nan.Diagonal = math.NaN()

	cases := []struct {
		name     string
		src      world.Pos3
		budget   float64
		model    CostModel
		segments int
		want     error
	}{
		{"negative weight", world.P3(1, 1, 0), 3, negative, 1, ErrNegativeCost},
		{"nan weight", world.P3(1, 1, 0), 3, nan, 1, ErrNegativeCost},
		{"negative budget", world.P3(1, 1, 0), -1, good, 1, ErrNegativeBudget},
		{"no segments", world.P3(1, 1, 0), 3, good, 0, ErrSegments},
		{"no tile", world.P3(1, 1, 2), 3, good, 1, ErrNoTile},
		{"off map", world.P3(7, 1, 0), 3, good, 1, ErrNoTile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pm, err := Calc(tr, tc.src, tc.budget, tc.model, tc.segments)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
			if pm != nil {
				t.Error("got a path map alongside the error")
			}
		})
	}
}

// bellmanFord relaxes every move until nothing changes
func bellmanFord(tr *world.Terrain, src world.Pos3, m CostModel) map[world.Pos3]float64 {
	dist := map[world.Pos3]float64{src: 0}
	for changed := true; changed; {
		changed = false
		for p, d := range dist {
			for _, mv := range neighbours(tr, p, m, nil) {
				if old, ok := dist[mv.to]; !ok || d+mv.cost < old {
					dist[mv.to] = d + mv.cost
					changed = true
				}
			}
		}
	}
	return dist
}

func TestCalc_MatchesBellmanFord(t *testing.T) {
	tr := mustParse(t, mixedMap)
	m := DefaultCostModel()
	for _, src := range []world.Pos3{world.P3(0, 0, 0), world.P3(4, 3, 0), world.P3(3, 0, 1)} {
		const budget = 6
		pm := mustCalc(t, tr, src, budget, m, 3)
		want := bellmanFord(tr, src, m)

		for y := 0; y < tr.Size().Y; y++ {
			for x := 0; x < tr.Size().X; x++ {
				for z := 0; z < tr.Depth(world.P(x, y)); z++ {
					p := world.P3(x, y, z)
					d, ok := want[p]
					reachable := ok && d <= budget
					if pm.CanAccess(p) != reachable {
						t.Errorf("from %v: CanAccess(%v) = %v, want %v (cost %v)", src, p, pm.CanAccess(p), reachable, d)
						continue
					}
					if reachable && math.Abs(pm.Cost(p)-d) > 1e-9 {
						t.Errorf("from %v: Cost(%v) = %v, want %v", src, p, pm.Cost(p), d)
					}
				}
			}
		}
	}
}

func TestCalc_Deterministic(t *testing.T) {
	tr := mustParse(t, mixedMap)
	a := mustCalc(t, tr, world.P3(0, 3, 0), 5, DefaultCostModel(), 2)
	b := mustCalc(t, tr, world.P3(0, 3, 0), 5, DefaultCostModel(), 2)
	ra, rb := a.Reachable(), b.Reachable()
	if len(ra) != len(rb) {
		t.Fatalf("reachable %d vs %d", len(ra), len(rb))
	}
	for i, p := range ra {
		na, _ := a.Node(p)
		nb, _ := b.Node(rb[i])
		if na != nb {
			t.Errorf("node %v differs: %+v vs %+v", p, na, nb)
		}
	}
}
