package generator

import (
	"testing"

	"spence/pkg/engine/world"
)

var mapSize = world.P(50, 50)

func TestGeneratorsAreDeterministic(t *testing.T) {
	for _, g := range All() {
		t.Run(g.Name(), func(t *testing.T) {
			a := g.Generate(NewRand(42), mapSize).String()
			b := g.Generate(NewRand(42), mapSize).String()
			if a != b {
				t.Error("same seed produced different terrain")
			}
		})
	}
}

func TestRectSeedsDiffer(t *testing.T) {
	a := Rect.Generate(NewRand(1), mapSize).String()
	b := Rect.Generate(NewRand(2), mapSize).String()
	if a == b {
		t.Error("different seeds produced the same terrain")
	}
}

func TestGeneratorsHandleSmallMaps(t *testing.T) {
	sizes := []world.Pos{world.P(1, 1), world.P(2, 2), world.P(3, 5), world.P(12, 4)}
	for _, g := range All() {
		for _, size := range sizes {
			t.Run(g.Name()+" "+size.String(), func(t *testing.T) {
				for seed := int64(0); seed < 20; seed++ {
					terrain := g.Generate(NewRand(seed), size)
					if terrain.Size() != size {
						t.Fatalf("got size %v, want %v", terrain.Size(), size)
					}
				}
			})
		}
	}
}

func TestRectWithoutShapesIsFlat(t *testing.T) {
	g := &RectGenerator{}
	terrain := g.Generate(NewRand(7), world.P(6, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			for _, d := range world.AllDirections() {
				if !terrain.IsFlat(world.P3(x, y, 0), d) {
					t.Fatalf("edge %v of (%d,%d) is not flat", d, x, y)
				}
			}
		}
	}
}

func countBlocked(terrain *world.Terrain) int {
	n := 0
	size := terrain.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			for _, d := range world.AllDirections() {
				if terrain.IsBlocked(world.P3(x, y, 0), d) {
					n++
				}
			}
		}
	}
	return n
}

func TestGeneratorsPlaceWalls(t *testing.T) {
	for _, g := range All() {
		t.Run(g.Name(), func(t *testing.T) {
			if n := countBlocked(g.Generate(NewRand(3), mapSize)); n == 0 {
				t.Error("no blocking walls generated")
			}
		})
	}
}

func TestWalkerClosesCatwalkLips(t *testing.T) {
	terrain := LineWalker.Generate(NewRand(9), mapSize)
	center := world.P(25, 25)
	if got := terrain.Depth(center); got != 2 {
		t.Fatalf("got center depth %d, want 2", got)
	}
	for y := 0; y < mapSize.Y; y++ {
		for x := 0; x < mapSize.X; x++ {
			p := world.P(x, y)
			if terrain.Depth(p) < 2 {
				continue
			}
			for _, d := range world.AllDirections() {
				nb := p.Step(d)
				if terrain.Depth(nb) >= 2 {
					continue
				}
				if !terrain.EdgeAt(nb.At(0), d.Opposite()).Obstructs() {
					t.Errorf("ground edge from %v into catwalk %v is open", nb, p)
				}
			}
		}
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want GridGenerator
		ok   bool
	}{
		{"rect", Rect, true},
		{"BSP", BSP, true},
		{"walker", LineWalker, true},
		{"maze", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ByName(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("got %v %v, want %v %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
