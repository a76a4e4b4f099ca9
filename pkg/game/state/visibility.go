package state

import (
	"sync"

	"github.com/zyedidia/generic/mapset"

	"spence/pkg/engine/fov"
	"spence/pkg/engine/world"
	"spence/pkg/game/unit"
)

func (g *Game) fieldOf(u *unit.Unit) *fov.Field {
	return fov.Calc(g.Terrain, u.Pos, g.SightRadius)
}

// RefreshVisibility recomputes every unit's field of view. Fields are
// computed concurrently; the terrain must not change while this runs.
func (g *Game) RefreshVisibility() {
	fields := make([]*fov.Field, len(g.Units))

	var wg sync.WaitGroup
	for i, u := range g.Units {
		wg.Add(1)
		go func(i int, u *unit.Unit) {
			defer wg.Done()
			fields[i] = g.fieldOf(u)
		}(i, u)
	}
	wg.Wait()

	for i, u := range g.Units {
		u.SetField(fields[i])
	}
}

// CanSee reports whether any unit of side sees column p
func (g *Game) CanSee(side unit.Side, p world.Pos) bool {
	for _, u := range g.Units {
		if u.Side == side && u.CanSee(p) {
			return true
		}
	}
	return false
}

// VisibleTo returns the union of the fields of side's units
func (g *Game) VisibleTo(side unit.Side) mapset.Set[world.Pos] {
	out := mapset.New[world.Pos]()
	for _, u := range g.Units {
		if u.Side != side || u.Field() == nil {
			continue
		}
		u.Field().Positions().Each(func(p world.Pos) {
			out.Put(p)
		})
	}
	return out
}
