// Package path answers where a unit can move within a budget and by which
// route. Calc floods a cost field from the source; To walks it back into a
// smoothed route.
package path

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"

	"spence/pkg/engine/logger"
	"spence/pkg/engine/world"
)

var log = logger.Component("path")

type queued struct {
	pos  world.Pos3
	cost float64
}

func lessQueued(a, b queued) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.pos.Less(b.pos)
}

// move is one candidate transition out of a position
type move struct {
	to   world.Pos3
	cost float64
}

// Calc floods movement costs from source. Nodes costing at most maxCost end
// Accessible and are banded into segments tiers; the first nodes popped
// beyond the budget end Inaccessible. Arguments are validated before the
// search runs.
func Calc(t *world.Terrain, source world.Pos3, maxCost float64, model CostModel, segments int) (*PathMap, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	if maxCost < 0 || math.IsNaN(maxCost) {
		return nil, fmt.Errorf("%w: %v", ErrNegativeBudget, maxCost)
	}
	if segments < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSegments, segments)
	}
	if !t.HasTile(source) {
		return nil, fmt.Errorf("%w: %v", ErrNoTile, source)
	}

	topLeft, size := searchBox(t, source, maxCost, model)
	pm := newPathMap(t, source, maxCost, segments, topLeft, size)

	start := pm.node(source)
	start.Cost = 0
	start.State = Closed
	q := heap.New[queued](lessQueued)
	q.Push(queued{pos: source})

	var moves []move
	for q.Size() > 0 {
		it, _ := q.Pop()
		cur := pm.node(it.pos)
		if cur.State.final() || it.cost > cur.Cost {
			continue
		}
		if cur.Cost > maxCost {
			cur.State = Inaccessible
			continue
		}
		cur.State = Accessible
		cur.Segment = band(cur.Cost, maxCost, segments)

		moves = neighbours(t, cur.Pos, model, moves[:0])
		for _, m := range moves {
			next := pm.node(m.to)
			if next == nil || next.State.final() {
				continue
			}
			alt := cur.Cost + m.cost
			if next.State == Closed && alt >= next.Cost {
				continue
			}
			next.State = Closed
			next.Cost = alt
			next.Parent = cur.Pos
			next.HasParent = true
			q.Push(queued{pos: m.to, cost: alt})
		}
	}

	if logger.Debugging() {
		log.WithField("source", source).WithField("budget", maxCost).WithField("reachable", len(pm.Reachable())).Debug("cost field computed")
	}
	return pm, nil
}

// searchBox returns the columns any node within budget can lie in
func searchBox(t *world.Terrain, source world.Pos3, maxCost float64, model CostModel) (topLeft, size world.Pos) {
	mapSize := t.Size()
	least := model.minWeight()
	if least == 0 || math.IsInf(maxCost, 1) {
		return world.Pos{}, mapSize
	}
	reach := math.Ceil(maxCost/least) + 1
	if reach > float64(max(mapSize.X, mapSize.Y)) {
		return world.Pos{}, mapSize
	}
	r := int(reach)
	o := source.Flat()
	topLeft = world.P(max(o.X-r, 0), max(o.Y-r, 0))
	bottomRight := world.P(min(o.X+r, mapSize.X-1), min(o.Y+r, mapSize.Y-1))
	return topLeft, bottomRight.Sub(topLeft).Add(world.P(1, 1))
}

// neighbours appends the legal moves out of p, in row-major delta order
func neighbours(t *world.Terrain, p world.Pos3, m CostModel, out []move) []move {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := world.P(dx, dy)
			if mv, ok := lateral(t, p, d, m); ok {
				out = append(out, mv)
			}
		}
	}
	return out
}

func lateral(t *world.Terrain, p world.Pos3, d world.Pos, m CostModel) (move, bool) {
	to := p.Lateral(d)
	if !t.InBounds(to.Flat()) {
		return move{}, false
	}
	dirs := d.Dirs()
	if len(dirs) == 1 {
		return orthogonal(t, p, dirs[0], m)
	}

	if !t.HasTile(to) || !t.HasTile(p.Step(dirs[0])) || !t.HasTile(p.Step(dirs[1])) {
		return move{}, false
	}
	covers := 0
	for _, dir := range dirs {
		e := t.EdgeAt(p, dir)
		if e.Obstructs() {
			return move{}, false
		}
		if e.Cover() {
			covers++
		}
		// no cutting past a wall on the far corner
		if !t.IsFlat(to, dir.Opposite()) {
			return move{}, false
		}
	}
	switch covers {
	case 0:
		return move{to, m.Diagonal}, true
	case 1:
		return move{to, m.CoverStep}, true
	}
	return move{}, false
}

func orthogonal(t *world.Terrain, p world.Pos3, dir world.Direction, m CostModel) (move, bool) {
	to := p.Step(dir)
	e := t.EdgeAt(p, dir)

	if !t.HasTile(to) {
		// drop off a ledge to the highest tile below
		below := t.Depth(to.Flat()) - 1
		if below < 0 || t.IsBlocked(p, dir) {
			return move{}, false
		}
		cost := m.Drop
		if t.HasCover(p, dir) {
			cost += m.CoverStep
		}
		return move{world.P3(to.X, to.Y, below), cost}, true
	}

	if e.Obstructs() {
		up := to.Add(world.P3(0, 0, 1))
		if e.Climbable() && t.HasTile(up) {
			return move{up, m.Climb}, true
		}
		return move{}, false
	}
	if e.Cover() {
		return move{to, m.CoverStep}, true
	}
	return move{to, m.Orthogonal}, true
}
