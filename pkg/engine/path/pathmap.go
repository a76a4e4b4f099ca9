package path

import (
	"math"
	"slices"

	"spence/pkg/engine/world"
)

// NodeState tracks a node through the search.
type NodeState int

const (
	// Open nodes were never reached
	Open NodeState = iota
	// Closed nodes hold a tentative cost and are queued
	Closed
	// Accessible nodes were settled within the budget
	Accessible
	// Inaccessible nodes were settled beyond the budget
	Inaccessible
)

func (s NodeState) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Accessible:
		return "accessible"
	case Inaccessible:
		return "inaccessible"
	default:
		return "unknown"
	}
}

// final reports whether the node's cost can no longer change
func (s NodeState) final() bool {
	return s == Accessible || s == Inaccessible
}

// PathNode is one position of a movement query.
type PathNode struct {
	Pos       world.Pos3
	State     NodeState
	Parent    world.Pos3
	HasParent bool
	Cost      float64
	Segment   int
}

// PathMap is the result of a movement query from Source. It is not modified
// after Calc returns.
type PathMap struct {
	Source   world.Pos3
	MaxCost  float64
	Segments int
	grid     *world.Grid[[]PathNode]
}

func newPathMap(t *world.Terrain, source world.Pos3, maxCost float64, segments int, topLeft, size world.Pos) *PathMap {
	pm := &PathMap{
		Source:   source,
		MaxCost:  maxCost,
		Segments: segments,
		grid:     world.NewGrid[[]PathNode](size, nil, topLeft),
	}
	pm.grid.ForEach(func(p world.Pos, _ []PathNode) {
		col := make([]PathNode, t.Depth(p))
		for z := range col {
			col[z] = PathNode{Pos: p.At(z), Cost: math.Inf(1), Segment: -1}
		}
		pm.grid.Set(p, col)
	})
	return pm
}

// node returns the scratch node at p, or nil outside the searched box
func (pm *PathMap) node(p world.Pos3) *PathNode {
	col := pm.grid.Get(p.Flat())
	if p.Z < 0 || p.Z >= len(col) {
		return nil
	}
	return &col[p.Z]
}

// Node returns a copy of the node at p
func (pm *PathMap) Node(p world.Pos3) (PathNode, bool) {
	n := pm.node(p)
	if n == nil {
		return PathNode{Pos: p, State: Inaccessible, Cost: math.Inf(1), Segment: -1}, false
	}
	return *n, true
}

// CanAccess checks if p can be reached within the budget
func (pm *PathMap) CanAccess(p world.Pos3) bool {
	n := pm.node(p)
	return n != nil && n.State == Accessible
}

// Cost returns the cost to reach p, +Inf if it is not accessible
func (pm *PathMap) Cost(p world.Pos3) float64 {
	if !pm.CanAccess(p) {
		return math.Inf(1)
	}
	return pm.node(p).Cost
}

// Segment returns the budget band of p, -1 if it is not accessible
func (pm *PathMap) Segment(p world.Pos3) int {
	if !pm.CanAccess(p) {
		return -1
	}
	return pm.node(p).Segment
}

// Bounds returns the top-left column and size of the searched box
func (pm *PathMap) Bounds() (topLeft, size world.Pos) {
	return pm.grid.Offset(), pm.grid.Size()
}

// Reachable lists every accessible position ordered by floor, then row-major
func (pm *PathMap) Reachable() []world.Pos3 {
	var out []world.Pos3
	pm.grid.ForEach(func(_ world.Pos, col []PathNode) {
		for _, n := range col {
			if n.State == Accessible {
				out = append(out, n.Pos)
			}
		}
	})
	slices.SortFunc(out, func(a, b world.Pos3) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// band buckets an accessible cost into [0, segments-1]
func band(cost, maxCost float64, segments int) int {
	if maxCost <= 0 || math.IsInf(maxCost, 1) {
		return 0
	}
	s := int(math.Floor(cost / maxCost * float64(segments)))
	return min(max(s, 0), segments-1)
}
