package path

import "spence/pkg/engine/world"

// To returns the route from the map's source to dest, both ends included,
// with straight walkable runs collapsed to their end points. It returns nil
// when dest is not accessible.
func To(t *world.Terrain, pm *PathMap, dest world.Pos3) []world.Pos3 {
	if !pm.CanAccess(dest) {
		return nil
	}

	var chain []world.Pos3
	for p := dest; ; {
		chain = append(chain, p)
		n := pm.node(p)
		if !n.HasParent {
			break
		}
		p = n.Parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	out := chain[:1:1]
	for _, p := range chain[1:] {
		for len(out) >= 2 {
			a, b := out[len(out)-2], out[len(out)-1]
			if !inLine(a, b, p) || !Walkable(t, a, p) {
				break
			}
			out = out[:len(out)-1]
		}
		out = append(out, p)
	}
	return out
}

// inLine reports whether b lies between a and c on one floor, with a, b
// and c on one straight line
func inLine(a, b, c world.Pos3) bool {
	if a.Z != b.Z || b.Z != c.Z {
		return false
	}
	ab, bc := b.Sub(a), c.Sub(b)
	cross := ab.X*bc.Y - ab.Y*bc.X
	dot := ab.X*bc.X + ab.Y*bc.Y
	return cross == 0 && dot > 0
}

// Walkable reports whether a unit can walk the straight run from a to b
// without crossing any wall. The run must lie on one floor along an
// orthogonal or diagonal line.
func Walkable(t *world.Terrain, a, b world.Pos3) bool {
	if a.Z != b.Z || !t.HasTile(a) {
		return false
	}
	d := b.Sub(a)
	dx, dy := d.X, d.Y
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return false
	}
	n := max(abs(dx), abs(dy))
	if n == 0 {
		return true
	}
	unit := world.P(dx/n, dy/n)
	dirs := unit.Dirs()

	for cur, i := a, 0; i < n; i++ {
		next := cur.Lateral(unit)
		if !t.HasTile(next) {
			return false
		}
		for _, dir := range dirs {
			if !t.IsFlat(cur, dir) {
				return false
			}
			if len(dirs) == 2 && (!t.HasTile(cur.Step(dir)) || !t.IsFlat(next, dir.Opposite())) {
				return false
			}
		}
		cur = next
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
