// Package fov computes what a unit standing on one floor can see.
//
// Walls sit on cell edges, so sight is blocked by line segments rather than
// by whole cells. The caster walks each quadrant in rings of increasing
// Manhattan distance and keeps a sorted list of open views, narrowing them
// with bumps at the corners of every obstruction it meets. All tests are
// exact integer arithmetic.
package fov

import (
	"slices"

	"spence/pkg/engine/logger"
	"spence/pkg/engine/world"
)

var log = logger.Component("fov")

// quadrants in the order they are cast. Local +x maps to world X·qx, local
// +y to world Y·qy.
var quadrants = []world.Pos{
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
	{X: 1, Y: -1},
}

// Calc returns the cells visible from origin within radius (Chebyshev).
// Only Blocking walls on the origin's floor obstruct. A negative radius is
// treated as zero; an origin outside the map yields an empty field.
func Calc(t *world.Terrain, origin world.Pos3, radius int) *Field {
	radius = max(radius, 0)
	o := origin.Flat()
	if !t.InBounds(o) {
		return newField(origin, radius, o, world.Pos{})
	}

	size := t.Size()
	topLeft := world.P(max(o.X-radius, 0), max(o.Y-radius, 0))
	bottomRight := world.P(min(o.X+radius, size.X-1), min(o.Y+radius, size.Y-1))
	f := newField(origin, radius, topLeft, bottomRight.Sub(topLeft).Add(world.P(1, 1)))
	f.grid.Set(o, true)

	for _, q := range quadrants {
		c := newCaster(t, origin, q, radius, f.grid)
		c.cast()
	}

	if logger.Debugging() {
		log.WithField("origin", origin).WithField("radius", radius).WithField("visible", f.Count()).Debug("field computed")
	}
	return f
}

type caster struct {
	terrain *world.Terrain
	origin  world.Pos3
	quad    world.Pos
	extent  world.Pos
	out     *world.Grid[bool]
	views   []view
	bumps   []bump

	// near edges of a local cell, in world directions
	leftDir, bottomDir world.Direction
}

func newCaster(t *world.Terrain, origin world.Pos3, q world.Pos, radius int, out *world.Grid[bool]) *caster {
	size := t.Size()
	c := &caster{
		terrain:   t,
		origin:    origin,
		quad:      q,
		out:       out,
		leftDir:   world.West,
		bottomDir: world.North,
	}
	if q.X == 1 {
		c.extent.X = min(radius, size.X-1-origin.X)
	} else {
		c.extent.X = min(radius, origin.X)
		c.leftDir = world.East
	}
	if q.Y == 1 {
		c.extent.Y = min(radius, size.Y-1-origin.Y)
	} else {
		c.extent.Y = min(radius, origin.Y)
		c.bottomDir = world.South
	}

	c.views = []view{{
		shallow:     line{near: world.P(0, 1), far: world.P(c.extent.X+1, 0)},
		steep:       line{near: world.P(1, 0), far: world.P(0, c.extent.Y+1)},
		shallowBump: noBump,
		steepBump:   noBump,
	}}
	return c
}

func (c *caster) toWorld(local world.Pos) world.Pos {
	return c.origin.Flat().Add(world.P(local.X*c.quad.X, local.Y*c.quad.Y))
}

// cast walks the quadrant ring by ring. Every cell of a ring is tested
// against the views before any of them occludes, so walls never shadow a
// cell on their own ring.
func (c *caster) cast() {
	ring := make([]cell, 0, c.extent.X+c.extent.Y+1)
	for i := 1; i <= c.extent.X+c.extent.Y && len(c.views) > 0; i++ {
		ring = ring[:0]
		for j := max(0, i-c.extent.X); j <= min(i, c.extent.Y); j++ {
			ring = append(ring, c.cellAt(world.P(i-j, j)))
		}
		for _, cl := range ring {
			c.see(cl)
		}
		for _, cl := range ring {
			c.block(cl)
		}
	}
}

// cell is a local cell with its near walls and the obstruction they form
type cell struct {
	dest, tl, br     world.Pos
	otl, obr         world.Pos
	left, bottom     bool
	sealed, occludes bool
}

// nearWalls reports whether the edges a sight line must cross to enter the
// local cell are blocked. Cells on an axis have only one near edge.
func (c *caster) nearWalls(local world.Pos) (left, bottom bool) {
	p := c.toWorld(local).At(c.origin.Z)
	if local.X > 0 {
		left = c.terrain.IsBlocked(p, c.leftDir)
	}
	if local.Y > 0 {
		bottom = c.terrain.IsBlocked(p, c.bottomDir)
	}
	return left, bottom
}

func (c *caster) cellAt(dest world.Pos) cell {
	cl := cell{
		dest: dest,
		tl:   world.P(dest.X, dest.Y+1),
		br:   world.P(dest.X+1, dest.Y),
	}
	cl.left, cl.bottom = c.nearWalls(dest)
	cl.sealed = (cl.left || dest.X == 0) && (cl.bottom || dest.Y == 0)
	cl.occludes = cl.left || cl.bottom

	// A sealed cell shadows like a solid square. A single blocked edge
	// shadows only its own segment.
	cl.otl, cl.obr = cl.tl, cl.br
	if !cl.sealed {
		switch {
		case cl.left:
			cl.otl, cl.obr = world.P(dest.X, dest.Y+1), world.P(dest.X, dest.Y)
		case cl.bottom:
			cl.otl, cl.obr = world.P(dest.X, dest.Y), world.P(dest.X+1, dest.Y)
		}
	}
	return cl
}

// see marks the cell visible if some view reaches it through an open edge
func (c *caster) see(cl cell) {
	if cl.sealed {
		return
	}
	for _, v := range c.views {
		if v.steep.isBelowOrContains(cl.br) {
			continue
		}
		if v.shallow.isAboveOrContains(cl.tl) {
			return
		}
		if c.enters(v, cl.dest, cl.left, cl.bottom) {
			c.out.Set(c.toWorld(cl.dest), true)
			return
		}
	}
}

// block narrows the views by the cell's obstruction
func (c *caster) block(cl cell) {
	if !cl.occludes {
		return
	}
	for k := 0; k < len(c.views); {
		v := c.views[k]
		if v.steep.isBelowOrContains(cl.br) {
			k++
			continue
		}
		if v.shallow.isAboveOrContains(cl.tl) {
			break
		}
		if v.steep.isBelowOrContains(cl.obr) || v.shallow.isAboveOrContains(cl.otl) {
			k++
			continue
		}
		k = c.occlude(k, cl.otl, cl.obr)
	}
}

// enters reports whether the view reaches dest through an open near edge
func (c *caster) enters(v view, dest world.Pos, left, bottom bool) bool {
	var lo, hi world.Pos
	switch {
	case !left && !bottom:
		return true
	case left:
		lo, hi = world.P(dest.X+1, dest.Y), world.P(dest.X, dest.Y)
	default:
		lo, hi = world.P(dest.X, dest.Y), world.P(dest.X, dest.Y+1)
	}
	return !v.steep.isBelowOrContains(lo) && !v.shallow.isAboveOrContains(hi)
}

// occlude narrows, splits or removes view k for an obstruction spanning
// otl..obr, and returns the index of the next view to test.
func (c *caster) occlude(k int, otl, obr world.Pos) int {
	v := c.views[k]
	switch {
	case v.shallow.isAbove(obr) && v.steep.isBelow(otl):
		c.remove(k)
		return k
	case v.shallow.isAbove(obr):
		if c.addShallowBump(k, otl) || c.dead(k) {
			c.remove(k)
			return k
		}
		return k + 1
	case v.steep.isBelow(otl):
		if c.addSteepBump(k, obr) || c.dead(k) {
			c.remove(k)
			return k
		}
		return k + 1
	}

	// the obstruction sits inside the view: k keeps the shallow side,
	// k+1 the steep side
	c.views = slices.Insert(c.views, k, v)
	next := k + 2
	if c.addShallowBump(k+1, otl) || c.dead(k+1) {
		c.remove(k + 1)
		next--
	}
	if c.addSteepBump(k, obr) || c.dead(k) {
		c.remove(k)
		next--
	}
	return next
}

// addShallowBump raises the shallow boundary of view k over p. It reports
// whether the view closed at a corner shared with a steep bump.
func (c *caster) addShallowBump(k int, p world.Pos) bool {
	v := &c.views[k]
	v.shallow.far = p
	c.bumps = append(c.bumps, bump{loc: p, parent: v.shallowBump})
	v.shallowBump = len(c.bumps) - 1

	pinched := false
	for b := v.steepBump; b != noBump; b = c.bumps[b].parent {
		loc := c.bumps[b].loc
		if loc == p {
			pinched = true
		}
		if v.shallow.isAbove(loc) {
			v.shallow.near = loc
		}
	}
	return pinched
}

// addSteepBump lowers the steep boundary of view k under p
func (c *caster) addSteepBump(k int, p world.Pos) bool {
	v := &c.views[k]
	v.steep.far = p
	c.bumps = append(c.bumps, bump{loc: p, parent: v.steepBump})
	v.steepBump = len(c.bumps) - 1

	pinched := false
	for b := v.shallowBump; b != noBump; b = c.bumps[b].parent {
		loc := c.bumps[b].loc
		if loc == p {
			pinched = true
		}
		if v.steep.isBelow(loc) {
			v.steep.near = loc
		}
	}
	return pinched
}

// dead reports whether view k can no longer contain a sight line
func (c *caster) dead(k int) bool {
	v := c.views[k]
	if v.shallow.contains(v.steep.near) && v.shallow.contains(v.steep.far) &&
		(v.shallow.contains(world.P(0, 1)) || v.shallow.contains(world.P(1, 0))) {
		return true
	}
	if v.shallow.near.X == 0 && v.shallow.far.X == 0 {
		return true
	}
	return v.steep.near.Y == 0 && v.steep.far.Y == 0
}

func (c *caster) remove(k int) {
	c.views = slices.Delete(c.views, k, k+1)
}
