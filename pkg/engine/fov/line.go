package fov

import "spence/pkg/engine/world"

// line is a boundary through two lattice points in quadrant-local
// coordinates. Comparisons use the integer cross product only.
type line struct {
	near, far world.Pos
}

// relativeSlope is positive when p lies above the line, zero when on it
func (l line) relativeSlope(p world.Pos) int {
	return (l.far.Y-l.near.Y)*(l.far.X-p.X) - (l.far.Y-p.Y)*(l.far.X-l.near.X)
}

func (l line) isBelow(p world.Pos) bool           { return l.relativeSlope(p) > 0 }
func (l line) isBelowOrContains(p world.Pos) bool { return l.relativeSlope(p) >= 0 }
func (l line) isAbove(p world.Pos) bool           { return l.relativeSlope(p) < 0 }
func (l line) isAboveOrContains(p world.Pos) bool { return l.relativeSlope(p) <= 0 }
func (l line) contains(p world.Pos) bool          { return l.relativeSlope(p) == 0 }

// bump is an obstruction corner a boundary was moved to. Bumps live in an
// append-only arena and link to the previous bump of the same boundary by
// index; noBump ends a chain.
type bump struct {
	loc    world.Pos
	parent int
}

const noBump = -1

// view is an open interval of sight lines between a shallow (lower) and a
// steep (upper) boundary.
type view struct {
	shallow, steep           line
	shallowBump, steepBump int
}
