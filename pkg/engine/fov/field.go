package fov

import (
	"github.com/zyedidia/generic/mapset"

	"spence/pkg/engine/world"
)

// Field is the result of a visibility query: which cells of one floor can be
// seen from the origin. It covers the box of side 2·radius+1 around the
// origin, clipped to the map.
type Field struct {
	Origin world.Pos3
	Radius int
	grid   *world.Grid[bool]
}

func newField(origin world.Pos3, radius int, topLeft, size world.Pos) *Field {
	return &Field{
		Origin: origin,
		Radius: radius,
		grid:   world.NewGrid(size, false, topLeft),
	}
}

// Visible reports whether p can be seen. Cells outside the box are not visible.
func (f *Field) Visible(p world.Pos) bool {
	return f.grid.Get(p)
}

// Floor returns the floor the field was computed on
func (f *Field) Floor() int {
	return f.Origin.Z
}

// Bounds returns the top-left cell and size of the covered box
func (f *Field) Bounds() (topLeft, size world.Pos) {
	return f.grid.Offset(), f.grid.Size()
}

// Count returns the number of visible cells
func (f *Field) Count() int {
	n := 0
	f.grid.ForEach(func(_ world.Pos, v bool) {
		if v {
			n++
		}
	})
	return n
}

// Positions returns the visible cells as a set
func (f *Field) Positions() mapset.Set[world.Pos] {
	set := mapset.New[world.Pos]()
	f.grid.ForEach(func(p world.Pos, v bool) {
		if v {
			set.Put(p)
		}
	})
	return set
}

// Equal reports whether two fields cover the same box with the same cells
func (f *Field) Equal(o *Field) bool {
	if f.Origin != o.Origin || f.Radius != o.Radius {
		return false
	}
	tl, size := f.Bounds()
	otl, osize := o.Bounds()
	if tl != otl || size != osize {
		return false
	}
	equal := true
	f.grid.ForEach(func(p world.Pos, v bool) {
		if o.grid.Get(p) != v {
			equal = false
		}
	})
	return equal
}
