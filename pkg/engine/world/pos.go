package world

import "fmt"

// Pos is an integer grid coordinate on a single floor.
type Pos struct {
	X, Y int
}

// P is shorthand for Pos{x, y}.
func P(x, y int) Pos {
	return Pos{x, y}
}

func (p Pos) Add(o Pos) Pos { return Pos{p.X + o.X, p.Y + o.Y} }
func (p Pos) Sub(o Pos) Pos { return Pos{p.X - o.X, p.Y - o.Y} }

// Mul multiplies component-wise.
func (p Pos) Mul(o Pos) Pos { return Pos{p.X * o.X, p.Y * o.Y} }

func (p Pos) Neg() Pos { return Pos{-p.X, -p.Y} }

// Step returns the neighbouring position in the given direction.
func (p Pos) Step(d Direction) Pos {
	return p.Add(d.Delta())
}

// At lifts p onto floor z.
func (p Pos) At(z int) Pos3 {
	return Pos3{p.X, p.Y, z}
}

// Less orders positions row-major (Y first, then X).
func (p Pos) Less(o Pos) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Dirs returns the orthogonal directions that make up p when p is treated as
// a delta. The axis with the larger magnitude comes first.
func (p Pos) Dirs() []Direction {
	res := make([]Direction, 0, 2)
	if p.Y > 0 {
		res = append(res, South)
	} else if p.Y < 0 {
		res = append(res, North)
	}
	if p.X > 0 {
		res = append(res, East)
	} else if p.X < 0 {
		res = append(res, West)
	}
	if len(res) == 2 && abs(p.X) > abs(p.Y) {
		res[0], res[1] = res[1], res[0]
	}
	return res
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Pos3 is a grid coordinate with a floor index.
type Pos3 struct {
	X, Y, Z int
}

// P3 is shorthand for Pos3{x, y, z}.
func P3(x, y, z int) Pos3 {
	return Pos3{x, y, z}
}

// Flat drops the floor index.
func (p Pos3) Flat() Pos {
	return Pos{p.X, p.Y}
}

func (p Pos3) Add(o Pos3) Pos3 { return Pos3{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Pos3) Sub(o Pos3) Pos3 { return Pos3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// Lateral moves p by a flat delta on the same floor.
func (p Pos3) Lateral(d Pos) Pos3 {
	return Pos3{p.X + d.X, p.Y + d.Y, p.Z}
}

// Step returns the neighbouring position on the same floor.
func (p Pos3) Step(d Direction) Pos3 {
	return p.Lateral(d.Delta())
}

// Less orders by floor, then row-major.
func (p Pos3) Less(o Pos3) bool {
	if p.Z != o.Z {
		return p.Z < o.Z
	}
	return p.Flat().Less(o.Flat())
}

func (p Pos3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
