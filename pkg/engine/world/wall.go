package world

// Wall is the state of one face of a cell edge.
type Wall uint8

// Wall values
const (
	WallNone Wall = iota
	WallCover
	WallBlocking
	WallClimbable
)

// String returns the string representation of a wall
func (w Wall) String() string {
	switch w {
	case WallNone:
		return "None"
	case WallCover:
		return "Cover"
	case WallBlocking:
		return "Blocking"
	case WallClimbable:
		return "Climbable"
	default:
		return "Unknown"
	}
}

// IsValid returns true if w is one of the defined wall values
func (w Wall) IsValid() bool {
	return w <= WallClimbable
}

// Obstructs reports whether the wall stops a lateral move.
func (w Wall) Obstructs() bool {
	return w == WallBlocking || w == WallClimbable
}
