package world

// Direction is one of the four cardinal directions. There are no diagonal
// directions; a diagonal step is composed from two of these.
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

var directions = [...]struct {
	name     string
	delta    Pos
	opposite Direction
}{
	North: {"North", Pos{0, -1}, South},
	East:  {"East", Pos{1, 0}, West},
	South: {"South", Pos{0, 1}, North},
	West:  {"West", Pos{-1, 0}, East},
}

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directions[d].name
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction. Invalid directions map to themselves.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return directions[d].opposite
}

// Delta returns the unit vector for this direction. North is -Y.
func (d Direction) Delta() Pos {
	if !d.IsValid() {
		return Pos{}
	}
	return directions[d].delta
}

// Horizontal reports whether the edge on side d of a cell runs along X
func (d Direction) Horizontal() bool {
	return d == North || d == South
}
