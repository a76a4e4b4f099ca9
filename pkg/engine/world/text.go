package world

import (
	"fmt"
	"strings"
)

// Text map format
//
// A terrain is written as one block per floor, blocks separated by a blank
// line. A block for a W×H map has 2H+1 lines on a doubled grid:
//
//	+-+-+    even lines: '+' corners, then the North edge of each cell
//	|.:2|    odd lines: the West edge of each cell, then the cell glyph
//	+ +^+
//
// Edge glyphs: ' ' none, '-' or '|' blocking, '~' or ':' cover, '^' climbable.
// In the first block the cell glyph sets the column depth: '.' one tile,
// '#' no tile, a digit that many tiles. Cell glyphs of later blocks are
// informational only ('.' a tile exists on that floor, '#' it does not).

var wallGlyphs = map[rune]Wall{
	' ': WallNone,
	'-': WallBlocking,
	'|': WallBlocking,
	'~': WallCover,
	':': WallCover,
	'^': WallClimbable,
}

// WallGlyph returns the character drawn for w on the edge on side d of a cell
func WallGlyph(w Wall, d Direction) byte {
	switch {
	case w == WallBlocking && d.Horizontal():
		return '-'
	case w == WallBlocking:
		return '|'
	case w == WallCover && d.Horizontal():
		return '~'
	case w == WallCover:
		return ':'
	case w == WallClimbable:
		return '^'
	default:
		return ' '
	}
}

// ParseTerrain builds a terrain from the text map format.
func ParseTerrain(s string) (*Terrain, error) {
	blocks := splitBlocks(s)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("empty map")
	}
	first := blocks[0].lines
	if len(first)%2 == 0 || len(first) < 3 {
		return nil, fmt.Errorf("line %d: need an odd number of lines (got %d)", blocks[0].start+1, len(first))
	}
	width := (len(strings.TrimRight(first[0], " ")) - 1) / 2
	height := (len(first) - 1) / 2
	if width < 1 {
		return nil, fmt.Errorf("line %d: top border too short", blocks[0].start+1)
	}

	t := NewTerrain(Pos{width, height})
	for z, b := range blocks {
		if len(b.lines) != len(first) {
			return nil, fmt.Errorf("line %d: floor %d has %d lines, want %d", b.start+1, z, len(b.lines), len(first))
		}
		for i, line := range b.lines {
			lineNo := b.start + i + 1
			if err := t.parseLine(line, lineNo, i, z); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

type textBlock struct {
	start int
	lines []string
}

func splitBlocks(s string) []textBlock {
	var blocks []textBlock
	var cur *textBlock
	for i, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			cur = nil
			continue
		}
		if cur == nil {
			blocks = append(blocks, textBlock{start: i})
			cur = &blocks[len(blocks)-1]
		}
		cur.lines = append(cur.lines, line)
	}
	return blocks
}

func (t *Terrain) parseLine(line string, lineNo, row, z int) error {
	at := func(i int) rune {
		if i < len(line) {
			return rune(line[i])
		}
		return ' '
	}
	wallAt := func(i int) (Wall, error) {
		w, ok := wallGlyphs[at(i)]
		if !ok {
			return WallNone, fmt.Errorf("line %d: column %d: unknown wall glyph %q", lineNo, i+1, at(i))
		}
		return w, nil
	}

	y := row / 2
	if row%2 == 0 {
		for x := 0; x < t.size.X; x++ {
			w, err := wallAt(2*x + 1)
			if err != nil {
				return err
			}
			t.setEdge(Pos3{x, y, z}, North, w)
		}
		return nil
	}

	for x := 0; x <= t.size.X; x++ {
		w, err := wallAt(2 * x)
		if err != nil {
			return err
		}
		t.setEdge(Pos3{x, y, z}, West, w)
		if x == t.size.X || z > 0 {
			continue
		}
		switch g := at(2*x + 1); {
		case g == '.' || g == ' ':
		case g == '#':
			t.SetDepth(Pos{x, y}, 0)
		case g >= '0' && g <= '9':
			t.SetDepth(Pos{x, y}, int(g-'0'))
		default:
			return fmt.Errorf("line %d: column %d: unknown cell glyph %q", lineNo, 2*x+2, g)
		}
	}
	return nil
}

// setEdge writes both faces of an edge named from a possibly out-of-bounds
// cell, going through whichever side lies inside the map.
func (t *Terrain) setEdge(p Pos3, d Direction, w Wall) {
	if w == WallNone && len(t.floors) <= p.Z {
		return
	}
	other := p.Step(d)
	if t.InBounds(p.Flat()) {
		t.SetWall(p, d, w)
	}
	if t.InBounds(other.Flat()) {
		t.SetWall(other, d.Opposite(), w)
	}
}

// String renders the terrain in the text map format. Edges whose faces
// differ are written with the face seen from the south or east cell when it
// exists.
func (t *Terrain) String() string {
	floors := max(t.Floors(), 1)
	var sb strings.Builder
	for z := 0; z < floors; z++ {
		if z > 0 {
			sb.WriteString("\n\n")
		}
		for y := 0; y <= t.size.Y; y++ {
			if y > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(t.edgeRow(y, z))
			if y == t.size.Y {
				break
			}
			sb.WriteByte('\n')
			sb.WriteString(t.cellRow(y, z))
		}
	}
	return sb.String()
}

// edgeFace reads the edge on side d of p from whichever side is in bounds
func (t *Terrain) edgeFace(p Pos3, d Direction) Wall {
	if t.InBounds(p.Flat()) {
		return t.GetWall(p, d)
	}
	return t.GetWall(p.Step(d), d.Opposite())
}

func (t *Terrain) edgeRow(y, z int) string {
	row := make([]byte, 0, 2*t.size.X+1)
	for x := 0; x < t.size.X; x++ {
		row = append(row, '+', WallGlyph(t.edgeFace(Pos3{x, y, z}, North), North))
	}
	return string(append(row, '+'))
}

func (t *Terrain) cellRow(y, z int) string {
	row := make([]byte, 0, 2*t.size.X+1)
	for x := 0; x <= t.size.X; x++ {
		row = append(row, WallGlyph(t.edgeFace(Pos3{x, y, z}, West), West))
		if x < t.size.X {
			row = append(row, t.cellGlyph(Pos3{x, y, z}))
		}
	}
	return string(row)
}

func (t *Terrain) cellGlyph(p Pos3) byte {
	if p.Z > 0 {
		if t.HasTile(p) {
			return '.'
		}
		return '#'
	}
	switch d := t.Depth(p.Flat()); {
	case d == 0:
		return '#'
	case d == 1:
		return '.'
	default:
		return byte('0' + min(d, 9))
	}
}
