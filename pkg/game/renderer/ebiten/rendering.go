package ebiten

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spence/pkg/engine/logger"
	"spence/pkg/engine/world"
	"spence/pkg/game/locale"
	"spence/pkg/game/renderer"
	"spence/pkg/game/unit"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s := e.currentScene()
	if s == nil || e.monoFontSource == nil {
		// Can't draw without a scene or fonts
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	mapX, mapY := mapMargin, headerHeight+mapMargin

	e.drawHeader(screen, s)

	vector.DrawFilledRect(screen, float32(mapX-mapMargin/2), float32(mapY-mapMargin/2),
		float32(s.Size.X*e.tileSize+mapMargin), float32(s.Size.Y*e.tileSize+mapMargin),
		colorMapBackground, false)

	s.Cells.ForEach(func(p world.Pos, c renderer.Cell) {
		e.drawCell(screen, s, p, c, mapX, mapY)
	})
	e.drawRoute(screen, s, mapX, mapY)
	s.Cells.ForEach(func(p world.Pos, c renderer.Cell) {
		if c.Unit != nil {
			e.drawColoredChar(screen, string(c.Glyph(s.Selected)), mapX+p.X*e.tileSize, mapY+p.Y*e.tileSize, unitColor(c.Unit, s.Selected))
		}
	})

	e.drawStatus(screen, s, screenWidth, screenHeight)

	if logger.Debugging() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), screenWidth-70, 4)
	}
}

func unitColor(u, selected *unit.Unit) color.Color {
	switch {
	case u == selected:
		return colorSelected
	case u.Side == unit.SideEnemy:
		return colorEnemy
	default:
		return colorYou
	}
}

func wallColor(w world.Wall) color.Color {
	switch w {
	case world.WallBlocking:
		return colorWall
	case world.WallCover:
		return colorCover
	case world.WallClimbable:
		return colorClimbable
	default:
		return nil
	}
}

func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, s *renderer.Scene) {
	header := fmt.Sprintf("%s  %s %d",
		locale.Get("TURN", s.TurnNo, locale.Get("SIDE_"+s.Turn.String())), locale.Get("FLOOR"), s.Floor)
	e.drawColoredText(screen, header, mapMargin, 10, colorText)
}

// drawCell draws the tile, its tier tint, fog and the walls of one cell
func (e *EbitenRenderer) drawCell(screen *ebiten.Image, s *renderer.Scene, p world.Pos, c renderer.Cell, mapX, mapY int) {
	ts := float32(e.tileSize)
	x := float32(mapX + p.X*e.tileSize)
	y := float32(mapY + p.Y*e.tileSize)

	bg := colorHole
	if c.Tile {
		bg = colorFloor
		if c.Tier >= 0 {
			bg = tierColor(c.Tier)
		}
	}
	vector.DrawFilledRect(screen, x+1, y+1, ts-2, ts-2, bg, false)

	if !c.Seen {
		vector.DrawFilledRect(screen, x, y, ts, ts, colorFog, false)
		return
	}

	// each edge is drawn by its owner, plus the outer border
	edges := []struct {
		d              world.Direction
		x0, y0, x1, y1 float32
	}{
		{world.North, x, y, x + ts, y},
		{world.West, x, y, x, y + ts},
		{world.South, x, y + ts, x + ts, y + ts},
		{world.East, x + ts, y, x + ts, y + ts},
	}
	for _, ed := range edges {
		if ed.d == world.South && p.Y != s.Size.Y-1 || ed.d == world.East && p.X != s.Size.X-1 {
			continue
		}
		if col := wallColor(c.Walls[ed.d]); col != nil {
			vector.StrokeLine(screen, ed.x0, ed.y0, ed.x1, ed.y1, wallWidth, col, true)
		}
	}

	if c.Cursor {
		vector.StrokeRect(screen, x+2, y+2, ts-4, ts-4, 2, colorCursor, false)
	}
}

// drawRoute draws the smoothed route as a polyline through waypoint centres
func (e *EbitenRenderer) drawRoute(screen *ebiten.Image, s *renderer.Scene, mapX, mapY int) {
	half := float32(e.tileSize) / 2
	centre := func(p world.Pos3) (float32, float32) {
		return float32(mapX+p.X*e.tileSize) + half, float32(mapY+p.Y*e.tileSize) + half
	}
	for i := 1; i < len(s.Route); i++ {
		x0, y0 := centre(s.Route[i-1])
		x1, y1 := centre(s.Route[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, colorRoute, true)
	}
	for _, p := range s.Route {
		x, y := centre(p)
		vector.DrawFilledCircle(screen, x, y, half/4, colorRoute, true)
	}
}

// drawStatus draws the selection, cursor cost and recent messages on a panel
// along the bottom of the window
func (e *EbitenRenderer) drawStatus(screen *ebiten.Image, s *renderer.Scene, screenWidth, screenHeight int) {
	lh := e.lineHeight()
	lines := 2 + len(s.Messages)
	top := screenHeight - lines*lh - mapMargin
	vector.DrawFilledRect(screen, 0, float32(top-mapMargin/2), float32(screenWidth), float32(screenHeight-top+mapMargin/2), colorPanel, false)

	y := top
	if u := s.Selected; u != nil {
		e.drawColoredText(screen, fmt.Sprintf("%s: %s (%s)  AP %d  stamina %d  HP %d/%d",
			locale.Get("SELECTED"), u.Name, u.Type.Name, u.AP, u.Stamina, u.HP, u.Type.HP), mapMargin, y, colorText)
	} else {
		e.drawColoredText(screen, locale.Get("NO_SELECTION"), mapMargin, y, colorSubtle)
	}
	y += lh

	if math.IsInf(s.CursorCost, 1) {
		e.drawColoredText(screen, fmt.Sprintf("%s %v: %s", locale.Get("CURSOR"), s.Cursor, locale.Get("UNREACHABLE")), mapMargin, y, colorDenied)
	} else {
		e.drawColoredText(screen, fmt.Sprintf("%s %v: %s %.1f", locale.Get("CURSOR"), s.Cursor, locale.Get("COST"), s.CursorCost), mapMargin, y, colorText)
	}
	y += lh

	for _, m := range s.Messages {
		e.drawColoredText(screen, m, mapMargin, y, colorSubtle)
		y += lh
	}
}
