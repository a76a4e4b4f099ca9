package tui

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"

	"spence/pkg/engine/input"
	"spence/pkg/engine/terminal"
	"spence/pkg/engine/world"
	"spence/pkg/game/locale"
	"spence/pkg/game/renderer"
	"spence/pkg/game/state"
	"spence/pkg/game/unit"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = locale.Get

// glyph is one character of the map with its style
type glyph struct {
	ch    byte
	style renderer.TextStyle
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorSubtle    color.Style
	colorWall      color.Style
	colorCover     color.Style
	colorClimbable color.Style
	colorFloor     color.Style
	colorHole      color.Style
	colorYou       color.Style
	colorEnemy     color.Style
	colorSelected  color.Style
	colorRoute     color.Style
	colorCursor    color.Style
	colorTierNear  color.Style
	colorTierMid   color.Style
	colorTierFar   color.Style
	colorAction    color.Style
	colorActionKey color.Style
	colorDenied    color.Style
	colorItem      color.Style

	// width clips map rows, 0 for no clipping
	width int

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorSubtle = color.Style{color.FgGray}
	t.colorWall = color.Style{color.FgWhite, color.OpBold}
	t.colorCover = color.Style{color.FgYellow}
	t.colorClimbable = color.Style{color.FgCyan}
	t.colorFloor = color.Style{color.FgGray}
	t.colorHole = color.Style{color.FgDarkGray}
	t.colorYou = color.Style{color.FgGreen, color.OpBold}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorSelected = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorRoute = color.Style{color.FgMagenta, color.OpBold}
	t.colorCursor = color.Style{color.FgLightMagenta, color.OpBold}
	t.colorTierNear = color.Style{color.FgBlue}
	t.colorTierMid = color.Style{color.FgCyan}
	t.colorTierFar = color.Style{color.FgLightBlue}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionKey = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}

	t.width = terminal.GetWidth()
	t.regexpStringFunctions = regexp.MustCompile(renderer.MarkupPattern.String())
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput waits for a key press and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	raw, err := input.ReadKey()
	if err != nil {
		return input.Intent{Action: input.ActionQuit}
	}
	return input.MapToIntent(input.NewDebouncedInput(raw))
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleCover:
		return t.colorCover.Sprint(text)
	case renderer.StyleClimbable:
		return t.colorClimbable.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleHole:
		return t.colorHole.Sprint(text)
	case renderer.StyleYou:
		return t.colorYou.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleSelected:
		return t.colorSelected.Sprint(text)
	case renderer.StyleRoute:
		return t.colorRoute.Sprint(text)
	case renderer.StyleCursor:
		return t.colorCursor.Sprint(text)
	case renderer.StyleTierNear:
		return t.colorTierNear.Sprint(text)
	case renderer.StyleTierMid:
		return t.colorTierMid.Sprint(text)
	case renderer.StyleTierFar:
		return t.colorTierFar.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ACTION":
			val = t.colorActionKey.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game, v renderer.View) {
	fmt.Print(t.Render(renderer.BuildScene(g, v)))
}

// Render draws a scene: header, map, status, legend and messages
func (t *TUIRenderer) Render(s *renderer.Scene) string {
	var b strings.Builder

	b.WriteString(t.colorAction.Sprint(locale.Get("TURN", s.TurnNo, locale.Get("SIDE_"+s.Turn.String()))))
	fmt.Fprintf(&b, "  %s %d\n\n", locale.Get("FLOOR"), s.Floor)

	for y := 0; y < s.Size.Y; y++ {
		t.writeRow(&b, t.edgeRow(s, y, world.North))
		t.writeRow(&b, t.cellRow(s, y))
	}
	t.writeRow(&b, t.edgeRow(s, s.Size.Y-1, world.South))
	b.WriteString("\n")

	t.writeStatus(&b, s)
	t.writeLegend(&b)

	for _, m := range s.Messages {
		b.WriteString("- " + m + "\n")
	}
	return b.String()
}

func (t *TUIRenderer) writeRow(b *strings.Builder, row []glyph) {
	if t.width > 0 && len(row) > t.width {
		row = row[:t.width]
	}
	for _, g := range row {
		b.WriteString(t.StyleText(string(g.ch), g.style))
	}
	b.WriteString("\n")
}

func wallGlyph(w world.Wall, d world.Direction) glyph {
	style := renderer.StyleNormal
	switch w {
	case world.WallBlocking:
		style = renderer.StyleWall
	case world.WallCover:
		style = renderer.StyleCover
	case world.WallClimbable:
		style = renderer.StyleClimbable
	}
	return glyph{world.WallGlyph(w, d), style}
}

// edgeRow draws the d edge (North or South) of row y
func (t *TUIRenderer) edgeRow(s *renderer.Scene, y int, d world.Direction) []glyph {
	row := make([]glyph, 0, 2*s.Size.X+1)
	for x := 0; x < s.Size.X; x++ {
		c := s.Cells.Get(world.P(x, y))
		row = append(row, glyph{'+', renderer.StyleSubtle})
		if !c.Seen {
			row = append(row, glyph{' ', renderer.StyleNormal})
			continue
		}
		row = append(row, wallGlyph(c.Walls[d], d))
	}
	return append(row, glyph{'+', renderer.StyleSubtle})
}

func (t *TUIRenderer) cellRow(s *renderer.Scene, y int) []glyph {
	row := make([]glyph, 0, 2*s.Size.X+1)
	var last renderer.Cell
	for x := 0; x < s.Size.X; x++ {
		c := s.Cells.Get(world.P(x, y))
		if c.Seen {
			row = append(row, wallGlyph(c.Walls[world.West], world.West))
		} else {
			row = append(row, glyph{' ', renderer.StyleNormal})
		}
		row = append(row, glyph{c.Glyph(s.Selected), cellStyle(c, s.Selected)})
		last = c
	}
	if last.Seen {
		return append(row, wallGlyph(last.Walls[world.East], world.East))
	}
	return append(row, glyph{' ', renderer.StyleNormal})
}

func cellStyle(c renderer.Cell, selected *unit.Unit) renderer.TextStyle {
	switch {
	case c.Unit != nil && c.Unit == selected:
		return renderer.StyleSelected
	case c.Unit != nil && c.Unit.Side == unit.SideEnemy:
		return renderer.StyleEnemy
	case c.Unit != nil:
		return renderer.StyleYou
	case !c.Seen:
		return renderer.StyleNormal
	case !c.Tile:
		return renderer.StyleHole
	case c.Cursor:
		return renderer.StyleCursor
	case c.Route:
		return renderer.StyleRoute
	case c.Tier >= 0:
		return renderer.TierStyle(c.Tier)
	default:
		return renderer.StyleFloor
	}
}

func (t *TUIRenderer) writeStatus(b *strings.Builder, s *renderer.Scene) {
	if s.Selected == nil {
		b.WriteString(t.colorSubtle.Sprint(locale.Get("NO_SELECTION")) + "\n")
	} else {
		u := s.Selected
		fmt.Fprintf(b, "%s: %s (%s) AP %d  stamina %d  HP %d/%d\n",
			locale.Get("SELECTED"), t.colorYou.Sprint(u.Name), u.Type.Name, u.AP, u.Stamina, u.HP, u.Type.HP)
	}

	fmt.Fprintf(b, "%s: %v  ", locale.Get("CURSOR"), s.Cursor)
	if math.IsInf(s.CursorCost, 1) {
		b.WriteString(t.colorDenied.Sprint(locale.Get("UNREACHABLE")) + "\n")
	} else {
		fmt.Fprintf(b, "%s %.1f\n", locale.Get("COST"), s.CursorCost)
	}

	if len(s.Route) > 0 {
		parts := make([]string, len(s.Route))
		for i, p := range s.Route {
			parts[i] = p.String()
		}
		fmt.Fprintf(b, "%s: %s\n", locale.Get("ROUTE"), strings.Join(parts, " "))
	}
	b.WriteString("\n")
}

func (t *TUIRenderer) writeLegend(b *strings.Builder) {
	fmt.Fprintf(b, "%s: %s %s  %s %s  %s %s  %s %s\n",
		locale.Get("LEGEND"),
		t.colorSelected.Sprint("@"), locale.Get("LEGEND_ORIGIN"),
		t.colorRoute.Sprint("o"), locale.Get("LEGEND_ROUTE"),
		t.colorTierNear.Sprint("1-9"), locale.Get("LEGEND_TIER"),
		t.colorHole.Sprint("#"), locale.Get("LEGEND_HOLE"))
	b.WriteString(t.FormatText(locale.Get("ACTIONS")) + "\n\n")
}
