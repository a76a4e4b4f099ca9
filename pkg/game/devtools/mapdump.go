// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"spence/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// WriteMapDump writes a debug dump of g to w: metadata, the terrain in the
// text map format and the roster. The format is human-readable with
// sections and key: value lines, and the terrain section can be loaded back
// with -map.
func WriteMapDump(w io.Writer, g *state.Game) {
	size := g.Terrain.Size()

	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", size.X)
	fmt.Fprintf(w, "height: %d\n", size.Y)
	fmt.Fprintf(w, "floors: %d\n", g.Terrain.Floors())
	fmt.Fprintf(w, "turn: %d\n", g.TurnNo)
	fmt.Fprintf(w, "side: %s\n", g.Turn)
	if g.Selected != nil {
		fmt.Fprintf(w, "selected: %s\n", g.Selected.Name)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Terrain ---")
	fmt.Fprint(w, g.Terrain.String())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Units ---")
	for _, u := range g.Units {
		seen := 0
		if f := u.Field(); f != nil {
			seen = f.Count()
		}
		fmt.Fprintf(w, "%s: type=%s side=%s pos=%v hp=%d/%d ap=%d stamina=%d sees=%d\n",
			u.Name, u.Type.Name, u.Side, u.Pos, u.HP, u.Type.HP, u.AP, u.Stamina, seen)
	}
}

// MapDump returns the dump of g as a string
func MapDump(g *state.Game) string {
	var b strings.Builder
	WriteMapDump(&b, g)
	return b.String()
}

// DumpMapToFile writes the dump of g to map.txt in dir and returns its path
func DumpMapToFile(g *state.Game, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteMapDump(f, g)
	return absPath, nil
}

// CopyToClipboard puts s on the system clipboard
func CopyToClipboard(s string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
