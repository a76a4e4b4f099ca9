package devtools

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spence/pkg/engine/world"
	"spence/pkg/game/renderer"
	"spence/pkg/game/state"
	"spence/pkg/game/unit"
)

func newDumpGame(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame(world.NewTerrain(world.P(4, 3)))
	g.Terrain.SetWall(world.P3(1, 1, 0), world.East, world.WallCover)
	if _, err := g.CreateUnit(unit.Vanguard, unit.SideYou, world.P3(0, 1, 0)); err != nil {
		t.Fatalf("CreateUnit failed: %v", err)
	}
	if err := g.InitTurn(unit.SideYou); err != nil {
		t.Fatalf("InitTurn failed: %v", err)
	}
	return g
}

func TestMapDump(t *testing.T) {
	g := newDumpGame(t)
	out := MapDump(g)

	for _, want := range []string{
		"width: 4",
		"selected: Vanguard",
		"Vanguard: type=Vanguard side=you pos=(0,1,0)",
		g.Terrain.String(),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump does not contain %q:\n%s", want, out)
		}
	}
}

func TestMapDumpTerrainLoadsBack(t *testing.T) {
	g := newDumpGame(t)
	parsed, err := world.ParseTerrain(g.Terrain.String())
	if err != nil {
		t.Fatalf("ParseTerrain failed: %v", err)
	}
	if got := parsed.GetWall(world.P3(1, 1, 0), world.East); got != world.WallCover {
		t.Errorf("wall after reload = %v, want cover", got)
	}
}

func TestDumpMapToFile(t *testing.T) {
	g := newDumpGame(t)
	path, err := DumpMapToFile(g, t.TempDir())
	if err != nil {
		t.Fatalf("DumpMapToFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if string(data) != MapDump(g) {
		t.Error("file contents differ from MapDump")
	}
}

func TestRenderImage(t *testing.T) {
	g := newDumpGame(t)
	s := renderer.BuildScene(g, renderer.View{Cursor: world.P3(3, 1, 0)})

	img := RenderImage(s, 1)
	if b := img.Bounds(); b.Dx() != 4*cellPixels || b.Dy() != 3*cellPixels {
		t.Fatalf("image size %v, want %dx%d", b, 4*cellPixels, 3*cellPixels)
	}
	// centre of the unit's cell
	if got := img.RGBAAt(cellPixels/2, cellPixels+cellPixels/2); got != pngYou {
		t.Errorf("unit pixel = %v, want %v", got, pngYou)
	}
	// east edge of (1,1) carries cover
	if got := img.RGBAAt(2*cellPixels-1, cellPixels+cellPixels/2); got != pngCover {
		t.Errorf("cover pixel = %v, want %v", got, pngCover)
	}

	scaled := RenderImage(s, 3)
	if scaled.Bounds().Dx() != 3*img.Bounds().Dx() {
		t.Errorf("scaled width %d, want %d", scaled.Bounds().Dx(), 3*img.Bounds().Dx())
	}
	if got := scaled.RGBAAt(3*(cellPixels/2), 3*(cellPixels+cellPixels/2)); got != pngYou {
		t.Errorf("scaled unit pixel = %v, want %v", got, pngYou)
	}
}

func TestSaveScreenshot(t *testing.T) {
	g := newDumpGame(t)
	path, err := SaveScreenshot(renderer.BuildScene(g, renderer.View{}), t.TempDir())
	if err != nil {
		t.Fatalf("SaveScreenshot failed: %v", err)
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("path %q is not a png", path)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 4*cellPixels*4 {
		t.Errorf("width %d, want %d", img.Bounds().Dx(), 4*cellPixels*4)
	}
}
