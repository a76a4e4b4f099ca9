package devtools

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"

	"spence/pkg/engine/world"
	"spence/pkg/game/renderer"
	"spence/pkg/game/unit"
)

// cellPixels is the size of one cell in the unscaled image
const cellPixels = 8

var (
	pngBackground = color.RGBA{15, 15, 26, 255}
	pngHole       = color.RGBA{8, 8, 14, 255}
	pngFloor      = color.RGBA{70, 70, 90, 255}
	pngFog        = color.RGBA{30, 30, 40, 255}
	pngWall       = color.RGBA{220, 220, 235, 255}
	pngCover      = color.RGBA{230, 190, 80, 255}
	pngClimbable  = color.RGBA{90, 210, 220, 255}
	pngRoute      = color.RGBA{220, 120, 255, 255}
	pngCursor     = color.RGBA{255, 255, 255, 255}
	pngYou        = color.RGBA{0, 255, 0, 255}
	pngEnemy      = color.RGBA{255, 90, 90, 255}
	pngTiers      = []color.RGBA{{40, 80, 150, 255}, {40, 120, 130, 255}, {70, 70, 140, 255}}
)

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func pngWallColor(w world.Wall) (color.RGBA, bool) {
	switch w {
	case world.WallBlocking:
		return pngWall, true
	case world.WallCover:
		return pngCover, true
	case world.WallClimbable:
		return pngClimbable, true
	default:
		return color.RGBA{}, false
	}
}

// RenderImage draws a scene at cellPixels per cell and scales it by scale
func RenderImage(s *renderer.Scene, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Size.X*cellPixels, s.Size.Y*cellPixels))
	fill(img, img.Bounds(), pngBackground)

	s.Cells.ForEach(func(p world.Pos, c renderer.Cell) {
		r := image.Rect(p.X*cellPixels, p.Y*cellPixels, (p.X+1)*cellPixels, (p.Y+1)*cellPixels)
		inner := r.Inset(1)

		switch {
		case !c.Seen:
			fill(img, inner, pngFog)
			return
		case !c.Tile:
			fill(img, inner, pngHole)
		case c.Tier >= 0:
			fill(img, inner, pngTiers[min(c.Tier, len(pngTiers)-1)])
		default:
			fill(img, inner, pngFloor)
		}

		switch {
		case c.Unit != nil && c.Unit.Side == unit.SideEnemy:
			fill(img, r.Inset(2), pngEnemy)
		case c.Unit != nil:
			fill(img, r.Inset(2), pngYou)
		case c.Cursor:
			fill(img, r.Inset(3), pngCursor)
		case c.Route:
			fill(img, r.Inset(3), pngRoute)
		}

		edges := map[world.Direction]image.Rectangle{
			world.North: image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
			world.South: image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
			world.West:  image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
			world.East:  image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
		}
		for _, d := range world.AllDirections() {
			if col, ok := pngWallColor(c.Walls[d]); ok {
				fill(img, edges[d], col)
			}
		}
	})

	if scale <= 1 {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx()*scale, img.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

// SavePNG writes the scene as a PNG image to path
func SavePNG(s *renderer.Scene, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, RenderImage(s, scale)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// SaveScreenshot writes the scene to a timestamped PNG in dir and returns its path
func SaveScreenshot(s *renderer.Scene, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.png", timestamp))
	if err := SavePNG(s, filename, 4); err != nil {
		return "", err
	}
	return filename, nil
}
