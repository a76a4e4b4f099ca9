package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"spence/pkg/engine/fov"
	"spence/pkg/engine/logger"
	"spence/pkg/engine/path"
	"spence/pkg/engine/world"
	"spence/pkg/game/devtools"
	"spence/pkg/game/gameplay"
	"spence/pkg/game/generator"
	"spence/pkg/game/renderer"
	ebitenrenderer "spence/pkg/game/renderer/ebiten"
	"spence/pkg/game/renderer/tui"
	"spence/pkg/game/state"
	"spence/pkg/game/unit"
)

var log = logger.Component("main")

// parseInts splits a comma or x separated list of integers
func parseInts(s string, sep string) ([]int, error) {
	parts := strings.Split(s, sep)
	out := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad number %q in %q", part, s)
		}
		out[i] = n
	}
	return out, nil
}

// parseSize reads WxH
func parseSize(s string) (world.Pos, error) {
	n, err := parseInts(s, "x")
	if err != nil {
		return world.Pos{}, err
	}
	if len(n) != 2 || n[0] <= 0 || n[1] <= 0 {
		return world.Pos{}, fmt.Errorf("size %q: want WxH", s)
	}
	return world.P(n[0], n[1]), nil
}

// parsePos reads x,y[,z]. Without z the top tile of the column is used.
func parsePos(t *world.Terrain, s string) (world.Pos3, error) {
	n, err := parseInts(s, ",")
	if err != nil {
		return world.Pos3{}, err
	}
	switch len(n) {
	case 2:
		p := world.P(n[0], n[1])
		return p.At(t.Depth(p) - 1), nil
	case 3:
		return world.P3(n[0], n[1], n[2]), nil
	}
	return world.Pos3{}, fmt.Errorf("position %q: want x,y[,z]", s)
}

// loadTerrain reads the map file, or generates one when no file is given
func loadTerrain(file, genName, size string, seed int64) (*world.Terrain, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		t, err := world.ParseTerrain(string(b))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return t, nil
	}

	gen, ok := generator.ByName(genName)
	if !ok {
		return nil, fmt.Errorf("unknown generator %q", genName)
	}
	dim, err := parseSize(size)
	if err != nil {
		return nil, err
	}
	log.WithField("generator", gen.Name()).WithField("seed", seed).Debug("generating map")
	return gen.Generate(generator.NewRand(seed), dim), nil
}

func main() {
	mapFile := flag.String("map", "", "text map file to load (default: generate one)")
	seed := flag.Int64("seed", 1, "generator seed")
	size := flag.String("size", "50x50", "generated map size, WxH")
	genName := flag.String("gen", generator.DefaultGenerator.Name(), "map generator: rect, bsp or walker")
	from := flag.String("from", "", "origin x,y[,z] (default: map centre)")
	radius := flag.Int("radius", unit.SightRadius, "sight radius")
	budget := flag.Float64("budget", 9, "movement budget")
	segments := flag.Int("segments", 3, "number of movement tiers")
	to := flag.String("to", "", "route destination x,y[,z]")
	gui := flag.Bool("gui", false, "play a skirmish in the graphical viewer")
	play := flag.Bool("play", false, "play a skirmish in the terminal")
	pngFile := flag.String("png", "", "write the rendered map to this PNG file")
	copyDump := flag.Bool("copy", false, "copy the map dump to the clipboard")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	logger.SetVerbose(*verbose)

	t, err := loadTerrain(*mapFile, *genName, *size, *seed)
	if err != nil {
		log.Fatalf("cannot load map: %v", err)
	}

	if *gui || *play {
		g, err := gameplay.NewSkirmish(t, gameplay.DefaultRoster)
		if err != nil {
			log.Fatalf("cannot set up skirmish: %v", err)
		}
		g.SightRadius = *radius
		g.RefreshVisibility()
		s := gameplay.NewSession(g)
		if *gui {
			runGUI(s)
		} else {
			r := tui.New()
			renderer.SetRenderer(r)
			renderer.Init()
			gameplay.Run(s, r)
		}
		return
	}

	analyse(t, *from, *to, *radius, *budget, *segments, *pngFile, *copyDump)
}

// runGUI runs the game loop on its own goroutine; ebiten needs the main one
func runGUI(s *gameplay.Session) {
	e := ebitenrenderer.New()
	renderer.SetRenderer(e)
	e.Init()

	go func() {
		gameplay.Run(s, e)
		e.Quit()
	}()

	if err := e.Run(); err != nil {
		log.Fatalf("viewer failed: %v", err)
	}
}

// analyse prints the field of view and movement tiers seen from one cell
func analyse(t *world.Terrain, from, to string, radius int, budget float64, segments int, pngFile string, copyDump bool) {
	centre := world.P(t.Size().X/2, t.Size().Y/2)
	origin := centre.At(t.Depth(centre) - 1)
	if from != "" {
		p, err := parsePos(t, from)
		if err != nil {
			log.Fatalf("bad -from: %v", err)
		}
		origin = p
	}
	dest := origin
	if to != "" {
		p, err := parsePos(t, to)
		if err != nil {
			log.Fatalf("bad -to: %v", err)
		}
		dest = p
	}

	g := state.NewGame(t)
	g.SightRadius = radius
	u, err := g.CreateUnit(unit.Vanguard, unit.SideYou, origin)
	if err != nil {
		log.Fatalf("cannot place origin: %v", err)
	}
	pm, err := path.Calc(t, origin, budget, g.Model, segments)
	if err != nil {
		log.Fatalf("cannot compute tiers: %v", err)
	}
	g.Turn = unit.SideYou
	g.Selected = u
	g.PathMap = pm

	r := tui.New()
	r.Init()
	scene := renderer.BuildScene(g, renderer.View{Cursor: dest})
	fmt.Print(r.Render(scene))

	field := fov.Calc(t, origin, radius)
	fmt.Printf("Visible cells: %d\n", field.Count())
	fmt.Printf("Reachable cells: %d\n", len(pm.Reachable()))

	if pngFile != "" {
		if err := devtools.SavePNG(scene, pngFile, 4); err != nil {
			log.Fatalf("cannot write %s: %v", pngFile, err)
		}
		fmt.Printf("Wrote %s\n", pngFile)
	}
	if copyDump {
		if err := devtools.CopyToClipboard(devtools.MapDump(g)); err != nil {
			log.Fatalf("cannot copy map dump: %v", err)
		}
	}
}
