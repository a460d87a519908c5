package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hhenu/nbody-sim/pkg/physics"
	"github.com/hhenu/nbody-sim/pkg/simulation"
)

const (
	screenWidth  = 1920
	screenHeight = 1000
	trailMaxLife = 120.0 // czas życia śladu w sekundach

	// UI
	uiBtnW   = 100
	uiBtnH   = 28
	uiBtnPad = 12

	// small controls
	smallBtnW = 48
	smallBtnH = 22

	// wykres
	graphW = 360
	graphH = 120

	maxTrailSegments = 600 // maksymalna liczba segmentów śladu na ciało (ograniczenie wydajnościowe)
)

func main() {
	envName := flag.String("env", "solar", "Wybór środowiska (np. solar, binary, chaos)")
	brute := flag.Bool("brute", false, "Sumowanie sił wprost O(N²) zamiast drzewa Barnes-Hut")
	limit := flag.Float64("limit", 0, "Próg kryterium akceptacji drzewa (0 = wartość ze środowiska)")
	eps := flag.Float64("eps", 0, "Softening Plummera (0 = wartość ze środowiska)")
	flag.Parse()
	configPath := filepath.Join("pkg/assets", fmt.Sprintf("%s.json", *envName))

	sim, err := simulation.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Błąd wczytywania środowiska: %v", err)
	}
	sim.Brute = *brute
	if *limit > 0 {
		sim.Limit = *limit
	}
	if *eps > 0 {
		sim.Eps = *eps
	}

	lastPos := make([]physics.Vec2, len(sim.Bodies))
	trails := make([][]TrailSegment, len(sim.Bodies))
	for i := range sim.Bodies {
		lastPos[i] = sim.Bodies[i].Pos
		trails[i] = []TrailSegment{}
		if sim.Bodies[i].ColorC == (color.RGBA{}) {
			sim.Bodies[i].ColorC = color.RGBA{200, 200, 255, 255}
		}
	}
	game := &Game{
		sim:               sim,
		trails:            trails,
		lastPos:           lastPos,
		selA:              -1,
		selB:              -1,
		forceHistoryMax:   600,
		shortcutsVisible:  true,
		initialConfigPath: configPath,
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Barnes-Hut N-Body - " + sim.Name)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
