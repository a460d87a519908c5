package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hhenu/nbody-sim/pkg/physics"
	"github.com/hhenu/nbody-sim/pkg/simulation"
)

// TrailSegment ---
type TrailSegment struct {
	X0, Y0, X1, Y1 float64
	Life           float64
	Color          color.RGBA
}

// Game ---
type Game struct {
	sim     *simulation.Simulator
	trails  [][]TrailSegment
	lastPos []physics.Vec2
	paused  bool

	selA int
	selB int

	showComponents  bool
	forceHistory    []float64
	forceHistoryMax int

	// historie komponentów siły
	fxHistory []float64
	fyHistory []float64

	// podgląd podziału przestrzeni - rysowanie granic węzłów drzewa
	showTree bool

	// Add mode: narzędzie dodawania nowych ciał
	addMode   bool    // czy jesteśmy w trybie dodawania
	addLocked bool    // czy nowe ciało będzie zablokowane
	addAnti   bool    // czy nowe ciało będzie anty-grawitacyjne
	addMass   float64 // domyślna masa nowego ciała
	addRadius float64 // domyślny promień nowego ciała

	// widoczność panelu skrótów
	shortcutsVisible bool

	// ścieżka do oryginalnego pliku konfiguracyjnego (do resetu)
	initialConfigPath string

	// czy modal potwierdzenia resetu jest otwarty
	resetModalOpen bool
}

// uiLayout trzyma wyliczone pozycje przycisków - ta sama geometria jest
// potrzebna i przy rysowaniu, i przy obsłudze kliknięć
type uiLayout struct {
	pauseX, stepX, quitX, compX, resetX, treeX, addX int
	btnY                                             int
	massPlusX, massMinusX, radPlusX, radMinusX       int
	smallY                                           int
}

func buttonLayout() uiLayout {
	l := uiLayout{btnY: uiBtnPad}
	l.pauseX = screenWidth - uiBtnPad - uiBtnW
	l.stepX = l.pauseX - uiBtnPad - uiBtnW
	l.quitX = l.stepX - uiBtnPad - uiBtnW
	l.compX = l.quitX - uiBtnPad - uiBtnW
	l.resetX = l.compX - uiBtnPad - uiBtnW
	l.treeX = l.resetX - uiBtnPad - uiBtnW
	l.addX = l.treeX - uiBtnPad - uiBtnW
	l.smallY = l.btnY + (uiBtnH-smallBtnH)/2
	l.massPlusX = l.addX - uiBtnPad - smallBtnW
	l.massMinusX = l.massPlusX - uiBtnPad - smallBtnW
	l.radPlusX = l.massMinusX - uiBtnPad - smallBtnW
	l.radMinusX = l.radPlusX - uiBtnPad - smallBtnW
	return l
}

// Update ---
func (g *Game) Update() error {
	// klawisze
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.paused && !g.resetModalOpen {
		g.advanceOneStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.showTree = !g.showTree
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.sim.Brute = !g.sim.Brute
	}

	// Toggle shortcuts visibility
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.shortcutsVisible = !g.shortcutsVisible
	}

	// przełączniki w trybie Add (L - locked, V - anti)
	if g.addMode {
		if inpututil.IsKeyJustPressed(ebiten.KeyL) {
			g.addLocked = !g.addLocked
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyV) {
			g.addAnti = !g.addAnti
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyK) {
			g.addMass *= 1.1
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyJ) {
			g.addMass *= 0.9
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.addRadius *= 1.1
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyT) {
			g.addRadius *= 0.9
		}
	} else {
		// gdy nie w trybie add: togglowanie Locked/Anti dla wybranego ciała (selA)
		if inpututil.IsKeyJustPressed(ebiten.KeyL) && g.selA != -1 {
			g.sim.Bodies[g.selA].Locked = !g.sim.Bodies[g.selA].Locked
			if g.sim.Bodies[g.selA].Locked {
				g.sim.Bodies[g.selA].ColorC = color.RGBA{200, 200, 200, 255}
			} else {
				g.sim.Bodies[g.selA].ColorC = color.RGBA{200, 200, 255, 255}
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyV) && g.selA != -1 {
			g.sim.Bodies[g.selA].Anti = !g.sim.Bodies[g.selA].Anti
			if g.sim.Bodies[g.selA].Anti {
				g.sim.Bodies[g.selA].ColorC = color.RGBA{255, 120, 120, 255}
			} else {
				g.sim.Bodies[g.selA].ColorC = color.RGBA{200, 200, 255, 255}
			}
		}
		// klawisze do zmiany masy/promienia dla selA
		if g.selA != -1 {
			if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyK) {
				g.sim.Bodies[g.selA].Mass *= 1.1
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyJ) {
				g.sim.Bodies[g.selA].Mass *= 0.9
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyR) {
				g.sim.Bodies[g.selA].Radius *= 1.1
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyT) {
				g.sim.Bodies[g.selA].Radius *= 0.9
			}
		}
	}

	// klawiszowa obsluga modalu
	if g.resetModalOpen {
		if inpututil.IsKeyJustPressed(ebiten.KeyY) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := g.resetSimulation(); err != nil {
				log.Printf("Reset failed: %v", err)
			}
			return nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.resetModalOpen = false
			return nil
		}
	}

	// UI kliknięcia
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if done := g.handleClick(); done {
			return nil
		}
	}

	if g.paused {
		return nil
	}

	g.advanceOneStep()
	return nil
}

// handleClick obsługuje pojedyncze kliknięcie; zwraca true gdy kliknięcie
// zostało skonsumowane przez UI
func (g *Game) handleClick() bool {
	mx, my := ebiten.CursorPosition()
	l := buttonLayout()

	// Jeśli modal potwierdzenia jest otwarty: obsłuż tylko modal
	if g.resetModalOpen {
		mw := 360
		mh := 120
		mx0 := (screenWidth - mw) / 2
		my0 := (screenHeight - mh) / 2
		yesX := mx0 + 40
		yesY := my0 + mh - 44
		noX := mx0 + mw - 40 - uiBtnW
		if pointInRect(mx, my, yesX, yesY, uiBtnW, uiBtnH) {
			if err := g.resetSimulation(); err != nil {
				log.Printf("Reset failed: %v", err)
			}
			return true
		}
		if pointInRect(mx, my, noX, yesY, uiBtnW, uiBtnH) {
			g.resetModalOpen = false
			return true
		}
		// klik poza modal zamyka modal
		g.resetModalOpen = false
		return true
	}

	// small buttons (działają tylko gdy jest zaznaczone selA)
	if pointInRect(mx, my, l.massPlusX, l.smallY, smallBtnW, smallBtnH) && g.selA != -1 {
		g.sim.Bodies[g.selA].Mass *= 1.1
		return true
	}
	if pointInRect(mx, my, l.massMinusX, l.smallY, smallBtnW, smallBtnH) && g.selA != -1 {
		g.sim.Bodies[g.selA].Mass *= 0.9
		return true
	}
	if pointInRect(mx, my, l.radPlusX, l.smallY, smallBtnW, smallBtnH) && g.selA != -1 {
		g.sim.Bodies[g.selA].Radius *= 1.1
		return true
	}
	if pointInRect(mx, my, l.radMinusX, l.smallY, smallBtnW, smallBtnH) && g.selA != -1 {
		g.sim.Bodies[g.selA].Radius *= 0.9
		return true
	}

	// obsłuż UI (Add/Tree/Reset/Comp/Quit/Step/Pause)
	if pointInRect(mx, my, l.addX, l.btnY, uiBtnW, uiBtnH) {
		g.addMode = !g.addMode
		if g.addMode {
			g.addMass = 100.0
			g.addRadius = 8.0
			g.addLocked = false
			g.addAnti = false
		}
		return true
	}
	if pointInRect(mx, my, l.treeX, l.btnY, uiBtnW, uiBtnH) {
		g.showTree = !g.showTree
		return true
	}
	if pointInRect(mx, my, l.compX, l.btnY, uiBtnW, uiBtnH) {
		if g.selA != -1 && g.selB != -1 {
			g.showComponents = !g.showComponents
		}
		return true
	}
	if pointInRect(mx, my, l.resetX, l.btnY, uiBtnW, uiBtnH) {
		// otworz modal potwierdzenia resetu
		g.resetModalOpen = true
		return true
	}
	if pointInRect(mx, my, l.quitX, l.btnY, uiBtnW, uiBtnH) {
		os.Exit(0)
		return true
	}
	if pointInRect(mx, my, l.stepX, l.btnY, uiBtnW, uiBtnH) {
		if g.paused {
			g.advanceOneStep()
		}
		return true
	}
	if pointInRect(mx, my, l.pauseX, l.btnY, uiBtnW, uiBtnH) {
		g.paused = !g.paused
		return true
	}

	// kliknięcie poza UI
	// jeśli jesteśmy w trybie add -> dodaj ciało w miejscu kursora
	if g.addMode {
		pos := physics.Vec2{X: float64(mx) - float64(screenWidth)/2, Y: float64(my) - float64(screenHeight)/2}
		nb := physics.Body{
			Mass:   g.addMass,
			Pos:    pos,
			Radius: g.addRadius,
			ColorC: color.RGBA{200, 200, 255, 255},
			Locked: g.addLocked,
			Anti:   g.addAnti,
		}
		// kolor zależnie od flag
		if nb.Anti {
			nb.ColorC = color.RGBA{255, 120, 120, 255}
		} else if nb.Locked {
			nb.ColorC = color.RGBA{200, 200, 200, 255}
		}
		// dodaj do symulacji i pomocniczych tablic; zostajemy w trybie
		// add aby móc dodać kolejne
		g.sim.Bodies = append(g.sim.Bodies, nb)
		g.lastPos = append(g.lastPos, nb.Pos)
		g.trails = append(g.trails, []TrailSegment{})
		return true
	}

	// normalne kliknięcie wyboru ciała
	mouse := physics.Vec2{X: float64(mx) - float64(screenWidth)/2, Y: float64(my) - float64(screenHeight)/2}
	clicked := -1
	minD := 1e18
	for i := range g.sim.Bodies {
		b := &g.sim.Bodies[i]
		d := b.Pos.Sub(mouse).Len()
		if d <= b.Radius && d < minD {
			clicked = i
			minD = d
		}
	}
	if clicked >= 0 {
		prevA, prevB := g.selA, g.selB
		if g.selA == -1 {
			g.selA = clicked
		} else if g.selB == -1 {
			if clicked == g.selA {
				g.selA = -1
			} else {
				g.selB = clicked
			}
		} else {
			if clicked == g.selA {
				g.selA = -1
				g.selB = -1
			} else if clicked == g.selB {
				g.selB = -1
			} else {
				g.selA = clicked
				g.selB = -1
			}
		}
		if g.selA != prevA || g.selB != prevB {
			g.forceHistory = nil
			g.fxHistory = nil
			g.fyHistory = nil
		}
	}
	return false
}

// advanceOneStep ---
func (g *Game) advanceOneStep() {
	g.sim.Update()
	// jeśli zaznaczone 2 ciała, oblicz siłę
	if g.selA != -1 && g.selB != -1 {
		b1 := g.sim.Bodies[g.selA]
		b2 := g.sim.Bodies[g.selB]
		F, Fx, Fy := pairForce(b1, b2, g.sim.Eps)
		g.forceHistory = append(g.forceHistory, F)
		g.fxHistory = append(g.fxHistory, Fx)
		g.fyHistory = append(g.fyHistory, Fy)
		if g.forceHistoryMax == 0 {
			g.forceHistoryMax = 600
		}
		if len(g.forceHistory) > g.forceHistoryMax {
			g.forceHistory = g.forceHistory[len(g.forceHistory)-g.forceHistoryMax:]
		}
		if len(g.fxHistory) > g.forceHistoryMax {
			g.fxHistory = g.fxHistory[len(g.fxHistory)-g.forceHistoryMax:]
		}
		if len(g.fyHistory) > g.forceHistoryMax {
			g.fyHistory = g.fyHistory[len(g.fyHistory)-g.forceHistoryMax:]
		}
	}

	// update śladów
	for i := range g.sim.Bodies {
		b := g.sim.Bodies[i]
		seg := TrailSegment{
			X0:    float64(screenWidth)/2 + g.lastPos[i].X,
			Y0:    float64(screenHeight)/2 + g.lastPos[i].Y,
			X1:    float64(screenWidth)/2 + b.Pos.X,
			Y1:    float64(screenHeight)/2 + b.Pos.Y,
			Life:  trailMaxLife,
			Color: b.ColorC,
		}
		g.trails[i] = append(g.trails[i], seg)
		// ogranicz długość śladu aby nie rysować zbyt wielu segmentów
		if len(g.trails[i]) > maxTrailSegments {
			start := len(g.trails[i]) - maxTrailSegments
			g.trails[i] = g.trails[i][start:]
		}
		g.lastPos[i] = b.Pos
		// trim by life
		newTrail := g.trails[i][:0]
		for j := range g.trails[i] {
			g.trails[i][j].Life -= g.sim.Dt
			if g.trails[i][j].Life > 0 {
				newTrail = append(newTrail, g.trails[i][j])
			}
		}
		g.trails[i] = newTrail
	}
}

// pairForce liczy siłę między parą ciał tym samym zmiękczonym prawem,
// którego używa drzewo; zwraca wartość i komponenty
func pairForce(b1, b2 physics.Body, eps float64) (F, Fx, Fy float64) {
	dx := b2.Pos.X - b1.Pos.X
	dy := b2.Pos.Y - b1.Pos.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0, 0
	}
	F = physics.G * b1.Mass * b2.Mass * d / math.Pow(d*d+eps*eps, 1.5)
	Fx = F * dx / d
	Fy = F * dy / d
	return F, Fx, Fy
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// resetSimulation przeładowuje konfigurację z initialConfigPath i resetuje stan gry
func (g *Game) resetSimulation() error {
	if g.initialConfigPath == "" {
		return fmt.Errorf("no initial config path set")
	}
	brute := g.sim.Brute
	sim, err := simulation.LoadConfig(g.initialConfigPath)
	if err != nil {
		return err
	}
	g.sim = sim
	g.sim.Brute = brute
	// reinit helper arrays
	g.lastPos = make([]physics.Vec2, len(g.sim.Bodies))
	g.trails = make([][]TrailSegment, len(g.sim.Bodies))
	for i := range g.sim.Bodies {
		g.lastPos[i] = g.sim.Bodies[i].Pos
		g.trails[i] = []TrailSegment{}
		if g.sim.Bodies[i].ColorC == (color.RGBA{}) {
			g.sim.Bodies[i].ColorC = color.RGBA{200, 200, 255, 255}
		}
	}
	// clear selections and histories
	g.selA = -1
	g.selB = -1
	g.forceHistory = nil
	g.fxHistory = nil
	g.fyHistory = nil
	// close modal and reset modes
	g.addMode = false
	g.resetModalOpen = false
	g.paused = false
	return nil
}

func pointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px <= rx+rw && py >= ry && py <= ry+rh
}
