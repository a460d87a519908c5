package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"golang.org/x/image/font/basicfont"

	"github.com/hhenu/nbody-sim/pkg/physics"
	"github.com/hhenu/nbody-sim/pkg/quadtree"
)

// helpers for Wu
func ipart(x float64) int      { return int(math.Floor(x)) }
func fpart(x float64) float64  { return x - math.Floor(x) }
func rfpart(x float64) float64 { return 1 - fpart(x) }

// blend src color onto dst with alpha a in [0,1]
func blendPixel(img *ebiten.Image, px, py int, src color.RGBA, a float64) {
	if px < 0 || py < 0 || px >= screenWidth || py >= screenHeight {
		return
	}
	c := img.At(px, py)
	d := color.RGBAModel.Convert(c).(color.RGBA)
	sa := float64(src.A) / 255.0 * a
	da := float64(d.A) / 255.0
	outA := sa + da*(1-sa)
	if outA <= 0 {
		img.Set(px, py, color.RGBA{0, 0, 0, 0})
		return
	}
	sr := float64(src.R) / 255.0 * sa
	sg := float64(src.G) / 255.0 * sa
	sb := float64(src.B) / 255.0 * sa
	dr := float64(d.R) / 255.0 * da
	dg := float64(d.G) / 255.0 * da
	db := float64(d.B) / 255.0 * da
	or := (sr + dr*(1-sa)) / outA
	og := (sg + dg*(1-sa)) / outA
	ob := (sb + db*(1-sa)) / outA
	out := color.RGBA{uint8(math.Round(or * 255)), uint8(math.Round(og * 255)), uint8(math.Round(ob * 255)), uint8(math.Round(outA * 255))}
	img.Set(px, py, out)
}

// drawWuLine implements Xiaolin Wu anti-aliased line algorithm
func drawWuLine(img *ebiten.Image, x0, y0, x1, y1 float64, clr color.RGBA) {
	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y1 - y0
	grad := 1.0
	if dx != 0 {
		grad = dy / dx
	}

	// handle first endpoint
	xend := float64(ipart(x0))
	yend := y0 + grad*(xend-x0)
	xgap := rfpart(x0 + 0.5)
	xpxl1 := int(xend)
	ypxl1 := ipart(yend)
	if steep {
		blendPixel(img, ypxl1, xpxl1, clr, rfpart(yend)*xgap)
		blendPixel(img, ypxl1+1, xpxl1, clr, fpart(yend)*xgap)
	} else {
		blendPixel(img, xpxl1, ypxl1, clr, rfpart(yend)*xgap)
		blendPixel(img, xpxl1, ypxl1+1, clr, fpart(yend)*xgap)
	}
	intery := yend + grad

	// handle second endpoint
	xend = float64(ipart(x1))
	yend = y1 + grad*(xend-x1)
	xgap = fpart(x1 + 0.5)
	xpxl2 := int(xend)
	ypxl2 := ipart(yend)
	if steep {
		blendPixel(img, ypxl2, xpxl2, clr, rfpart(yend)*xgap)
		blendPixel(img, ypxl2+1, xpxl2, clr, fpart(yend)*xgap)
	} else {
		blendPixel(img, xpxl2, ypxl2, clr, rfpart(yend)*xgap)
		blendPixel(img, xpxl2, ypxl2+1, clr, fpart(yend)*xgap)
	}

	// main loop
	if steep {
		for x := xpxl1 + 1; x <= xpxl2-1; x++ {
			y := intery
			blendPixel(img, ipart(y), x, clr, rfpart(y))
			blendPixel(img, ipart(y)+1, x, clr, fpart(y))
			intery += grad
		}
	} else {
		for x := xpxl1 + 1; x <= xpxl2-1; x++ {
			y := intery
			blendPixel(img, x, ipart(y), clr, rfpart(y))
			blendPixel(img, x, ipart(y)+1, clr, fpart(y))
			intery += grad
		}
	}
}

// drawFilledTriangle rasterizes and fills triangle using barycentric coordinates
func drawFilledTriangle(img *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, clr color.RGBA) {
	minx := int(math.Floor(math.Min(x0, math.Min(x1, x2))))
	maxx := int(math.Ceil(math.Max(x0, math.Max(x1, x2))))
	miny := int(math.Floor(math.Min(y0, math.Min(y1, y2))))
	maxy := int(math.Ceil(math.Max(y0, math.Max(y1, y2))))
	// clip to screen
	if minx < 0 {
		minx = 0
	}
	if miny < 0 {
		miny = 0
	}
	if maxx >= screenWidth {
		maxx = screenWidth - 1
	}
	if maxy >= screenHeight {
		maxy = screenHeight - 1
	}
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det == 0 {
		return
	}
	for y := miny; y <= maxy; y++ {
		for x := minx; x <= maxx; x++ {
			// barycentric
			l1 := ((y1-y2)*(float64(x)-x2) + (x2-x1)*(float64(y)-y2)) / det
			l2 := ((y2-y0)*(float64(x)-x2) + (x0-x2)*(float64(y)-y2)) / det
			l3 := 1 - l1 - l2
			if l1 >= 0 && l2 >= 0 && l3 >= 0 {
				img.Set(x, y, clr)
			}
		}
	}
}

func drawSmoothSegment(screen *ebiten.Image, x0, y0, x1, y1 float64, clr color.RGBA) {
	drawWuLine(screen, x0, y0, x1, y1, clr)
}

func drawSmoothArrow(screen *ebiten.Image, x0, y0, x1, y1 float64, clr color.RGBA) {
	drawWuLine(screen, x0, y0, x1, y1, clr)
	// draw filled triangular head
	dx := x1 - x0
	dy := y1 - y0
	d := math.Hypot(dx, dy)
	if d == 0 {
		return
	}
	ux := dx / d
	uy := dy / d
	sz := 10.0
	px := -uy
	py := ux
	p1x := x1 - ux*sz + px*(sz*0.6)
	p1y := y1 - uy*sz + py*(sz*0.6)
	p2x := x1 - ux*sz - px*(sz*0.6)
	p2y := y1 - uy*sz - py*(sz*0.6)
	drawFilledTriangle(screen, x1, y1, p1x, p1y, p2x, p2y, clr)
}

// drawLine - prosty Bresenham do rysowania linii (używany do wykresów/siatki drzewa)
func drawLine(img *ebiten.Image, x0, y0, x1, y1 float64, clr color.RGBA) {
	ix0 := int(math.Round(x0))
	iy0 := int(math.Round(y0))
	ix1 := int(math.Round(x1))
	iy1 := int(math.Round(y1))
	dx := int(math.Abs(float64(ix1 - ix0)))
	sx := 1
	if ix0 >= ix1 {
		sx = -1
	}
	dy := -int(math.Abs(float64(iy1 - iy0)))
	sy := 1
	if iy0 >= iy1 {
		sy = -1
	}
	err := dx + dy
	for {
		if ix0 >= 0 && iy0 >= 0 && ix0 < screenWidth && iy0 < screenHeight {
			img.Set(ix0, iy0, clr)
		}
		if ix0 == ix1 && iy0 == iy1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ix0 += sx
		}
		if e2 <= dx {
			err += dx
			iy0 += sy
		}
	}
}

// drawCircle - wypełnione koło (prostą metodą) - wystarczające dla małych promieni
func drawCircle(screen *ebiten.Image, cx, cy, r float64, clr color.RGBA) {
	ir := int(math.Ceil(r))
	rr := r * r
	for dy := -ir; dy <= ir; dy++ {
		y := int(math.Round(cy)) + dy
		if y < 0 || y >= screenHeight {
			continue
		}
		xspan := math.Sqrt(math.Max(0, rr-float64(dy*dy)))
		xmin := int(math.Round(cx - xspan))
		xmax := int(math.Round(cx + xspan))
		if xmin < 0 {
			xmin = 0
		}
		if xmax >= screenWidth {
			xmax = screenWidth - 1
		}
		for x := xmin; x <= xmax; x++ {
			screen.Set(x, y, clr)
		}
	}
}

// drawTreeOverlay rysuje granice węzłów drzewa czwórkowego z ostatniego
// kroku. Węzeł o środku Pos i wymiarach W x H obejmuje obszar Pos ± (W, H) -
// dzieci leżą w Pos ± (W/2, H/2) i sięgają do krawędzi rodzica.
func drawTreeOverlay(screen *ebiten.Image, node *quadtree.Node, clr color.RGBA) {
	if node == nil {
		return
	}
	cx := float64(screenWidth)/2 + node.Pos.X
	cy := float64(screenHeight)/2 + node.Pos.Y
	x0 := cx - node.W
	x1 := cx + node.W
	y0 := cy - node.H
	y1 := cy + node.H
	// pomiń prostokąty całkowicie poza ekranem
	if x1 >= 0 && x0 < screenWidth && y1 >= 0 && y0 < screenHeight {
		drawLine(screen, x0, y0, x1, y0, clr)
		drawLine(screen, x1, y0, x1, y1, clr)
		drawLine(screen, x1, y1, x0, y1, clr)
		drawLine(screen, x0, y1, x0, y0, clr)
	}
	for _, child := range node.Children {
		drawTreeOverlay(screen, child, clr)
	}
}

// drawForceGraph rysuje wykres z autoskalowaniem Y i etykietą (w prostszej formie)
func drawForceGraph(screen *ebiten.Image, data []float64, x, y, w, h int, lineColor color.RGBA, title string) {
	// tło
	bg := ebiten.NewImage(w, h)
	bg.Fill(color.RGBA{8, 8, 16, 200})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(bg, op)

	// border
	border := ebiten.NewImage(w-2, h-2)
	border.Fill(color.RGBA{30, 30, 40, 80})
	op2 := &ebiten.DrawImageOptions{}
	op2.GeoM.Translate(float64(x+1), float64(y+1))
	screen.DrawImage(border, op2)

	if title != "" {
		text.Draw(screen, title, basicfont.Face7x13, x+6, y+14, color.RGBA{220, 220, 220, 200})
	}

	if len(data) == 0 {
		return
	}

	minV := data[0]
	maxV := data[0]
	for _, v := range data {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	// symetryczne wokol zera gdy mamy ujemne i dodatnie
	if minV < 0 && maxV > 0 {
		b := math.Max(math.Abs(minV), math.Abs(maxV))
		minV = -b
		maxV = b
	}
	if minV == maxV {
		maxV = maxV + 1.0
		minV = minV - 1.0
	} else {
		pad := 0.05 * (maxV - minV)
		maxV += pad
		minV -= pad
	}

	padding := 6
	gw := float64(w - padding*2)
	gh := float64(h - padding*2)
	// rysuj siatkę
	for i := 0; i <= 4; i++ {
		yy := float64(y+padding) + gh*float64(i)/4.0
		drawLine(screen, float64(x+padding), yy, float64(x+w-padding), yy, color.RGBA{40, 40, 60, 120})
	}
	// linia zero
	if minV <= 0 && maxV >= 0 {
		t := (0 - minV) / (maxV - minV)
		zy := float64(y+padding) + gh*(1.0-t)
		drawLine(screen, float64(x+padding), zy, float64(x+w-padding), zy, color.RGBA{150, 150, 150, 140})
	}

	// rysuj dane
	n := len(data)
	if n >= 2 {
		stepX := gw / float64(n-1)
		var px, py float64
		for i, v := range data {
			nx := float64(x+padding) + stepX*float64(i)
			t := (v - minV) / (maxV - minV)
			ny := float64(y+padding) + gh*(1.0-t)
			if i > 0 {
				drawLine(screen, px, py, nx, ny, lineColor)
			}
			px = nx
			py = ny
		}
	}
	lbl := fmt.Sprintf("%.3e..%.3e", minV, maxV)
	text.Draw(screen, lbl, basicfont.Face7x13, x+6, y+h-6, color.RGBA{180, 180, 200, 180})
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	// siatka drzewa pod wszystkim innym
	if g.showTree && g.sim.Tree != nil {
		drawTreeOverlay(screen, g.sim.Tree.Root, color.RGBA{60, 80, 60, 120})
	}

	// trails
	margin := 64
	for _, trail := range g.trails {
		for _, s := range trail {
			// pomiń segmenty całkowicie poza widocznym obszarem (z marginesem)
			if (int(s.X0) < -margin && int(s.X1) < -margin) || (int(s.X0) > screenWidth+margin && int(s.X1) > screenWidth+margin) || (int(s.Y0) < -margin && int(s.Y1) < -margin) || (int(s.Y0) > screenHeight+margin && int(s.Y1) > screenHeight+margin) {
				continue
			}
			drawSmoothSegment(screen, s.X0, s.Y0, s.X1, s.Y1, s.Color)
		}
	}
	// bodies
	for i := range g.sim.Bodies {
		b := g.sim.Bodies[i]
		x := float64(screenWidth)/2 + b.Pos.X
		y := float64(screenHeight)/2 + b.Pos.Y
		drawCircle(screen, x, y, b.Radius, b.ColorC)
		if i == g.selA || i == g.selB {
			drawCircle(screen, x, y, b.Radius+3, color.RGBA{255, 255, 255, 180})
		}
		// ikony Locked / Anti - małe symbole obok ciała
		iconX := x + b.Radius + 6
		iconY := y - b.Radius - 6
		if b.Locked {
			// rysuj prostą kłódkę: mały prostokąt z uchwytem
			lockW, lockH := 12.0, 8.0
			for yy := 0; yy < int(lockH); yy++ {
				for xx := 0; xx < int(lockW); xx++ {
					screen.Set(int(iconX)+xx, int(iconY)+yy, color.RGBA{180, 180, 180, 220})
				}
			}
			drawLine(screen, iconX+2, iconY-4, iconX+lockW-2, iconY-4, color.RGBA{180, 180, 180, 220})
		}
		if b.Anti {
			// rysuj kółko z minusem
			r := 6.0
			drawLine(screen, iconX+20, iconY, iconX+20+r, iconY, color.RGBA{220, 120, 120, 220})
			drawLine(screen, iconX+20-3, iconY, iconX+20+3, iconY, color.RGBA{220, 120, 120, 220})
		}
	}

	// UI
	mode := "Barnes-Hut"
	if g.sim.Brute {
		mode = "Direct O(N^2)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Env: %s\nMode: %s  limit=%.2f  eps=%.0f\nBodies: %d\nPaused: %v",
		g.sim.Name, mode, g.sim.Limit, g.sim.Eps, len(g.sim.Bodies), g.paused))
	drawShortcuts(screen, g)

	l := buttonLayout()
	mx, my := ebiten.CursorPosition()
	compDisabled := !(g.selA != -1 && g.selB != -1)
	drawButton(screen, l.addX, l.btnY, uiBtnW, uiBtnH, "Add", g.addMode, false, pointInRect(mx, my, l.addX, l.btnY, uiBtnW, uiBtnH))
	drawButton(screen, l.treeX, l.btnY, uiBtnW, uiBtnH, "Tree", g.showTree, g.sim.Brute, pointInRect(mx, my, l.treeX, l.btnY, uiBtnW, uiBtnH))
	drawButton(screen, l.resetX, l.btnY, uiBtnW, uiBtnH, "Reset", false, false, pointInRect(mx, my, l.resetX, l.btnY, uiBtnW, uiBtnH))
	drawButton(screen, l.compX, l.btnY, uiBtnW, uiBtnH, "Comp", g.showComponents, compDisabled, pointInRect(mx, my, l.compX, l.btnY, uiBtnW, uiBtnH))
	drawButton(screen, l.quitX, l.btnY, uiBtnW, uiBtnH, "Quit", false, false, pointInRect(mx, my, l.quitX, l.btnY, uiBtnW, uiBtnH))
	drawButton(screen, l.stepX, l.btnY, uiBtnW, uiBtnH, "Step", false, !g.paused, pointInRect(mx, my, l.stepX, l.btnY, uiBtnW, uiBtnH))
	pauseLabel := "Pause"
	if g.paused {
		pauseLabel = "Resume"
	}
	drawButton(screen, l.pauseX, l.btnY, uiBtnW, uiBtnH, pauseLabel, g.paused, false, pointInRect(mx, my, l.pauseX, l.btnY, uiBtnW, uiBtnH))

	// rysuj small buttons (działają tylko dla zaznaczonego selA)
	drawButton(screen, l.massPlusX, l.smallY, smallBtnW, smallBtnH, "M+", false, g.selA == -1, pointInRect(mx, my, l.massPlusX, l.smallY, smallBtnW, smallBtnH))
	drawButton(screen, l.massMinusX, l.smallY, smallBtnW, smallBtnH, "M-", false, g.selA == -1, pointInRect(mx, my, l.massMinusX, l.smallY, smallBtnW, smallBtnH))
	drawButton(screen, l.radPlusX, l.smallY, smallBtnW, smallBtnH, "R+", false, g.selA == -1, pointInRect(mx, my, l.radPlusX, l.smallY, smallBtnW, smallBtnH))
	drawButton(screen, l.radMinusX, l.smallY, smallBtnW, smallBtnH, "R-", false, g.selA == -1, pointInRect(mx, my, l.radMinusX, l.smallY, smallBtnW, smallBtnH))

	// jeśli w trybie Add - pokaż podgląd pozycji i ustawienia
	if g.addMode {
		px := float64(mx)
		py := float64(my)
		col := color.RGBA{200, 200, 255, 160}
		if g.addAnti {
			col = color.RGBA{255, 120, 120, 180}
		} else if g.addLocked {
			col = color.RGBA{200, 200, 200, 200}
		}
		drawCircle(screen, px, py, g.addRadius, col)
		// instrukcje
		text.Draw(screen, "Add mode: L toggle Locked, V toggle Anti", basicfont.Face7x13, 12, 60, color.RGBA{220, 220, 220, 200})
		settings := fmt.Sprintf("Mass: %.1f  Radius: %.1f  Locked: %v  Anti: %v", g.addMass, g.addRadius, g.addLocked, g.addAnti)
		text.Draw(screen, settings, basicfont.Face7x13, 12, 80, color.RGBA{200, 200, 200, 200})
	}

	// arrow + force + graph
	if g.selA != -1 && g.selB != -1 {
		b1 := g.sim.Bodies[g.selA]
		b2 := g.sim.Bodies[g.selB]
		x1 := float64(screenWidth)/2 + b1.Pos.X
		y1 := float64(screenHeight)/2 + b1.Pos.Y
		x2 := float64(screenWidth)/2 + b2.Pos.X
		y2 := float64(screenHeight)/2 + b2.Pos.Y
		// narysuj strzałkę od 1 do 2
		arrowColor := color.RGBA{255, 200, 0, 220}
		drawSmoothArrow(screen, x1, y1, x2, y2, arrowColor)
		// wartość siły w połowie strzałki
		force, _, _ := pairForce(b1, b2, g.sim.Eps)
		midX := (x1 + x2) / 2
		midY := (y1 + y2) / 2
		label := fmt.Sprintf("F = %.3e", force)
		text.Draw(screen, label, basicfont.Face7x13, int(midX)-len(label)*4, int(midY)-6, color.RGBA{255, 255, 200, 255})

		// jeśli komponenty włączone - wyświetl Fx/Fy i osobne wykresy
		graphX := screenWidth - graphW - 16
		baseY := screenHeight - graphH - 16
		step := graphH + 8
		if g.showComponents {
			drawForceGraph(screen, g.fxHistory, graphX, baseY-step*2, graphW, graphH, color.RGBA{255, 100, 100, 255}, "Fx")
			drawForceGraph(screen, g.fyHistory, graphX, baseY-step, graphW, graphH, color.RGBA{100, 255, 100, 255}, "Fy")
			drawForceGraph(screen, g.forceHistory, graphX, baseY, graphW, graphH, color.RGBA{100, 100, 255, 255}, "F")
		} else {
			drawForceGraph(screen, g.forceHistory, graphX, baseY, graphW, graphH, color.RGBA{100, 100, 255, 255}, "")
		}
	}

	// tooltip podczas pauzy
	if g.paused {
		mouse := physics.Vec2{X: float64(mx) - float64(screenWidth)/2, Y: float64(my) - float64(screenHeight)/2}
		var hovered *physics.Body
		minD := 1e18
		for i := range g.sim.Bodies {
			b := &g.sim.Bodies[i]
			d := b.Pos.Sub(mouse).Len()
			if d <= b.Radius && d < minD {
				hovered = b
				minD = d
			}
		}
		if hovered != nil {
			lines := []string{
				fmt.Sprintf("Mass: %.3e", hovered.Mass),
				fmt.Sprintf("Pos: (%.2f, %.2f)", hovered.Pos.X, hovered.Pos.Y),
				fmt.Sprintf("Vel: (%.2f, %.2f)", hovered.Vel.X, hovered.Vel.Y),
				fmt.Sprintf("Acc: (%.3e, %.3e)", hovered.Acc.X, hovered.Acc.Y),
				fmt.Sprintf("Speed: %.2f", hovered.Vel.Len()),
				fmt.Sprintf("Radius: %.2f", hovered.Radius),
			}
			drawTextPanel(screen, lines, mx+12, my+12, 13, color.RGBA{10, 10, 10, 200})
		}
	}

	// rysuj modal potwierdzenia resetu, jeśli otwarty
	if g.resetModalOpen {
		drawResetModal(screen)
	}
}

// drawTextPanel rysuje panel z liniami tekstu przy (x, y), trzymając go w
// granicach ekranu
func drawTextPanel(screen *ebiten.Image, lines []string, x, y, lineH int, bg color.RGBA) {
	pad := 6
	charW := 7
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	w := maxLen*charW + pad*2
	h := len(lines)*lineH + pad*2
	panel := ebiten.NewImage(w, h)
	panel.Fill(bg)
	inner := ebiten.NewImage(w-2, h-2)
	inner.Fill(color.RGBA{30, 30, 40, 80})
	opInner := &ebiten.DrawImageOptions{}
	opInner.GeoM.Translate(1, 1)
	panel.DrawImage(inner, opInner)
	for i, l := range lines {
		text.Draw(panel, l, basicfont.Face7x13, pad, pad+(i+1)*lineH-2, color.RGBA{225, 225, 225, 255})
	}
	if x+w > screenWidth {
		x = screenWidth - w - 8
	}
	if y+h > screenHeight {
		y = screenHeight - h - 8
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(panel, op)
}

func drawShortcuts(screen *ebiten.Image, g *Game) {
	if !g.shortcutsVisible {
		return
	}
	// Zbierz linie kontekstowe (tylko klawisze, bez etykiet przyciskow)
	lines := []string{}
	if g.addMode {
		lines = append(lines, "ADD MODE")
		lines = append(lines, "L - toggle Locked (new body)")
		lines = append(lines, "V - toggle Anti (new body)")
		lines = append(lines, "Click - place new body")
		lines = append(lines, "K / =  - mass +")
		lines = append(lines, "J / -  - mass -")
		lines = append(lines, "R - radius +")
		lines = append(lines, "T - radius -")
		lines = append(lines, "H - hide shortcuts")
	} else {
		lines = append(lines, "GLOBAL")
		lines = append(lines, "P - Pause/Resume")
		lines = append(lines, "N - Step (when paused)")
		lines = append(lines, "B - toggle quadtree overlay")
		lines = append(lines, "G - toggle direct summation")
		lines = append(lines, "L - toggle Locked (selected)")
		lines = append(lines, "V - toggle Anti (selected)")
		lines = append(lines, "K / =  - mass + (selected)")
		lines = append(lines, "J / -  - mass - (selected)")
		lines = append(lines, "R - radius + (selected)")
		lines = append(lines, "T - radius - (selected)")
		lines = append(lines, "H - hide shortcuts")
	}
	// Pozycja: poniżej DebugPrint w lewym górnym rogu
	drawTextPanel(screen, lines, 12, 100, 14, color.RGBA{10, 10, 20, 200})
}

// drawResetModal rysuje modal potwierdzenia resetu
func drawResetModal(screen *ebiten.Image) {
	w := 360
	h := 120
	x := (screenWidth - w) / 2
	y := (screenHeight - h) / 2
	panel := ebiten.NewImage(w, h)
	panel.Fill(color.RGBA{20, 20, 20, 220})
	inner := ebiten.NewImage(w-4, h-4)
	inner.Fill(color.RGBA{36, 36, 44, 200})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(2, 2)
	panel.DrawImage(inner, op)

	text.Draw(panel, "Reset simulation?", basicfont.Face7x13, 16, 28, color.RGBA{230, 230, 230, 255})
	text.Draw(panel, "Reload initial config and remove added bodies.", basicfont.Face7x13, 16, 48, color.RGBA{190, 190, 190, 200})

	yesX := 40
	noX := w - 40 - uiBtnW
	btnY := h - 44
	drawButton(panel, yesX, btnY, uiBtnW, uiBtnH, "Yes", false, false, false)
	drawButton(panel, noX, btnY, uiBtnW, uiBtnH, "No", false, false, false)

	op2 := &ebiten.DrawImageOptions{}
	op2.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(panel, op2)
}

func drawButton(screen *ebiten.Image, x, y, w, h int, label string, active bool, disabled bool, hover bool) {
	btn := ebiten.NewImage(w, h)
	bg := color.RGBA{20, 20, 20, 200}
	textColor := color.RGBA{240, 240, 240, 255}
	if disabled {
		bg = color.RGBA{60, 60, 60, 160}
		textColor = color.RGBA{160, 160, 160, 200}
	} else {
		if active {
			bg = color.RGBA{60, 120, 60, 220}
		}
		if hover {
			if active {
				bg = color.RGBA{100, 190, 100, 240}
			} else {
				bg = color.RGBA{90, 90, 90, 230}
			}
		}
	}
	btn.Fill(bg)
	inner := ebiten.NewImage(w-2, h-2)
	inner.Fill(color.RGBA{40, 40, 40, 120})
	opInner := &ebiten.DrawImageOptions{}
	opInner.GeoM.Translate(1, 1)
	btn.DrawImage(inner, opInner)
	charW := 7
	cw := len(label) * charW
	xText := (w - cw) / 2
	yText := (h + 8) / 2
	text.Draw(btn, label, basicfont.Face7x13, xText, yText, textColor)
	op2 := &ebiten.DrawImageOptions{}
	op2.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(btn, op2)
}
